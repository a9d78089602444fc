// Package provider implements the delegated identity provider client used by
// the federated credential strategy. The provider exposes a GoTrue-style REST
// API: password grant for authentication and a signup endpoint for identity
// creation. Providers are constructed and injected, never held as package
// state, so the auth flows stay testable with fakes.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/estateops/crm-backend/internal/core/ports"
)

const defaultHTTPTimeout = 10 * time.Second

// Config carries the provider endpoint settings.
type Config struct {
	// BaseURL is the provider's auth API root, e.g. https://x.supabase.co/auth/v1.
	BaseURL string
	// APIKey is sent on every request.
	APIKey string
	// HTTPClient overrides the default client; mainly for tests.
	HTTPClient *http.Client
}

// Client talks to the external identity provider. Every failure, transient
// or not, is returned as a plain error the caller treats as an
// authentication failure; provider-internal detail never crosses further.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New builds a provider Client from cfg.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{baseURL: cfg.BaseURL, apiKey: cfg.APIKey, http: hc}
}

type tokenResponse struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

// Authenticate performs a password-grant sign in and returns the
// provider-assigned subject identifier.
func (c *Client) Authenticate(ctx context.Context, email, secret string) (string, error) {
	body := map[string]string{"email": email, "password": secret}
	var resp tokenResponse
	if err := c.post(ctx, "/token?grant_type=password", body, &resp); err != nil {
		return "", err
	}
	if resp.User.ID == "" {
		return "", fmt.Errorf("provider: empty subject in token response")
	}
	return resp.User.ID, nil
}

type signupRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Data     map[string]any `json:"data,omitempty"`
}

type signupResponse struct {
	ID string `json:"id"`
}

// CreateIdentity registers a new identity with the provider and returns its
// subject identifier. Metadata travels as user data on the signup call.
func (c *Client) CreateIdentity(ctx context.Context, email, secret string, meta ports.IdentityMetadata) (string, error) {
	req := signupRequest{
		Email:    email,
		Password: secret,
		Data:     map[string]any{"full_name": meta.FullName, "role": meta.Role},
	}
	var resp signupResponse
	if err := c.post(ctx, "/signup", req, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("provider: empty subject in signup response")
	}
	return resp.ID, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("provider: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("provider: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("provider: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Body intentionally dropped; provider errors are never surfaced.
		return fmt.Errorf("provider: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("provider: decode response: %w", err)
	}
	return nil
}
