// Command seed provisions the initial accounts for a fresh deployment: one
// administrator and one demonstration employee, both under the local
// identity scheme. Intended for initial setup only, never production use.
package main

import (
	"context"
	"errors"

	"github.com/estateops/crm-backend/internal/core/domain"
	"github.com/estateops/crm-backend/internal/core/ports"
	"github.com/estateops/crm-backend/internal/core/service"
	"github.com/estateops/crm-backend/internal/infrastructure/config"
	mongorepo "github.com/estateops/crm-backend/internal/infrastructure/db/mongo"
	"github.com/estateops/crm-backend/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, true)

	if cfg.AuthStrategy != "local" {
		log.Fatal().Str("strategy", cfg.AuthStrategy).Msg("seeding only supports the local identity scheme")
	}

	ctx := context.Background()

	client, db, err := mongorepo.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer client.Disconnect(ctx)

	repo := mongorepo.NewEmployeeRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	store := service.NewLocalCredentialStore(repo)

	accounts := []ports.RegisterInput{
		{
			Username: "admin",
			Email:    "admin@realestate.com",
			Password: "admin123",
			FullName: "System Administrator",
			Role:     domain.RoleAdmin,
		},
		{
			Username:   "demo",
			Email:      "demo@realestate.com",
			Password:   "demo123",
			FullName:   "Demo Employee",
			Role:       domain.RoleEmployee,
			Department: "sales",
		},
	}

	for _, in := range accounts {
		emp, _, err := store.Register(ctx, in)
		if errors.Is(err, domain.ErrEmployeeExists) {
			log.Info().Str("email", in.Email).Msg("account already exists, skipping")
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Str("email", in.Email).Msg("seeding failed")
		}
		log.Info().Str("email", in.Email).Str("role", emp.Role).Msg("account created")
	}

	log.Info().Msg("seed complete")
}
