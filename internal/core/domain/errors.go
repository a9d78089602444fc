package domain

import "errors"

// Authentication and authorization errors. ErrInvalidCredentials is the only
// one surfaced on login regardless of the internal cause, so a caller cannot
// tell an unknown email from a wrong password or a deactivated account.
var (
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeExists     = errors.New("employee already exists")
	ErrInactiveAccount    = errors.New("account is inactive")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

// Resource errors.
var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrEnquiryNotFound    = errors.New("enquiry not found")
	ErrDeveloperNotFound  = errors.New("developer not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrUnitNotFound       = errors.New("inventory unit not found")
	ErrLandParcelNotFound = errors.New("land parcel not found")
	ErrLandParcelExists   = errors.New("land parcel already exists")
	ErrContactNotFound    = errors.New("contact not found")
)
