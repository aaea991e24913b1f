package application

import "errors"

// Sentinel errors surfaced by services; handlers translate them into the
// response envelope and status codes.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidSpecies     = errors.New("species must be one of: Dog, Cat, Bird, Rabbit, Other")
	ErrNotAVeterinarian   = errors.New("veterinarian reference must be a user with the veterinarian role")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
