package models

import "errors"

// Sentinel errors shared by repositories, services and handlers.
// Wrap them with fmt.Errorf("...: %w", err) and match with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)
