package domain

import "errors"

// Sentinel errors surfaced by repositories and services. Handlers map them to
// HTTP statuses at the boundary.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidPassword = errors.New("invalid password")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrProductNotFound = errors.New("product not found")
	ErrTicketNotFound  = errors.New("logistics ticket not found")
)
