package auth

import "errors"

var (
	// ErrUnauthenticated is returned when a write arrives without a recognised role.
	ErrUnauthenticated = errors.New("Unauthenticated")

	// ErrForbidden is returned when the caller's role may not perform the write.
	ErrForbidden = errors.New("Forbidden: only admins can update shipments")
)
