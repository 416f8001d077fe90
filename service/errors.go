// service/errors.go

package service

import "errors"

var (
	// ErrValidation wraps every rejected create input. The wrapped message
	// names the missing fields.
	ErrValidation = errors.New("invalid shipment input")

	// ErrInvalidPageSize guards the configured default page size.
	ErrInvalidPageSize = errors.New("default page size must be between 1 and 100")
)
