package graph

import (
	"context"
	"errors"

	"github.com/Tanmoy095/LogiSynapse/auth"
	"github.com/Tanmoy095/LogiSynapse/service"
)

// Error codes sent in extensions.code.
const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeBadUserInput    = "BAD_USER_INPUT"
	CodeBadRequest      = "BAD_REQUEST"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

const internalMessage = "internal server error"

// ErrInvalidArgument wraps arguments that pass schema validation but cannot
// be decoded into the service's input types.
var ErrInvalidArgument = errors.New("invalid argument")

// classify maps a resolver error to its client-facing code and message.
// Anything unrecognised is reported as internal without its detail.
func classify(err error) (code, message string) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return CodeUnauthenticated, auth.ErrUnauthenticated.Error()
	case errors.Is(err, auth.ErrForbidden):
		return CodeForbidden, auth.ErrForbidden.Error()
	case errors.Is(err, service.ErrValidation), errors.Is(err, ErrInvalidArgument):
		return CodeBadUserInput, err.Error()
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return CodeBadRequest, "request cancelled"
	default:
		return CodeInternal, internalMessage
	}
}
