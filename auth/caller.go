// Package auth carries the mock caller identity from the role header to the
// service boundary and checks it there. It is a stand-in for real authentication.
package auth

import (
	"context"
	"strings"
)

// Role is the mock role a caller claims.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// ParseRole accepts admin or employee in any case. Anything else is not a role.
func ParseRole(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleEmployee:
		return RoleEmployee, true
	default:
		return "", false
	}
}

// Caller is the identity attached to a request. The zero value is anonymous.
type Caller struct {
	Role Role
}

// Authenticated reports whether the caller presented a known role.
func (c Caller) Authenticated() bool {
	return c.Role != ""
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

type callerKey struct{}

// WithCaller returns a copy of ctx carrying c.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// FromContext returns the caller stored by WithCaller, or the anonymous caller.
func FromContext(ctx context.Context) Caller {
	c, _ := ctx.Value(callerKey{}).(Caller)
	return c
}
