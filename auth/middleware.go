package auth

import "net/http"

// DefaultRoleHeader is the header the web client sends its mock role in.
const DefaultRoleHeader = "X-Mock-Role"

// Middleware reads the mock role header and stores the caller in the request
// context. It never rejects: a missing or unknown role yields an anonymous
// caller and the Guard decides per operation.
func Middleware(header string, next http.Handler) http.Handler {
	if header == "" {
		header = DefaultRoleHeader
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var caller Caller
		if role, ok := ParseRole(r.Header.Get(header)); ok {
			caller.Role = role
		}
		next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
	})
}
