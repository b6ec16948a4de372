package shared

import (
	"sort"
	"time"
)

// shared types across the application
// 1st: auth claims carried through the gin context after JWT validation
// 2nd: validation error map surfaced to clients as HTTP 400 bodies

type AuthClaims struct {
	UserID   string `json:"user_id"`  // user identifier (UUID)
	Username string `json:"username"` // username
	Role     string `json:"role"`     // "user" or "admin"
	TokenID  string `json:"jti"`      // token identifier, used for revocation

	ExpiresAt time.Time `json:"-"` // access token expiry, bounds the denylist TTL on logout
}

// ValidationErrors collects every failing field of a payload so the client
// gets all problems in one response instead of one at a time.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msg := "validation failed:"
	for _, f := range fields {
		msg += " " + f + ": " + v[f] + ";"
	}
	return msg[:len(msg)-1]
}

// Add records a failure for a field, keeping the first message if the
// field already failed an earlier rule.
func (v ValidationErrors) Add(field, message string) {
	if _, exists := v[field]; !exists {
		v[field] = message
	}
}
