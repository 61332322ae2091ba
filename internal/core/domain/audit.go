package domain

import "time"

// AuthAction classifies an entry in the authentication audit trail.
type AuthAction string

const (
	AuditSignup       AuthAction = "signup"
	AuditLoginSuccess AuthAction = "login_success"
	AuditLoginFailure AuthAction = "login_failure"
)

// AuthEvent records the outcome of an authentication attempt. Events are
// persisted asynchronously; losing one never affects the auth decision.
type AuthEvent struct {
	Username string
	Action   AuthAction
	At       time.Time
}
