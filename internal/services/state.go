package services

// SessionState is the derived (never stored) authentication state.
type SessionState int

const (
	// StateUnknown means the state could not be determined, typically a
	// transient failure of the who-am-I call. Callers keep their current
	// view and may retry; the stored token is left untouched.
	StateUnknown SessionState = iota

	// StateUnauthenticated means no session token exists.
	StateUnauthenticated

	// StatePendingVerification means the backend knows the customer but
	// has not approved this device yet.
	StatePendingVerification

	// StateActive means the session is fully usable.
	StateActive
)

func (s SessionState) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StatePendingVerification:
		return "pending-verification"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}
