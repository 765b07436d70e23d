package contextkeys

// contextKey is an unexported type to prevent collisions with context keys
// defined in other packages.
type contextKey string

// String makes contextKey satisfy the Stringer interface to assist with debugging.
func (c contextKey) String() string {
	return "emile-auto context key " + string(c)
}

// RequestIDKey is the key for the request ID in context.Context.
const RequestIDKey = contextKey("requestID")

// UserIDKey is the key for the authenticated subject in context.Context.
const UserIDKey = contextKey("userID")
