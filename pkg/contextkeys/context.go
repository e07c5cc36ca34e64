package contextkeys

// Keys under which request-scoped values travel in the gin context.
const (
	// DBKey holds the *gorm.DB for the request: the shared pool in
	// production, a per-test transaction in integration tests.
	DBKey = "db"

	// UserIDKey and IsSuperuserKey are set by the auth middleware from
	// the verified token claims.
	UserIDKey      = "user_id"
	IsSuperuserKey = "is_superuser"

	// RequestIDKey holds the request correlation id.
	RequestIDKey = "request_id"
)
