package constant

const (
	// DefaultUserRole is assigned to every account created through signup.
	DefaultUserRole = "artist"

	// DefaultTokenType is the OAuth-style token type reported alongside access tokens.
	DefaultTokenType = "Bearer"

	// EnvProduction is the ENV value that tightens cookie and token-exposure behaviour.
	EnvProduction = "production"
)

// Login attempt failure reasons recorded in the audit trail.
const (
	AttemptReasonUserNotFound = "USER_NOT_FOUND"
	AttemptReasonBadPassword  = "BAD_PASSWORD"
	AttemptReasonLocked       = "LOCKED"
)
