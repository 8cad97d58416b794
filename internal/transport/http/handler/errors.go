package handler

const (
	errInternalServer     = "Internal server error"
	errStoreUnavailable   = "Service unavailable"
	errInvalidBody        = "Request body must be a JSON object"
	errDuplicateEmail     = "Email already exists"
	errInvalidCredentials = "Invalid login credentials"
	errPasswordTooLong    = "Must be at most 72 bytes long"
	errDuplicateProfile   = "User already created a company"
	errProfileNotFound    = "Company profile not found"
	errUnauthenticated    = "No token provided"
)

// statusClientClosedRequest is nginx's code for a client that disconnected
// before the response was written.
const statusClientClosedRequest = 499
