package apierror

// Error type URIs following the urn:aurora:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:aurora:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:aurora:error:not_found"

	// TypeInvalidWindow indicates a date window whose end precedes its start,
	// or malformed date input (400)
	TypeInvalidWindow = "urn:aurora:error:invalid_window"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:aurora:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:aurora:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:aurora:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:aurora:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:aurora:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation    = "Validation Error"
	TitleNotFound      = "Resource Not Found"
	TitleInvalidWindow = "Invalid Date Window"
	TitleRateLimit     = "Rate Limit Exceeded"
	TitleUnauthorized  = "Authentication Required"
	TitleForbidden     = "Permission Denied"
	TitleInternal      = "Internal Server Error"
	TitleBadRequest    = "Bad Request"
)
