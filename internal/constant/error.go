package constant

const (
	ERR_VALIDATION_CODE                 = "VALIDATION_ERROR"
	ERR_INVALID_REQUEST_BODY_ERROR_CODE = "INVALID_REQUEST_BODY_ERROR"
	ERR_INTERNAL_SERVER_ERROR_CODE      = "INTERNAL_SERVER_ERROR"
	ERR_INTENRAL_SERVER_ERROR_MESSAGE   = "Something went wrong. If the problem persists, please contact support"
	ERR_INVALID_REQUEST_BODY_MESSAGE    = "The request is invalid or malformed"
	ERR_AUTHENTICATION_ERROR_CODE       = "AUTHENTICATION_ERROR"
	ERR_AUTHENTICATION_ERROR_MESSAGE    = "Could not obtain an access token from the identity provider"
	ERR_UPSTREAM_ERROR_CODE             = "UPSTREAM_ERROR"
	ERR_UPSTREAM_ERROR_MESSAGE          = "TrainerCentral did not answer the forwarded request"
)
