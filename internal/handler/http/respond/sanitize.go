package respond

import (
	"regexp"
)

var (
	// Bearer credentials that leak into error messages (e.g. from request
	// dumps) are masked wholesale.
	bearerTokenPattern = regexp.MustCompile(`Bearer [A-Za-z0-9\-._~+/=]+`)

	// Database passwords embedded in DSNs.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked, safe for
// logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
