package auth

import (
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

// providerMessages maps the authentication service's error codes to text a
// visitor can act on.
var providerMessages = map[string]string{
	"EMAIL_EXISTS":                "An account with this email already exists.",
	"EMAIL_NOT_FOUND":             "No account found with this email.",
	"INVALID_PASSWORD":            "Incorrect password.",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid email or password.",
	"INVALID_EMAIL":               "Invalid email address.",
	"WEAK_PASSWORD":               "Password must be at least 6 characters.",
	"USER_DISABLED":               "This account has been disabled.",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts. Please try again later.",
	"OPERATION_NOT_ALLOWED":       "This sign-in method is not enabled.",
	"INVALID_IDP_RESPONSE":        "The sign-in provider rejected the request.",
}

// providerCode extracts the service error code ("EMAIL_EXISTS") from err, or
// returns "" when err did not come from the service.
func providerCode(err error) string {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return ""
	}
	msg := gerr.Message
	if msg == "" && len(gerr.Errors) > 0 {
		msg = gerr.Errors[0].Message
	}
	// Codes may carry detail: "WEAK_PASSWORD : Password should be at least 6 characters".
	if i := strings.IndexAny(msg, " :"); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

// friendlyMessage returns the visitor-facing text for err.
func friendlyMessage(err error) string {
	if m, ok := providerMessages[providerCode(err)]; ok {
		return m
	}
	return err.Error()
}
