package middleware

import (
	"crypto/sha256"
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRFFieldName is the hidden form field carrying the token.
const CSRFFieldName = "csrf_token"

// CSRFKey derives the 32-byte CSRF authentication key from the session key
// so one secret configures both.
func CSRFKey(sessionKey string) []byte {
	sum := sha256.Sum256([]byte("csrf:" + sessionKey))
	return sum[:]
}

// CSRF protects unsafe methods with gorilla/csrf. onFailure renders the
// rejection; csrf.FailureReason(r) is available to it. Over plain HTTP
// (secure=false) requests are marked plaintext so the Referer check used
// for TLS does not reject local development.
func CSRF(key []byte, secure bool, onFailure http.Handler) func(http.Handler) http.Handler {
	protect := csrf.Protect(
		key,
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName(CSRFFieldName),
		csrf.RequestHeader("X-CSRF-Token"),
		csrf.ErrorHandler(onFailure),
	)
	return func(next http.Handler) http.Handler {
		protected := protect(next)
		if secure {
			return protected
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			protected.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}
