// internal/app/system/limits/limits.go
package limits

// Request body size limits.
// These limits help prevent memory exhaustion from oversized requests.
const (
	// MaxFormSize is the default request body limit. The contact form is the
	// only body the site accepts; a 500-character message plus name, email
	// and CSRF token fits well inside it.
	MaxFormSize = 64 << 10 // 64 KB
)
