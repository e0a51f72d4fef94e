// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables (PORTFOLIO_*), configuration
// files, or command-line flags (loaded in LoadConfig). They represent
// *app-level* configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like ports, TLS,
// logging level and the environment name ("dev", "prod").
type AppConfig struct {
	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies; also derives the CSRF key
	SessionName   string        // Cookie name for sessions (default: portfolio-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Visitor session lifetime

	// Catalog configuration
	CatalogPath string // YAML catalog file; blank uses the embedded catalog

	// Presentation
	SiteName      string // Overrides the catalog's site name when set
	PageSize      int    // Project cards per portfolio page
	FeaturedLimit int    // Featured projects on the home page

	// Request handling
	MaxBodyBytes  int64         // Request body limit
	SubmitTimeout time.Duration // Contact submission deadline
}
