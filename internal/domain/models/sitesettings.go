// internal/domain/models/sitesettings.go
package models

// SiteSettings holds the site-wide display settings loaded with the catalog.
type SiteSettings struct {
	SiteName   string `yaml:"site_name"`             // Name shown in the header
	Tagline    string `yaml:"tagline"`               // Shown under the hero heading
	FooterHTML string `yaml:"footer_html,omitempty"` // Sanitized before rendering
}

// DefaultSiteName is used when no site_name is configured.
const DefaultSiteName = "Portfolio"

// NavLink is one entry in the site header.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// PrimaryNav is the header navigation, in display order.
var PrimaryNav = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Portfolio", Href: "/portfolio"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}
