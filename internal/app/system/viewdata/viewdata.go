// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, "Page Title", "/"),
//	}
type BaseVM struct {
	// Site settings (from the catalog)
	SiteName   string
	Tagline    string
	OwnerName  string
	FooterHTML template.HTML

	// Page context
	Title       string
	HeadTitle   string // overrides PageTitle when set
	BackURL     string
	CurrentPath string
	Nav         []models.NavLink
	Year        int

	// CSRF protection
	CSRFToken string

	// Toasts queued by the previous request
	Notices []notify.Notice
}

// Site is the process-wide data every page header and footer needs.
type Site struct {
	Settings  models.SiteSettings
	OwnerName string
	Notifier  notify.Notifier
}

var site = Site{Settings: models.SiteSettings{SiteName: models.DefaultSiteName}}

// Init sets the site data used by NewBaseVM.
// Call this once at startup from bootstrap.
func Init(s Site) {
	if s.Settings.SiteName == "" {
		s.Settings.SiteName = models.DefaultSiteName
	}
	site = s
}

// NewBaseVM creates a fully populated BaseVM for a page. It drains pending
// notices, so call it once per render.
func NewBaseVM(w http.ResponseWriter, r *http.Request, title, backDefault string) BaseVM {
	current := httpnav.CurrentPath(r)
	vm := BaseVM{
		SiteName:    site.Settings.SiteName,
		Tagline:     site.Settings.Tagline,
		OwnerName:   site.OwnerName,
		FooterHTML:  htmlsanitize.SanitizeToHTML(site.Settings.FooterHTML),
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: current,
		Nav:         Nav(current),
		Year:        time.Now().Year(),
		CSRFToken:   csrf.Token(r),
	}
	if site.Notifier != nil {
		vm.Notices = site.Notifier.Drain(w, r)
	}
	return vm
}

// Nav returns the primary navigation with the entry for path marked active.
// Project detail pages belong to the Portfolio section.
func Nav(path string) []models.NavLink {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if strings.HasPrefix(path, "/project-detail") {
		path = "/portfolio"
	}
	out := make([]models.NavLink, len(models.PrimaryNav))
	for i, l := range models.PrimaryNav {
		l.Active = l.Href == path || (l.Href != "/" && strings.HasPrefix(path, l.Href+"/"))
		out[i] = l
	}
	return out
}

// PageTitle formats a browser title: "About · Alex Johnson".
func (vm BaseVM) PageTitle() string {
	if vm.HeadTitle != "" {
		return vm.HeadTitle
	}
	name := vm.OwnerName
	if name == "" {
		name = vm.SiteName
	}
	if vm.Title == "" {
		return name
	}
	return vm.Title + " · " + name
}
