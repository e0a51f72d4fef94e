package viewdata

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderFunc renders the named template. Handlers hold one so tests can
// capture the view model without booting the template engine.
type RenderFunc func(w http.ResponseWriter, r *http.Request, name string, data any)

// Render renders through the WAFFLE template engine.
func Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

// RenderStatus renders with a non-200 status. Build data (which may set
// cookies) before calling; headers are final once the status is written.
func RenderStatus(render RenderFunc, w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	render(w, r, name, data)
}
