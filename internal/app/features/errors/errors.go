// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Status  int
	Message string
}

// Handler is the errors feature handler.
// No catalog needed; it just renders templates.
type Handler struct {
	Log    *zap.Logger
	Render viewdata.RenderFunc // defaults to the WAFFLE template engine
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger, Render: viewdata.Render}
}

// NotFound renders the 404 page for any unmatched path.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Page not found", "/"),
		Status:  http.StatusNotFound,
		Message: "The page you're looking for doesn't exist or has been moved.",
	}
	viewdata.RenderStatus(h.Render, w, r, http.StatusNotFound, "error_not_found", data)
}

// MethodNotAllowed renders the 405 page.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Not allowed", "/"),
		Status:  http.StatusMethodNotAllowed,
		Message: "That action isn't available on this page.",
	}
	viewdata.RenderStatus(h.Render, w, r, http.StatusMethodNotAllowed, "error_page", data)
}

// CSRFFailure renders the page shown when a form's security token is
// missing or stale.
func (h *Handler) CSRFFailure(w http.ResponseWriter, r *http.Request) {
	h.Log.Warn("csrf validation failed",
		zap.String("path", r.URL.Path),
		zap.Error(csrf.FailureReason(r)))

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Form expired", r.URL.Path),
		Status:  http.StatusForbidden,
		Message: "Your session has expired or the security token is invalid. Please reload the page and try again.",
	}
	viewdata.RenderStatus(h.Render, w, r, http.StatusForbidden, "error_page", data)
}
