// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/portfolio/internal/app/system/middleware"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders a friendly
// error page in its place.
type ErrorLogger struct {
	Log    *zap.Logger
	Render viewdata.RenderFunc // defaults to the WAFFLE template engine
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger, Render: viewdata.Render}
}

// LogServerError logs err at error level and renders a 500 page showing
// userMsg. backURL defaults to the referring page or "/".
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg, e.fields(r, err)...)
	e.renderError(w, r, http.StatusInternalServerError, "Something went wrong", userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	e.renderError(w, r, http.StatusBadRequest, "Bad request", userMsg, backURL)
}

// LogUnavailable logs err and renders a 503 page, used when a dependency
// such as the catalog cannot answer in time.
func (e *ErrorLogger) LogUnavailable(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Warn(msg, e.fields(r, err)...)
	e.renderError(w, r, http.StatusServiceUnavailable, "Temporarily unavailable", userMsg, backURL)
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", middleware.RequestIDFrom(r.Context())),
	}
}

func (e *ErrorLogger) renderError(w http.ResponseWriter, r *http.Request, status int, title, userMsg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, title, backURL),
		Status:  status,
		Message: userMsg,
	}
	viewdata.RenderStatus(e.Render, w, r, status, "error_page", data)
}
