// Package notify carries transient user-facing notices (toasts) from a
// handler to the next rendered page.
package notify

import (
	"encoding/gob"
	"net/http"

	"github.com/dalemusser/portfolio/internal/app/system/session"
	"go.uber.org/zap"
)

// Kind selects a notice's styling.
type Kind string

const (
	Success Kind = "success"
	Info    Kind = "info"
	Warning Kind = "warning"
	Error   Kind = "error"
)

// Notice is a single toast.
type Notice struct {
	Kind        Kind
	Message     string
	Description string
}

func init() {
	gob.Register(Notice{})
}

// Notifier queues notices for the visitor behind r and drains them on the
// next render.
type Notifier interface {
	Notify(w http.ResponseWriter, r *http.Request, n Notice)
	Drain(w http.ResponseWriter, r *http.Request) []Notice
}

// SessionNotifier stores notices as session flashes so they survive a
// redirect.
type SessionNotifier struct {
	Sessions *session.Manager
	Log      *zap.Logger
}

// NewSessionNotifier returns a Notifier backed by sm.
func NewSessionNotifier(sm *session.Manager, logger *zap.Logger) *SessionNotifier {
	return &SessionNotifier{Sessions: sm, Log: logger}
}

// Notify queues n. Failure to persist is logged; the visitor simply misses
// the toast.
func (s *SessionNotifier) Notify(w http.ResponseWriter, r *http.Request, n Notice) {
	if err := s.Sessions.AddFlash(w, r, n); err != nil {
		s.Log.Warn("failed to queue notice",
			zap.String("kind", string(n.Kind)),
			zap.Error(err))
	}
}

// Drain returns and clears all queued notices.
func (s *SessionNotifier) Drain(w http.ResponseWriter, r *http.Request) []Notice {
	var out []Notice
	for _, f := range s.Sessions.Flashes(w, r) {
		if n, ok := f.(Notice); ok {
			out = append(out, n)
		}
	}
	return out
}
