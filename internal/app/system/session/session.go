// Package session keeps per-visitor view state in a signed cookie: the last
// selected project, the current portfolio page, and one-shot flash values.
package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// DefaultName is the cookie name used when none is configured.
const DefaultName = "portfolio-session"

const (
	selectionKey = "selected_project"
	pageKey      = "portfolio_page"
)

// Manager wraps a cookie store with typed accessors for portfolio state.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager. The `secure` flag controls whether cookies are
// marked Secure and which SameSite mode is used: None for HTTPS deployments,
// Lax for local http://localhost development.
func NewManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge / time.Second),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &Manager{store: store, name: name, log: logger}, nil
}

// Name returns the session cookie name.
func (m *Manager) Name() string { return m.name }

// get returns the request's session. A cookie that fails to decode (rotated
// key, tampering) yields a fresh session rather than an error.
func (m *Manager) get(r *http.Request) *sessions.Session {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		m.log.Debug("discarding undecodable session", zap.Error(err))
	}
	return sess
}

// Selection returns the slug of the last project the visitor selected.
func (m *Manager) Selection(r *http.Request) string {
	s, _ := m.get(r).Values[selectionKey].(string)
	return s
}

// SetSelection remembers slug as the visitor's selected project.
func (m *Manager) SetSelection(w http.ResponseWriter, r *http.Request, slug string) error {
	sess := m.get(r)
	if cur, _ := sess.Values[selectionKey].(string); cur == slug {
		return nil
	}
	sess.Values[selectionKey] = slug
	return sess.Save(r, w)
}

// Page returns the remembered portfolio page, or 1.
func (m *Manager) Page(r *http.Request) int {
	if n, ok := m.get(r).Values[pageKey].(int); ok && n > 0 {
		return n
	}
	return 1
}

// SetPage remembers the visitor's portfolio page.
func (m *Manager) SetPage(w http.ResponseWriter, r *http.Request, page int) error {
	sess := m.get(r)
	if cur, _ := sess.Values[pageKey].(int); cur == page {
		return nil
	}
	sess.Values[pageKey] = page
	return sess.Save(r, w)
}

// AddFlash queues v for the next request. Concrete types stored here must
// be registered with encoding/gob by their owning package.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, v any) error {
	sess := m.get(r)
	sess.AddFlash(v)
	return sess.Save(r, w)
}

// Flashes drains queued flash values. The session is saved only when
// something was drained.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []any {
	sess := m.get(r)
	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("failed to save session after reading flashes", zap.Error(err))
	}
	return flashes
}
