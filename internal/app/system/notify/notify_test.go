package notify_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/app/system/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSessionNotifier_SurvivesRedirect(t *testing.T) {
	sm, err := session.NewManager("test-session-key-must-be-32-chars-long", "t", "", time.Hour, false, zap.NewNop())
	require.NoError(t, err)
	n := notify.NewSessionNotifier(sm, zap.NewNop())

	want := notify.Notice{
		Kind:        notify.Success,
		Message:     "Message sent successfully!",
		Description: "Thanks for reaching out. I'll get back to you soon.",
	}

	req := httptest.NewRequest(http.MethodPost, "/contact", nil)
	rec := httptest.NewRecorder()
	n.Notify(rec, req, want)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec = httptest.NewRecorder()
	assert.Equal(t, []notify.Notice{want}, n.Drain(rec, req))

	// Drained notices are gone on the following request.
	req = httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	assert.Empty(t, n.Drain(httptest.NewRecorder(), req))
}
