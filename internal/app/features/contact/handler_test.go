package contact_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dalemusser/portfolio/internal/app/features/contact"
	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/dalemusser/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

// countingSubmitter records calls and delegates to fn.
type countingSubmitter struct {
	calls atomic.Int32
	fn    func(ctx context.Context, d models.ContactDraft) (contact.Receipt, error)
}

func (s *countingSubmitter) Submit(ctx context.Context, d models.ContactDraft) (contact.Receipt, error) {
	s.calls.Add(1)
	if s.fn != nil {
		return s.fn(ctx, d)
	}
	return contact.Receipt{ID: "test-receipt"}, nil
}

type harness struct {
	h       *contact.Handler
	capture *testutil.RenderCapture
	sub     *countingSubmitter
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	logger := zap.NewNop()
	capture := &testutil.RenderCapture{}
	notifier := notify.NewSessionNotifier(testutil.NewSessions(t), logger)
	viewdata.Init(viewdata.Site{Notifier: notifier})
	t.Cleanup(func() { viewdata.Init(viewdata.Site{}) })

	errLog := uierrors.NewErrorLogger(logger)
	errLog.Render = capture.Render
	sub := &countingSubmitter{}
	h := contact.NewHandler(testutil.NewCatalog(t), sub, notifier, errLog, logger)
	h.Render = capture.Render
	return &harness{h: h, capture: capture, sub: sub}
}

func form(name, email, message string) url.Values {
	return url.Values{"name": {name}, "email": {email}, "message": {message}}
}

func TestServeContact_EmptyDraft(t *testing.T) {
	hs := newHarness(t)
	rec := httptest.NewRecorder()
	hs.h.ServeContact(rec, httptest.NewRequest("GET", "/contact", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	got := hs.capture.Last(t)
	assert.Equal(t, "contact", got.Name)
	draft, errs, _ := contact.Form(got.Data)
	assert.True(t, draft.IsEmpty())
	assert.Empty(t, errs)
}

func TestHandleSubmit_InvalidDraft(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		field   string
		message string
	}{
		{"short message", form("Al", "a@b.com", "short"), "Message", "Message must be at least 10 characters."},
		{"short name after trim", form("  A  ", "a@b.com", "Hello there, friend"), "Name", "Name must be at least 2 characters."},
		{"bad email", form("Al", "a@b", "Hello there, friend"), "Email", "Please enter a valid email address."},
		{"long message", form("Al", "a@b.com", strings.Repeat("é", 501)), "Message", "Message must not exceed 500 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := newHarness(t)
			rec := httptest.NewRecorder()
			hs.h.HandleSubmit(rec, testutil.NewFormRequest("/contact", tt.form))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Zero(t, hs.sub.calls.Load(), "invalid drafts are never submitted")

			draft, errs, _ := contact.Form(hs.capture.Last(t).Data)
			assert.Equal(t, tt.message, errs[tt.field])
			assert.Equal(t, strings.TrimSpace(tt.form.Get("message")), draft.Message, "draft is echoed back")
		})
	}
}

func TestHandleSubmit_MultiByteLengthCountsCharacters(t *testing.T) {
	hs := newHarness(t)
	rec := httptest.NewRecorder()
	// 10 characters, 20 bytes.
	hs.h.HandleSubmit(rec, testutil.NewFormRequest("/contact", form("Zoë", "zoe@example.com", strings.Repeat("é", 10))))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestHandleSubmit_SuccessRedirectsAndFlashes(t *testing.T) {
	hs := newHarness(t)

	rec := httptest.NewRecorder()
	hs.h.HandleSubmit(rec, testutil.NewFormRequest("/contact", form("Alex", "alex@example.com", "I'd like to talk about a project.")))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/contact", rec.Header().Get("Location"))
	assert.EqualValues(t, 1, hs.sub.calls.Load())
	assert.Zero(t, hs.capture.Count(), "success does not render; it redirects")

	// Follow the redirect with the session cookie.
	next := testutil.CarryCookies(rec, httptest.NewRequest("GET", "/contact", nil))
	hs.h.ServeContact(httptest.NewRecorder(), next)

	draft, _, notices := contact.Form(hs.capture.Last(t).Data)
	assert.True(t, draft.IsEmpty(), "form is reset after success")
	require.Len(t, notices, 1)
	assert.Equal(t, notify.Success, notices[0].Kind)
	assert.Equal(t, "Message sent successfully!", notices[0].Message)
	assert.Equal(t, "Thanks for reaching out. I'll get back to you soon.", notices[0].Description)
}

func TestHandleSubmit_WithoutNotifierConfirmsInline(t *testing.T) {
	logger := zap.NewNop()
	capture := &testutil.RenderCapture{}
	viewdata.Init(viewdata.Site{})
	t.Cleanup(func() { viewdata.Init(viewdata.Site{}) })

	sub := &countingSubmitter{}
	h := contact.NewHandler(testutil.NewCatalog(t), sub, nil, uierrors.NewErrorLogger(logger), logger)
	h.Render = capture.Render

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, testutil.NewFormRequest("/contact", form("Alex", "alex@example.com", "Hello there, friend")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), sub.calls.Load())
	draft, errs, notices := contact.Form(capture.Last(t).Data)
	assert.True(t, draft.IsEmpty())
	assert.Empty(t, errs)
	require.Len(t, notices, 1)
	assert.Equal(t, notify.Success, notices[0].Kind)
	assert.Equal(t, "Message sent successfully!", notices[0].Message)
}

func TestHandleSubmit_SubmitterFailureKeepsDraft(t *testing.T) {
	hs := newHarness(t)
	hs.sub.fn = func(ctx context.Context, d models.ContactDraft) (contact.Receipt, error) {
		return contact.Receipt{}, context.Canceled
	}

	rec := httptest.NewRecorder()
	hs.h.HandleSubmit(rec, testutil.NewFormRequest("/contact", form("Alex", "alex@example.com", "I'd like to talk about a project.")))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	draft, _, notices := contact.Form(hs.capture.Last(t).Data)
	assert.Equal(t, "Alex", draft.Name)
	require.Len(t, notices, 1)
	assert.Equal(t, notify.Error, notices[0].Kind)
}

func TestHandleSubmit_TimeoutDoesNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)
	timeouts.Configure(timeouts.Config{Submit: 20 * time.Millisecond})
	t.Cleanup(timeouts.Reset)

	hs := newHarness(t)
	hs.sub.fn = func(ctx context.Context, d models.ContactDraft) (contact.Receipt, error) {
		<-ctx.Done()
		return contact.Receipt{}, ctx.Err()
	}

	rec := httptest.NewRecorder()
	hs.h.HandleSubmit(rec, testutil.NewFormRequest("/contact", form("Alex", "alex@example.com", "I'd like to talk about a project.")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleSubmit_MalformedBody(t *testing.T) {
	hs := newHarness(t)
	req := httptest.NewRequest("POST", "/contact", strings.NewReader("name=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	hs.h.HandleSubmit(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, hs.sub.calls.Load())
}

func TestLogSubmitter(t *testing.T) {
	s := contact.NewLogSubmitter(zap.NewNop())
	rc, err := s.Submit(context.Background(), models.ContactDraft{Name: "Al", Email: "a@b.com", Message: "Hello there"})
	require.NoError(t, err)
	assert.NotEmpty(t, rc.ID)
	assert.False(t, rc.SubmittedAt.IsZero())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Submit(ctx, models.ContactDraft{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmitAsync_ReturnsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	release := make(chan struct{})
	slow := &countingSubmitter{fn: func(ctx context.Context, d models.ContactDraft) (contact.Receipt, error) {
		<-release
		return contact.Receipt{ID: "late"}, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := contact.SubmitAsync(ctx, slow, models.ContactDraft{})
	assert.ErrorIs(t, err, context.Canceled)

	// The worker finishes into the buffered channel and exits.
	close(release)
}
