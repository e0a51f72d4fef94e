package projectdetail_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	"github.com/dalemusser/portfolio/internal/app/features/projectdetail"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, repo catalogstore.Repository) (*projectdetail.Handler, *testutil.RenderCapture) {
	t.Helper()
	logger := zap.NewNop()
	capture := &testutil.RenderCapture{}
	errLog := uierrors.NewErrorLogger(logger)
	errLog.Render = capture.Render
	h := projectdetail.NewHandler(repo, testutil.NewSessions(t), errLog, logger)
	h.Render = capture.Render
	return h, capture
}

func catalog(t *testing.T) *catalogstore.Store {
	return testutil.NewCatalog(t,
		testutil.Project("first", testutil.WithImages(3)),
		testutil.Project("second", testutil.WithImages(1)),
		testutil.Project("bare"),
	)
}

func serve(h *projectdetail.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeDetail(rec, req)
	return rec
}

func TestServeDetail_QuerySlug(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	rec := serve(h, httptest.NewRequest("GET", "/project-detail?project=second", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	got := capture.Last(t)
	assert.Equal(t, "project_detail", got.Name)
	d := projectdetail.Page(got.Data)
	assert.Equal(t, "second", d.Slug)
	assert.False(t, d.Fallback)
	assert.Equal(t, "Project second | Portfolio", d.HeadTitle)
	assert.Equal(t, []string{"Home", "Portfolio", "Project second"}, d.Crumbs)
	assert.Empty(t, d.Notices)
}

func TestServeDetail_PathSlug(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/project-detail/bare", nil), "slug", "bare")
	serve(h, req)

	d := projectdetail.Page(capture.Last(t).Data)
	assert.Equal(t, "bare", d.Slug)
	assert.True(t, d.Gallery.Empty, "no images renders the gallery placeholder")
}

func TestServeDetail_NoSlugShowsDefault(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	serve(h, httptest.NewRequest("GET", "/project-detail", nil))

	d := projectdetail.Page(capture.Last(t).Data)
	assert.Equal(t, "first", d.Slug)
	assert.True(t, d.Fallback)
	assert.Empty(t, d.Notices, "no slug asked for, nothing to report")
}

func TestServeDetail_UnknownSlugFallsBackWithNotice(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	rec := serve(h, httptest.NewRequest("GET", "/project-detail?project=nope", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	d := projectdetail.Page(capture.Last(t).Data)
	assert.Equal(t, "first", d.Slug)
	assert.True(t, d.Fallback)
	require.Len(t, d.Notices, 1)
	assert.Equal(t, notify.Info, d.Notices[0].Kind)
	assert.Contains(t, d.Notices[0].Description, `"nope"`)
}

func TestServeDetail_RemembersSelection(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	first := serve(h, httptest.NewRequest("GET", "/project-detail?project=second", nil))
	serve(h, testutil.CarryCookies(first, httptest.NewRequest("GET", "/project-detail", nil)))

	d := projectdetail.Page(capture.Last(t).Data)
	assert.Equal(t, "second", d.Slug)
	assert.False(t, d.Fallback)
}

func TestServeDetail_GalleryState(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	serve(h, httptest.NewRequest("GET", "/project-detail?project=first&media=2&view=lightbox", nil))

	g := projectdetail.Page(capture.Last(t).Data).Gallery
	assert.Equal(t, 2, g.Index)
	assert.True(t, g.Lightbox)
	assert.Equal(t, "3 of 3", g.Position)
	assert.Equal(t, "/project-detail/first?view=lightbox#gallery", g.NextURL, "next wraps to the first item")
	assert.Equal(t, "/project-detail/first?media=2#gallery", g.CloseURL)
}

func TestServeDetail_StaleGalleryIndexResets(t *testing.T) {
	h, capture := newTestHandler(t, catalog(t))

	serve(h, httptest.NewRequest("GET", "/project-detail?project=second&media=5", nil))

	g := projectdetail.Page(capture.Last(t).Data).Gallery
	assert.Equal(t, 0, g.Index)
	assert.False(t, g.ShowArrows, "single item has no navigation")
}

func TestServeDetail_EmptyCatalog(t *testing.T) {
	h, capture := newTestHandler(t, testutil.NewCatalog(t))

	rec := serve(h, httptest.NewRequest("GET", "/project-detail?project=anything", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, projectdetail.Page(capture.Last(t).Data).Empty)
}

func TestDetailURL(t *testing.T) {
	assert.Equal(t, "/project-detail/eco-tracker-app", projectdetail.DetailURL("eco-tracker-app"))
}
