package portfolio

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/paging"
	"github.com/dalemusser/portfolio/internal/app/system/session"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// BasePath is where the listing is mounted.
const BasePath = "/portfolio"

// Handler serves the paged project listing.
type Handler struct {
	Catalog  catalogstore.Repository
	Sessions *session.Manager
	PageSize int
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	Render   viewdata.RenderFunc
}

func NewHandler(catalog catalogstore.Repository, sessions *session.Manager, pageSize int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if pageSize < 1 {
		pageSize = paging.PageSize
	}
	return &Handler{
		Catalog:  catalog,
		Sessions: sessions,
		PageSize: pageSize,
		ErrLog:   errLog,
		Log:      logger,
		Render:   viewdata.Render,
	}
}

type pageData struct {
	viewdata.BaseVM
	Projects []models.ProjectSummary
	Page     int
	Pager    paging.View
}

// pageURL always carries the page number so page 1 is not mistaken for
// "show the remembered page". #top resets scroll on every change.
func pageURL(n int) string {
	return paging.URL(BasePath, n) + "#top"
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /portfolio                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	projects, err := h.Catalog.ListProjectSummaries(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects failed", err, "We couldn't load the project list.", "/")
		return
	}

	pager := paging.New(len(projects), h.PageSize)

	// Restore the remembered page; a list that shrank clamps to its last page.
	remembered := 1
	if h.Sessions != nil {
		remembered = h.Sessions.Page(r)
	}
	if !pager.ChangePage(remembered) {
		pager.ChangePage(pager.TotalPages())
	}

	if n := paging.ParsePage(r); n != 0 && !pager.ChangePage(n) {
		h.Log.Debug("ignoring out-of-range page request",
			zap.Int("requested", n),
			zap.Int("total_pages", pager.TotalPages()))
	}

	if h.Sessions != nil && pager.Current() != remembered {
		if err := h.Sessions.SetPage(w, r, pager.Current()); err != nil {
			h.Log.Warn("remember portfolio page failed", zap.Error(err))
		}
	}

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Portfolio", "/"),
		Projects: paging.Window(projects, pager),
		Page:     pager.Current(),
		Pager:    pager.View(pageURL),
	}
	h.Render(w, r, "portfolio_list", data)
}
