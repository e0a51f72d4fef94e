package projectdetail

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/url"

	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/gallery"
	"github.com/dalemusser/portfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/app/system/session"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	// BasePath is where the detail page is mounted.
	BasePath = "/project-detail"
	// ParamProject carries the selected slug.
	ParamProject = "project"
	// galleryAnchor keeps gallery transitions scrolled to the gallery.
	galleryAnchor = "gallery"
)

// Handler serves a single project.
type Handler struct {
	Catalog  catalogstore.Repository
	Sessions *session.Manager
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
	Render   viewdata.RenderFunc
}

func NewHandler(catalog catalogstore.Repository, sessions *session.Manager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  catalog,
		Sessions: sessions,
		ErrLog:   errLog,
		Log:      logger,
		Render:   viewdata.Render,
	}
}

type crumb struct {
	Label string
	URL   string
}

type pageData struct {
	viewdata.BaseVM
	Empty       bool
	Project     models.ProjectDetail
	Fallback    bool
	Breadcrumb  []crumb
	Description template.HTML
	Gallery     gallery.View
}

// DetailURL is the canonical link to a project.
func DetailURL(slug string) string {
	return BasePath + "/" + url.PathEscape(slug)
}

// requestedSlug reads the selection: path segment, then ?project=, then the
// visitor's last selection.
func (h *Handler) requestedSlug(r *http.Request) string {
	if s := chi.URLParam(r, "slug"); s != "" {
		return s
	}
	if s := query.Get(r, ParamProject); s != "" {
		return s
	}
	if h.Sessions != nil {
		return h.Sessions.Selection(r)
	}
	return ""
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /project-detail[/{slug}]                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	requested := h.requestedSlug(r)
	res, err := catalogstore.Resolve(ctx, h.Catalog, requested)
	switch {
	case errors.Is(err, catalogstore.ErrEmptyCatalog):
		data := pageData{
			BaseVM: viewdata.NewBaseVM(w, r, "Project", "/portfolio"),
			Empty:  true,
		}
		h.Render(w, r, "project_detail", data)
		return
	case err != nil:
		h.ErrLog.LogServerError(w, r, "resolve project failed", err, "We couldn't load this project.", "/portfolio")
		return
	}

	p := res.Project
	if h.Sessions != nil {
		if err := h.Sessions.SetSelection(w, r, p.Slug); err != nil {
			h.Log.Warn("remember project selection failed", zap.Error(err))
		}
	}

	base := &url.URL{Path: DetailURL(p.Slug)}
	state := gallery.FromRequest(r, len(p.Images))

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(w, r, p.Title, "/portfolio"),
		Project:  p,
		Fallback: res.Fallback,
		Breadcrumb: []crumb{
			{Label: "Home", URL: "/"},
			{Label: "Portfolio", URL: "/portfolio"},
			{Label: p.Title},
		},
		Description: htmlsanitize.PrepareForDisplay(p.LongDescription),
		Gallery:     gallery.Build(p.Images, state, gallery.QueryLink(base, galleryAnchor)),
	}
	data.HeadTitle = p.Title + " | Portfolio"

	if res.Missed() {
		h.Log.Info("unknown project requested; showing default",
			zap.String("requested", res.Requested),
			zap.String("shown", p.Slug))
		data.Notices = append(data.Notices, notify.Notice{
			Kind:        notify.Info,
			Message:     "Project not found",
			Description: "We couldn't find \"" + res.Requested + "\", so here is " + p.Title + " instead.",
		})
	}

	h.Render(w, r, "project_detail", data)
}
