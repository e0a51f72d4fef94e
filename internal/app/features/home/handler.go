package home

import (
	"context"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// DefaultFeaturedLimit is how many featured projects the hero shows when
// not configured.
const DefaultFeaturedLimit = 3

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog       catalogstore.Repository
	FeaturedLimit int
	ErrLog        *uierrors.ErrorLogger
	Log           *zap.Logger
	Render        viewdata.RenderFunc
}

func NewHandler(catalog catalogstore.Repository, featuredLimit int, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if featuredLimit < 1 {
		featuredLimit = DefaultFeaturedLimit
	}
	return &Handler{
		Catalog:       catalog,
		FeaturedLimit: featuredLimit,
		ErrLog:        errLog,
		Log:           logger,
		Render:        viewdata.Render,
	}
}

type pageData struct {
	viewdata.BaseVM
	Profile  models.Profile
	Teaser   string
	Featured []models.ProjectSummary
}

// teaser is the first paragraph of a bio.
func teaser(bio string) string {
	bio = strings.TrimSpace(bio)
	if i := strings.Index(bio, "\n\n"); i >= 0 {
		return strings.TrimSpace(bio[:i])
	}
	return bio
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.Catalog.Profile(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load profile failed", err, "We couldn't load this page.", "/")
		return
	}
	featured, err := h.Catalog.FeaturedProjects(ctx, h.FeaturedLimit)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load featured projects failed", err, "We couldn't load this page.", "/")
		return
	}

	data := pageData{
		BaseVM:   viewdata.NewBaseVM(w, r, "Home", "/"),
		Profile:  profile,
		Teaser:   teaser(profile.Bio),
		Featured: featured,
	}
	h.Render(w, r, "home", data)
}
