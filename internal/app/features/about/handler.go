// internal/app/features/about/handler.go
package about

import (
	"context"
	"html/template"
	"net/http"

	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Profile    models.Profile
	Initials   string
	Bio        template.HTML
	Philosophy template.HTML
}

type Handler struct {
	Catalog catalogstore.Repository
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
	Render  viewdata.RenderFunc
}

func NewHandler(catalog catalogstore.Repository, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Catalog: catalog, ErrLog: errLog, Log: logger, Render: viewdata.Render}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.Catalog.Profile(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load profile failed", err, "We couldn't load this page.", "/")
		return
	}

	data := pageData{
		BaseVM:     viewdata.NewBaseVM(w, r, "About Me", "/"),
		Profile:    profile,
		Initials:   profile.Initials(),
		Bio:        htmlsanitize.PrepareForDisplay(profile.Bio),
		Philosophy: htmlsanitize.PrepareForDisplay(profile.Philosophy),
	}

	h.Render(w, r, "about", data)
}
