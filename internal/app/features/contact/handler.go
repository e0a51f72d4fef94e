// internal/app/features/contact/handler.go
package contact

import (
	"context"
	"net/http"
	"unicode/utf8"

	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/inputval"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/app/system/timeouts"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// MessageMax mirrors the max rule on models.ContactDraft.Message.
const MessageMax = 500

var (
	sentNotice = notify.Notice{
		Kind:        notify.Success,
		Message:     "Message sent successfully!",
		Description: "Thanks for reaching out. I'll get back to you soon.",
	}
	failedNotice = notify.Notice{
		Kind:        notify.Error,
		Message:     "Message not sent",
		Description: "Something went wrong while sending. Your message is still here; please try again.",
	}
)

// formField feeds the shared form_field partial.
type formField struct {
	ID          string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Error       string
}

type pageData struct {
	viewdata.BaseVM
	Profile      models.Profile
	Draft        models.ContactDraft
	Errors       map[string]string
	Fields       []formField
	MessageError string
	MessageLen   int
	MessageMax   int
}

type Handler struct {
	Catalog   catalogstore.Repository
	Submitter Submitter
	Notifier  notify.Notifier
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
	Render    viewdata.RenderFunc
}

func NewHandler(catalog catalogstore.Repository, submitter Submitter, notifier notify.Notifier, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:   catalog,
		Submitter: submitter,
		Notifier:  notifier,
		ErrLog:    errLog,
		Log:       logger,
		Render:    viewdata.Render,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /contact                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, r, http.StatusOK, models.ContactDraft{}, nil)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /contact                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse contact form failed", err, "We couldn't read that form submission.", "/contact")
		return
	}

	draft := models.ContactDraft{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}.Normalized()

	if res := inputval.Validate(draft); res.HasErrors() {
		h.renderForm(w, r, http.StatusUnprocessableEntity, draft, res.Map())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Submit(), h.Log, "contact submit")
	defer cancel()

	rc, err := submitAsync(ctx, h.Submitter, draft)
	if err != nil {
		h.Log.Warn("contact submission failed", zap.Error(err))
		h.renderForm(w, r, http.StatusServiceUnavailable, draft, nil, failedNotice)
		return
	}

	h.Log.Debug("contact submission accepted", zap.String("receipt", rc.ID))
	if h.Notifier == nil {
		// No flash store; confirm in this response with a cleared form.
		h.renderForm(w, r, http.StatusOK, models.ContactDraft{}, nil, sentNotice)
		return
	}
	h.Notifier.Notify(w, r, sentNotice)
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, status int, draft models.ContactDraft, errs map[string]string, notices ...notify.Notice) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	profile, err := h.Catalog.Profile(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load profile failed", err, "We couldn't load this page.", "/")
		return
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, "Contact Me", "/"),
		Profile: profile,
		Draft:   draft,
		Errors:  errs,
		Fields: []formField{
			{ID: "name", Label: "Full Name", Type: "text", Value: draft.Name, Placeholder: "Jane Doe", Error: errs["Name"]},
			{ID: "email", Label: "Email Address", Type: "email", Value: draft.Email, Placeholder: "you@example.com", Error: errs["Email"]},
		},
		MessageError: errs["Message"],
		MessageLen:   utf8.RuneCountInString(draft.Message),
		MessageMax:   MessageMax,
	}
	data.Notices = append(data.Notices, notices...)

	if status == http.StatusOK {
		h.Render(w, r, "contact", data)
		return
	}
	viewdata.RenderStatus(h.Render, w, r, status, "contact", data)
}
