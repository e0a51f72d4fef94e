package contact

import (
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/domain/models"
)

// Form exposes the rendered form state for assertions.
func Form(data any) (draft models.ContactDraft, errs map[string]string, notices []notify.Notice) {
	d := data.(pageData)
	return d.Draft, d.Errors, d.Notices
}

// SubmitAsync exposes submitAsync to tests.
var SubmitAsync = submitAsync
