// internal/domain/models/contact.go
package models

import "strings"

// ContactDraft is the in-progress contact form. The validate tags are the
// form schema; see inputval.Validate.
type ContactDraft struct {
	Name    string `form:"name" validate:"min=2" label:"Name"`
	Email   string `form:"email" validate:"email" label:"Email"`
	Message string `form:"message" validate:"min=10,max=500" label:"Message"`
}

// Normalized trims surrounding whitespace from every field.
func (d ContactDraft) Normalized() ContactDraft {
	return ContactDraft{
		Name:    strings.TrimSpace(d.Name),
		Email:   strings.TrimSpace(d.Email),
		Message: strings.TrimSpace(d.Message),
	}
}

// IsEmpty reports whether the draft is in its reset state.
func (d ContactDraft) IsEmpty() bool {
	return d == ContactDraft{}
}
