package about

import "html/template"

// Page exposes the rendered view model for assertions.
func Page(data any) (name, initials string, bio template.HTML) {
	d := data.(pageData)
	return d.Profile.Name, d.Initials, d.Bio
}
