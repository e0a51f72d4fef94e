package home

// Page exposes the rendered view model for assertions.
func Page(data any) (featured []string, teaserText string) {
	d := data.(pageData)
	for _, p := range d.Featured {
		featured = append(featured, p.Slug)
	}
	return featured, d.Teaser
}
