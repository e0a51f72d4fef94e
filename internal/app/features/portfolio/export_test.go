package portfolio

// Page exposes the rendered view model for assertions.
func Page(data any) (slugs []string, page int, totalLinks int) {
	d := data.(pageData)
	for _, p := range d.Projects {
		slugs = append(slugs, p.Slug)
	}
	return slugs, d.Page, len(d.Pager.Links)
}
