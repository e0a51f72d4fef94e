package projectdetail

import (
	"github.com/dalemusser/portfolio/internal/app/system/gallery"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
)

// Detail is the subset of the view model tests assert on.
type Detail struct {
	Empty     bool
	Slug      string
	Fallback  bool
	HeadTitle string
	Crumbs    []string
	Gallery   gallery.View
	Notices   []notify.Notice
}

// Page exposes the rendered view model for assertions.
func Page(data any) Detail {
	d := data.(pageData)
	out := Detail{
		Empty:     d.Empty,
		Slug:      d.Project.Slug,
		Fallback:  d.Fallback,
		HeadTitle: d.PageTitle(),
		Gallery:   d.Gallery,
		Notices:   d.Notices,
	}
	for _, c := range d.Breadcrumb {
		out.Crumbs = append(out.Crumbs, c.Label)
	}
	return out
}
