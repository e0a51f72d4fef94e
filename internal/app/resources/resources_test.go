package resources_test

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/url"
	"testing"

	"github.com/dalemusser/portfolio/internal/app/features/about"
	"github.com/dalemusser/portfolio/internal/app/features/contact"
	uierrors "github.com/dalemusser/portfolio/internal/app/features/errors"
	"github.com/dalemusser/portfolio/internal/app/features/home"
	"github.com/dalemusser/portfolio/internal/app/features/portfolio"
	"github.com/dalemusser/portfolio/internal/app/features/projectdetail"
	"github.com/dalemusser/portfolio/internal/app/resources"
	"github.com/dalemusser/portfolio/internal/app/system/gallery"
	"github.com/dalemusser/portfolio/internal/app/system/notify"
	"github.com/dalemusser/portfolio/internal/app/system/paging"
	"github.com/dalemusser/portfolio/internal/app/system/viewdata"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseAll(t *testing.T) *template.Template {
	t.Helper()
	tpl := template.New("root")
	for _, fsys := range []fs.FS{resources.FS, home.FS, about.FS, contact.FS, portfolio.FS, projectdetail.FS, uierrors.FS} {
		var err error
		tpl, err = tpl.ParseFS(fsys, "templates/*.gohtml")
		require.NoError(t, err)
	}
	return tpl
}

func render(t *testing.T, tpl *template.Template, name string, data any) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, tpl.ExecuteTemplate(&buf, name, data))
	return buf.String()
}

func TestTemplatesParse(t *testing.T) {
	tpl := parseAll(t)
	for _, name := range []string{
		"layout_start", "layout_end", "notices", "badge", "project_card", "form_field", "pagination", "gallery",
		"home", "about", "contact", "portfolio_list", "project_detail", "error_page", "error_not_found",
	} {
		assert.NotNil(t, tpl.Lookup(name), name)
	}
}

func TestLayout(t *testing.T) {
	tpl := parseAll(t)
	vm := viewdata.BaseVM{
		SiteName:  "Alex.dev",
		OwnerName: "Alex Johnson",
		Title:     "About",
		Nav:       viewdata.Nav("/about"),
		Year:      2026,
		Notices:   []notify.Notice{{Kind: notify.Success, Message: "Saved"}},
	}
	out := render(t, tpl, "layout_start", vm) + render(t, tpl, "layout_end", vm)
	assert.Contains(t, out, "<title>About · Alex Johnson</title>")
	assert.Contains(t, out, `class="active" aria-current="page">About`)
	assert.Contains(t, out, "toast-success")
	assert.Contains(t, out, "&copy; 2026 Alex.dev")
}

func TestProjectCard(t *testing.T) {
	tpl := parseAll(t)

	out := render(t, tpl, "project_card", models.ProjectSummary{Slug: "eco", Title: "Eco <Tracker>", Tags: []string{"Go"}})
	assert.Contains(t, out, `href="/project-detail/eco"`)
	assert.Contains(t, out, "Eco &lt;Tracker&gt;")
	assert.Contains(t, out, "image-placeholder", "missing image shows the placeholder")
	assert.Contains(t, out, `<span class="badge">Go</span>`)
}

func TestPagination(t *testing.T) {
	tpl := parseAll(t)

	p := paging.New(7, 6)
	out := render(t, tpl, "pagination", p.View(func(n int) string { return paging.URL("/portfolio", n) }))
	assert.Contains(t, out, `aria-disabled="true">Previous`)
	assert.Contains(t, out, `href="/portfolio?page=2" rel="next"`)

	assert.NotContains(t, render(t, tpl, "pagination", paging.New(3, 6).View(func(int) string { return "" })), "<nav")
}

func TestGallery(t *testing.T) {
	tpl := parseAll(t)
	items := []models.MediaItem{
		{Source: "https://img.example.com/1.png", Label: "Dashboard", Caption: "Main view", Kind: models.MediaImage},
		{Source: "https://img.example.com/demo.mp4", Label: "Demo", Kind: models.MediaVideo},
	}
	base := &url.URL{Path: "/project-detail/eco"}

	browsing := render(t, tpl, "gallery", gallery.Build(items, gallery.New(2), gallery.QueryLink(base, "gallery")))
	assert.Contains(t, browsing, `alt="Dashboard"`)
	assert.NotContains(t, browsing, `role="dialog"`)

	open := gallery.Restore(2, 1, true)
	lightbox := render(t, tpl, "gallery", gallery.Build(items, open, gallery.QueryLink(base, "gallery")))
	assert.Contains(t, lightbox, `role="dialog"`)
	assert.Contains(t, lightbox, "<video")
	assert.Contains(t, lightbox, "2 of 2")
}

func TestGallery_Empty(t *testing.T) {
	tpl := parseAll(t)

	out := render(t, tpl, "gallery", gallery.View{Empty: true})
	assert.Contains(t, out, "No images or videos to display.")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, "<video")
	assert.NotContains(t, out, `role="dialog"`)

	none := render(t, tpl, "gallery", gallery.Build(nil, gallery.New(0), gallery.QueryLink(&url.URL{Path: "/p"}, "gallery")))
	assert.Contains(t, none, "No images or videos to display.")
}
