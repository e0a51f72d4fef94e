package testutil

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	catalogstore "github.com/dalemusser/portfolio/internal/app/store/catalog"
	"github.com/dalemusser/portfolio/internal/app/system/session"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a short-lived context for repository calls in tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// Project returns a minimal valid project. Mutators adjust it.
func Project(slug string, mutators ...func(*models.ProjectDetail)) models.ProjectDetail {
	p := models.ProjectDetail{
		Slug:             slug,
		Title:            "Project " + slug,
		Category:         "Web Development",
		Date:             "March 2024",
		ShortDescription: "Short description of " + slug,
		LongDescription:  "Long description of " + slug,
		Tags:             []string{"Go"},
	}
	for _, m := range mutators {
		m(&p)
	}
	return p
}

// WithImages attaches n image items to a project.
func WithImages(n int) func(*models.ProjectDetail) {
	return func(p *models.ProjectDetail) {
		for i := 0; i < n; i++ {
			p.Images = append(p.Images, models.MediaItem{
				Source:  fmt.Sprintf("https://img.example.com/%s/%d.png", p.Slug, i),
				Label:   fmt.Sprintf("%s screenshot %d", p.Slug, i+1),
				Caption: fmt.Sprintf("Caption %d", i+1),
				Kind:    models.MediaImage,
			})
		}
	}
}

// Featured marks a project as featured.
func Featured(p *models.ProjectDetail) { p.Featured = true }

// Owner is the profile used by catalog fixtures.
var Owner = models.Profile{
	Name:         "Alex Johnson",
	Role:         "Full-Stack Developer",
	Bio:          "Builds things.",
	Skills:       []string{"Go", "React"},
	Email:        "alex@example.com",
	GitHubURL:    "https://github.com/alex",
	Availability: "Available for new projects.",
}

// NewCatalog builds an in-memory catalog from projects, failing the test if
// they do not validate.
func NewCatalog(t *testing.T, projects ...models.ProjectDetail) *catalogstore.Store {
	t.Helper()
	s, err := catalogstore.New(catalogstore.Document{
		Site:     models.SiteSettings{SiteName: "Test Site"},
		Profile:  Owner,
		Projects: projects,
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return s
}

// ListingCatalog returns a catalog of n projects named p1..pn.
func ListingCatalog(t *testing.T, n int) *catalogstore.Store {
	t.Helper()
	ps := make([]models.ProjectDetail, 0, n)
	for i := 1; i <= n; i++ {
		ps = append(ps, Project(fmt.Sprintf("p%d", i)))
	}
	return NewCatalog(t, ps...)
}

// NewSessions returns an insecure (http) session manager for tests.
func NewSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager("test-session-key-must-be-32-chars-long", "test-session", "", time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}
	return m
}

// Rendered is one captured template render.
type Rendered struct {
	Name string
	Data any
}

// RenderCapture records renders in place of the template engine.
type RenderCapture struct {
	mu    sync.Mutex
	calls []Rendered
}

// Render satisfies viewdata.RenderFunc.
func (c *RenderCapture) Render(w http.ResponseWriter, r *http.Request, name string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, Rendered{Name: name, Data: data})
}

// Last returns the most recent render, failing the test if there was none.
func (c *RenderCapture) Last(t *testing.T) Rendered {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.calls) == 0 {
		t.Fatal("nothing was rendered")
	}
	return c.calls[len(c.calls)-1]
}

// Count returns the number of renders.
func (c *RenderCapture) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}
