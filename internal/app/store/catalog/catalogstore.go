// internal/app/store/catalog/catalogstore.go
package catalogstore

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dalemusser/portfolio/internal/app/system/inputval"
	"github.com/dalemusser/portfolio/internal/domain/models"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound is returned when no project has the requested slug.
	ErrNotFound = errors.New("catalog: project not found")
	// ErrEmptyCatalog is returned when a default project is needed but the
	// catalog has none.
	ErrEmptyCatalog = errors.New("catalog: no projects")
)

//go:embed data/portfolio.yaml
var embedded []byte

// Repository is the read-only view of the portfolio content that handlers
// depend on.
type Repository interface {
	ListProjectSummaries(ctx context.Context) ([]models.ProjectSummary, error)
	FeaturedProjects(ctx context.Context, limit int) ([]models.ProjectSummary, error)
	ProjectBySlug(ctx context.Context, slug string) (models.ProjectDetail, error)
	DefaultProject(ctx context.Context) (models.ProjectDetail, error)
	Profile(ctx context.Context) (models.Profile, error)
	Site(ctx context.Context) (models.SiteSettings, error)
}

// Document is the on-disk catalog layout.
type Document struct {
	Site     models.SiteSettings    `yaml:"site"`
	Profile  models.Profile         `yaml:"profile"`
	Projects []models.ProjectDetail `yaml:"projects"`
}

// Store is an immutable in-memory catalog. It is safe for concurrent use.
// Project order is catalog order; the first project is the default.
type Store struct {
	doc    Document
	bySlug map[string]int
}

var _ Repository = (*Store)(nil)

// New validates doc and builds a Store from it.
func New(doc Document) (*Store, error) {
	if res := inputval.Validate(doc.Profile); res.HasErrors() {
		return nil, fmt.Errorf("catalog profile: %w", res.Err())
	}
	s := &Store{doc: doc, bySlug: make(map[string]int, len(doc.Projects))}
	for i := range s.doc.Projects {
		p := &s.doc.Projects[i]
		if res := inputval.Validate(*p); res.HasErrors() {
			return nil, fmt.Errorf("catalog project %d (%q): %w", i, p.Slug, res.Err())
		}
		if prev, dup := s.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q (projects %d and %d)", p.Slug, prev, i)
		}
		for j := range p.Images {
			kind, err := models.ParseMediaKind(string(p.Images[j].Kind))
			if err != nil {
				return nil, fmt.Errorf("catalog project %q image %d: %w", p.Slug, j, err)
			}
			p.Images[j].Kind = kind
		}
		s.bySlug[p.Slug] = i
	}
	if strings.TrimSpace(s.doc.Site.SiteName) == "" {
		s.doc.Site.SiteName = models.DefaultSiteName
	}
	return s, nil
}

// Load decodes a YAML catalog from r. Unknown keys are rejected so typos in
// hand-edited catalogs surface at startup.
func Load(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc)
}

// LoadFile loads the catalog at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// LoadEmbedded loads the catalog compiled into the binary.
func LoadEmbedded() (*Store, error) {
	return Load(bytes.NewReader(embedded))
}

// Len returns the number of projects.
func (s *Store) Len() int { return len(s.doc.Projects) }

// ListProjectSummaries returns every project as a listing card, in catalog order.
func (s *Store) ListProjectSummaries(ctx context.Context) ([]models.ProjectSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.ProjectSummary, 0, len(s.doc.Projects))
	for _, p := range s.doc.Projects {
		out = append(out, p.Summary())
	}
	return out, nil
}

// FeaturedProjects returns up to limit projects marked featured. A limit
// ≤ 0 means no limit.
func (s *Store) FeaturedProjects(ctx context.Context, limit int) ([]models.ProjectSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.ProjectSummary
	for _, p := range s.doc.Projects {
		if !p.Featured {
			continue
		}
		out = append(out, p.Summary())
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// ProjectBySlug returns the project with the exact slug, or ErrNotFound.
func (s *Store) ProjectBySlug(ctx context.Context, slug string) (models.ProjectDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ProjectDetail{}, err
	}
	i, ok := s.bySlug[slug]
	if !ok {
		return models.ProjectDetail{}, ErrNotFound
	}
	return s.doc.Projects[i], nil
}

// DefaultProject returns the first project, or ErrEmptyCatalog.
func (s *Store) DefaultProject(ctx context.Context) (models.ProjectDetail, error) {
	if err := ctx.Err(); err != nil {
		return models.ProjectDetail{}, err
	}
	if len(s.doc.Projects) == 0 {
		return models.ProjectDetail{}, ErrEmptyCatalog
	}
	return s.doc.Projects[0], nil
}

// Profile returns the site owner's profile.
func (s *Store) Profile(ctx context.Context) (models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return models.Profile{}, err
	}
	return s.doc.Profile, nil
}

// Site returns the site-wide display settings.
func (s *Store) Site(ctx context.Context) (models.SiteSettings, error) {
	if err := ctx.Err(); err != nil {
		return models.SiteSettings{}, err
	}
	return s.doc.Site, nil
}
