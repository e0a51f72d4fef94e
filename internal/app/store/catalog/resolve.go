package catalogstore

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/portfolio/internal/domain/models"
)

// Resolution is the outcome of resolving a requested project slug.
type Resolution struct {
	Project   models.ProjectDetail
	Requested string // slug asked for, "" if none
	Fallback  bool   // Project is the default because Requested was absent or unknown
}

// Missed reports whether a specific slug was asked for but not found.
func (r Resolution) Missed() bool { return r.Fallback && r.Requested != "" }

// Resolve picks the project to show for slug: the exact match if there is
// one, otherwise the catalog's default project. It only fails when the
// catalog is empty (ErrEmptyCatalog) or the context is done.
func Resolve(ctx context.Context, repo Repository, slug string) (Resolution, error) {
	slug = strings.TrimSpace(slug)
	if slug != "" {
		p, err := repo.ProjectBySlug(ctx, slug)
		switch {
		case err == nil:
			return Resolution{Project: p, Requested: slug}, nil
		case !errors.Is(err, ErrNotFound):
			return Resolution{}, err
		}
	}
	p, err := repo.DefaultProject(ctx)
	if err != nil {
		return Resolution{Requested: slug}, err
	}
	return Resolution{Project: p, Requested: slug, Fallback: true}, nil
}
