// Package projects serves the static portfolio project catalog and the
// related-project ranking.
package projects

import (
	"errors"
	"sort"
	"strings"

	"portfolio-server/model"
)

var ErrProjectNotFound = errors.New("project not found")

// DefaultRelatedLimit caps the related-project list.
const DefaultRelatedLimit = 6

// Repository answers project lookups over an injected catalog. The catalog
// is immutable after construction, so no locking is needed.
type Repository struct {
	catalog []model.Project
	byID    map[string]int
}

// NewRepository builds a repository over the given catalog.
func NewRepository(catalog []model.Project) *Repository {
	byID := make(map[string]int, len(catalog))
	for i, p := range catalog {
		byID[p.ID] = i
	}
	return &Repository{
		catalog: append([]model.Project(nil), catalog...),
		byID:    byID,
	}
}

// List returns projects in catalog order, optionally filtered by category
// and/or featured flag.
func (r *Repository) List(category string, featuredOnly bool) []model.Project {
	out := make([]model.Project, 0, len(r.catalog))
	for _, p := range r.catalog {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Get returns the project with the given id.
func (r *Repository) Get(id string) (model.Project, error) {
	i, ok := r.byID[id]
	if !ok {
		return model.Project{}, ErrProjectNotFound
	}
	return r.catalog[i], nil
}

// Related ranks the other projects against the given one: same category
// first, then by shared-technology count descending, ties broken by catalog
// order. At most limit entries are returned.
func (r *Repository) Related(id string, limit int) ([]model.Project, error) {
	base, err := r.Get(id)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	baseTech := make(map[string]bool, len(base.Technologies))
	for _, t := range base.Technologies {
		baseTech[strings.ToLower(t)] = true
	}

	type scored struct {
		project      model.Project
		sameCategory bool
		overlap      int
	}

	candidates := make([]scored, 0, len(r.catalog))
	for _, p := range r.catalog {
		if p.ID == id {
			continue
		}
		overlap := 0
		for _, t := range p.Technologies {
			if baseTech[strings.ToLower(t)] {
				overlap++
			}
		}
		candidates = append(candidates, scored{
			project:      p,
			sameCategory: strings.EqualFold(p.Category, base.Category),
			overlap:      overlap,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].sameCategory != candidates[j].sameCategory {
			return candidates[i].sameCategory
		}
		return candidates[i].overlap > candidates[j].overlap
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]model.Project, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.project)
	}
	return out, nil
}
