package projects

import (
	"errors"
	"testing"

	"portfolio-server/model"
)

func fixture() []model.Project {
	return []model.Project{
		{ID: "p1", Title: "Alpha", Category: "web", Technologies: []string{"React", "TypeScript", "Node"}, Featured: true},
		{ID: "p2", Title: "Beta", Category: "web", Technologies: []string{"Vue", "TypeScript"}},
		{ID: "p3", Title: "Gamma", Category: "backend", Technologies: []string{"Go", "Redis"}},
		{ID: "p4", Title: "Delta", Category: "backend", Technologies: []string{"React", "TypeScript", "Node"}},
		{ID: "p5", Title: "Epsilon", Category: "mobile", Technologies: []string{"React Native", "TypeScript"}},
		{ID: "p6", Title: "Zeta", Category: "web", Technologies: []string{"Svelte"}, Featured: true},
		{ID: "p7", Title: "Eta", Category: "web", Technologies: []string{"React"}},
		{ID: "p8", Title: "Theta", Category: "web", Technologies: []string{"Angular"}},
	}
}

func TestGet(t *testing.T) {
	repo := NewRepository(fixture())

	p, err := repo.Get("p3")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p.Title != "Gamma" {
		t.Errorf("Got %q, want Gamma", p.Title)
	}

	if _, err := repo.Get("missing"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	repo := NewRepository(fixture())

	tests := []struct {
		name     string
		category string
		featured bool
		want     int
	}{
		{"All", "", false, 8},
		{"Web only", "web", false, 5},
		{"Featured only", "", true, 2},
		{"Featured web", "web", true, 2},
		{"Unknown category", "desktop", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repo.List(tt.category, tt.featured)
			if len(got) != tt.want {
				t.Errorf("Expected %d projects, got %d", tt.want, len(got))
			}
		})
	}
}

func TestRelatedRanking(t *testing.T) {
	repo := NewRepository(fixture())

	got, err := repo.Related("p1", 6)
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}

	// Same category (web) first, ranked by technology overlap with p1
	// (React, TypeScript, Node): p2 overlaps 1, p6 0, p7 1, p8 0.
	// Overlap ties keep catalog order, so: p2, p7, p6, p8, then other
	// categories by overlap: p4 (3), p5 (1), capped at 6.
	wantOrder := []string{"p2", "p7", "p6", "p8", "p4", "p5"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Expected %d related projects, got %d", len(wantOrder), len(got))
	}
	for i, w := range wantOrder {
		if got[i].ID != w {
			t.Errorf("Position %d: got %s, want %s", i, got[i].ID, w)
		}
	}
}

func TestRelatedExcludesSelfAndCapsAtLimit(t *testing.T) {
	repo := NewRepository(fixture())

	got, err := repo.Related("p1", 6)
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}
	if len(got) > 6 {
		t.Errorf("Related list should be capped at 6, got %d", len(got))
	}
	for _, p := range got {
		if p.ID == "p1" {
			t.Error("Related list must not contain the project itself")
		}
	}
}

func TestRelatedUnknownProject(t *testing.T) {
	repo := NewRepository(fixture())
	if _, err := repo.Related("missing", 6); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("Expected ErrProjectNotFound, got %v", err)
	}
}

func TestDefaultCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range DefaultCatalog() {
		if seen[p.ID] {
			t.Errorf("Duplicate project id %s", p.ID)
		}
		seen[p.ID] = true
	}
}
