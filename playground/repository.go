// Package playground manages the in-memory catalog of code examples:
// filtering, forking, likes and per-example file edits.
package playground

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-server/model"
)

var (
	ErrExampleNotFound = errors.New("code example not found")
	ErrFileNotFound    = errors.New("file not found in example")
	ErrFileExists      = errors.New("file id already exists in example")
	ErrLastFile        = errors.New("cannot remove the last file of an example")
	ErrFileReadOnly    = errors.New("file is read-only")
)

// Filter narrows the example listing. Zero-value fields match everything;
// set fields combine with AND.
type Filter struct {
	Category   string
	Difficulty model.Difficulty
	Framework  model.Framework
	Search     string
}

// Repository holds the example catalog. The catalog is owned exclusively
// by the repository instance; callers receive copies.
type Repository struct {
	mu       sync.Mutex
	examples []model.CodeExample
}

// NewRepository seeds a repository from the given catalog. Supplying the
// catalog keeps tests free of import-time fixtures.
func NewRepository(seed []model.CodeExample) *Repository {
	examples := make([]model.CodeExample, 0, len(seed))
	for _, e := range seed {
		examples = append(examples, e.Clone())
	}
	return &Repository{examples: examples}
}

// List returns the examples matching the filter, in catalog order.
func (r *Repository) List(f Filter) []model.CodeExample {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.CodeExample, 0, len(r.examples))
	for _, e := range r.examples {
		if matches(e, f) {
			out = append(out, e.Clone())
		}
	}
	return out
}

func matches(e model.CodeExample, f Filter) bool {
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	if f.Difficulty != "" && e.Difficulty != f.Difficulty {
		return false
	}
	if f.Framework != "" && e.Framework != f.Framework {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Title), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) &&
			!tagMatch(e.Tags, needle) {
			return false
		}
	}
	return true
}

func tagMatch(tags []string, needle string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Get returns a copy of the example with the given id.
func (r *Repository) Get(id string) (model.CodeExample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.CodeExample{}, ErrExampleNotFound
	}
	return r.examples[i].Clone(), nil
}

// View increments the view counter and returns the updated example.
func (r *Repository) View(id string) (model.CodeExample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.CodeExample{}, ErrExampleNotFound
	}
	r.examples[i].Stats.Views++
	return r.examples[i].Clone(), nil
}

// Like increments the like counter and returns the new count.
func (r *Repository) Like(id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return 0, ErrExampleNotFound
	}
	r.examples[i].Stats.Likes++
	return r.examples[i].Stats.Likes, nil
}

// Fork deep-copies an example under a new id with zeroed stats, appends it
// to the catalog and increments the parent's fork counter.
func (r *Repository) Fork(id string) (model.CodeExample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return model.CodeExample{}, ErrExampleNotFound
	}

	fork := r.examples[i].Clone()
	fork.ID = uuid.New().String()
	fork.Title = fork.Title + " (fork)"
	fork.Stats = model.ExampleStats{}
	fork.CreatedAt = time.Now()
	fork.Featured = false

	r.examples[i].Stats.Forks++
	r.examples = append(r.examples, fork)

	log.Info().
		Str("source_id", id).
		Str("fork_id", fork.ID).
		Msg("Example forked")

	return fork.Clone(), nil
}

// AddFile appends a file to an example. File ids must be unique within the
// example.
func (r *Repository) AddFile(exampleID string, file model.CodeFile) (model.CodeExample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(exampleID)
	if i < 0 {
		return model.CodeExample{}, ErrExampleNotFound
	}
	for _, f := range r.examples[i].Files {
		if f.ID == file.ID {
			return model.CodeExample{}, ErrFileExists
		}
	}
	r.examples[i].Files = append(r.examples[i].Files, file)
	return r.examples[i].Clone(), nil
}

// RemoveFile deletes a file from an example. The last remaining file and
// read-only files cannot be removed.
func (r *Repository) RemoveFile(exampleID, fileID string) (model.CodeExample, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(exampleID)
	if i < 0 {
		return model.CodeExample{}, ErrExampleNotFound
	}

	files := r.examples[i].Files
	if len(files) <= 1 {
		return model.CodeExample{}, ErrLastFile
	}

	for j, f := range files {
		if f.ID != fileID {
			continue
		}
		if f.ReadOnly {
			return model.CodeExample{}, ErrFileReadOnly
		}
		r.examples[i].Files = append(files[:j:j], files[j+1:]...)
		return r.examples[i].Clone(), nil
	}
	return model.CodeExample{}, ErrFileNotFound
}

// Len returns the catalog size.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.examples)
}

// index returns the catalog position of an id, or -1. Caller holds the
// lock.
func (r *Repository) index(id string) int {
	for i := range r.examples {
		if r.examples[i].ID == id {
			return i
		}
	}
	return -1
}
