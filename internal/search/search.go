// Package search defines the catalog search collaborator consumed by the
// kit engine, and its Algolia-backed implementation.
package search

import (
	"context"

	"github.com/healthforge/healthforge/internal/models"
)

// Query is a single-category catalog query descriptor.
type Query struct {
	// Text is the full-text search phrase, the profile's goals joined by
	// spaces. Terms carries the individual goal tags for backends that
	// match tags directly instead of ranking free text.
	Text  string
	Terms []string

	// Category is the exact-match category facet.
	Category models.Category

	// Difficulties is a disjunctive difficulty facet: a hit matches when
	// its difficulty equals any listed value. Empty means no facet.
	Difficulties []string

	// IndoorOnly restricts hits to indoor items. Only ever set for the
	// exercise category.
	IndoorOnly bool

	// Limit is the maximum number of hits to return.
	Limit int
}

// Searcher executes one catalog query. Implementations own result ranking;
// the engine only relies on the returned order being stable.
type Searcher interface {
	Search(ctx context.Context, q Query) ([]models.Item, error)
}
