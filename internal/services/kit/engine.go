// Package kit assembles personalized wellness kits: it plans one catalog
// query per category, filters the hits against the user's constraints,
// analyzes equipment gaps and derives summary metrics.
package kit

import (
	"context"
	"fmt"

	"github.com/healthforge/healthforge/internal/logging"
	"github.com/healthforge/healthforge/internal/models"
	"github.com/healthforge/healthforge/internal/search"
)

const buildErrorMessage = "Error building kit. Please try again."

// Engine is the kit assembly engine. It performs no I/O of its own beyond
// the injected search collaborator, never mutates profile or items, and
// keeps no state between invocations.
type Engine struct {
	searcher search.Searcher
}

func NewEngine(searcher search.Searcher) *Engine {
	return &Engine{searcher: searcher}
}

// Result is one invocation's output: the assembled kit in category order
// and every alert in emission order.
type Result struct {
	Kit    []models.Item  `json:"kit"`
	Alerts []models.Alert `json:"alerts"`
}

// Grouped returns the kit partitioned by category, preserving the
// per-category item order.
func (r *Result) Grouped() map[models.Category][]models.Item {
	grouped := make(map[models.Category][]models.Item)
	for _, item := range r.Kit {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}

// Summary derives the aggregate metrics for the kit.
func (r *Result) Summary() Summary {
	return Summarize(r.Kit)
}

// Assemble runs one full kit assembly for the profile snapshot.
//
// The four category queries are issued sequentially in the fixed category
// order; that order fixes both the kit layout and the alert sequence. When
// any query fails the whole assembly is abandoned: the returned result
// carries no items and a single error-kind alert, never a partial kit, and
// the underlying error is returned for the caller to log. A category with
// zero hits is not a failure.
func (e *Engine) Assemble(ctx context.Context, profile models.UserProfile) (*Result, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}
	for _, q := range PlanQueries(profile) {
		hits, err := e.searcher.Search(ctx, q)
		if err != nil {
			logging.Error("Category query failed; abandoning kit assembly", map[string]interface{}{
				"category": string(q.Category),
				"error":    err.Error(),
			})
			failed := &Result{Alerts: []models.Alert{{Kind: models.AlertError, Message: buildErrorMessage}}}
			return failed, fmt.Errorf("querying %s catalog: %w", q.Category, err)
		}

		included, alerts := filterCategory(profile, hits)
		result.Kit = append(result.Kit, included...)
		result.Alerts = append(result.Alerts, alerts...)
	}

	result.Alerts = append(result.Alerts, EquipmentGaps(result.Kit)...)

	return result, nil
}
