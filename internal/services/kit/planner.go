package kit

import (
	"strings"

	"github.com/healthforge/healthforge/internal/models"
	"github.com/healthforge/healthforge/internal/search"
)

// Exercises get more result slots than the other categories: a kit should
// hold a short routine, not a single move.
const (
	exerciseResultSize = 5
	defaultResultSize  = 3
)

// PlanQueries maps a profile to exactly four query descriptors, one per
// category, in the fixed assembly order. It performs no filtering itself.
//
// The difficulty facet is a disjunction of the requested tier and beginner,
// so novice-safe content is never filtered out by a stricter request. The
// indoor facet applies to exercise only, and only when the profile asks for
// indoor-only.
func PlanQueries(profile models.UserProfile) []search.Query {
	text := strings.Join(profile.Goals, " ")

	var difficulties []string
	if profile.Difficulty != "" && profile.Difficulty != models.DifficultyAny {
		difficulties = []string{profile.Difficulty}
		if profile.Difficulty != "beginner" {
			difficulties = append(difficulties, "beginner")
		}
	}

	queries := make([]search.Query, 0, len(models.Categories))
	for _, category := range models.Categories {
		q := search.Query{
			Text:         text,
			Terms:        profile.Goals,
			Category:     category,
			Difficulties: difficulties,
			Limit:        defaultResultSize,
		}
		if category == models.CategoryExercise {
			q.Limit = exerciseResultSize
			q.IndoorOnly = profile.IndoorOnly
		}
		queries = append(queries, q)
	}

	return queries
}
