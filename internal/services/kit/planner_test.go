package kit

import (
	"reflect"
	"testing"

	"github.com/healthforge/healthforge/internal/models"
)

func TestPlanQueries_FixedCategoryOrder(t *testing.T) {
	profile := models.UserProfile{Goals: []string{"weight_loss"}}

	queries := PlanQueries(profile)

	if len(queries) != 4 {
		t.Fatalf("expected 4 queries, got %d", len(queries))
	}
	want := []models.Category{
		models.CategoryExercise,
		models.CategorySupplement,
		models.CategoryGear,
		models.CategoryMealPlan,
	}
	for i, q := range queries {
		if q.Category != want[i] {
			t.Errorf("query %d: expected category %s, got %s", i, want[i], q.Category)
		}
	}
}

func TestPlanQueries_ResultSizes(t *testing.T) {
	queries := PlanQueries(models.UserProfile{Goals: []string{"endurance"}})

	for _, q := range queries {
		wantLimit := 3
		if q.Category == models.CategoryExercise {
			wantLimit = 5
		}
		if q.Limit != wantLimit {
			t.Errorf("category %s: expected limit %d, got %d", q.Category, wantLimit, q.Limit)
		}
	}
}

func TestPlanQueries_GoalsJoinedAsQueryText(t *testing.T) {
	profile := models.UserProfile{Goals: []string{"weight_loss", "muscle_gain"}}

	queries := PlanQueries(profile)

	for _, q := range queries {
		if q.Text != "weight_loss muscle_gain" {
			t.Errorf("category %s: expected query text %q, got %q", q.Category, "weight_loss muscle_gain", q.Text)
		}
		if !reflect.DeepEqual(q.Terms, profile.Goals) {
			t.Errorf("category %s: expected terms %v, got %v", q.Category, profile.Goals, q.Terms)
		}
	}
}

func TestPlanQueries_DifficultyDisjunctionIncludesBeginner(t *testing.T) {
	profile := models.UserProfile{Goals: []string{"strength"}, Difficulty: "advanced"}

	queries := PlanQueries(profile)

	want := []string{"advanced", "beginner"}
	for _, q := range queries {
		if !reflect.DeepEqual(q.Difficulties, want) {
			t.Errorf("category %s: expected difficulties %v, got %v", q.Category, want, q.Difficulties)
		}
	}
}

func TestPlanQueries_BeginnerNotDuplicated(t *testing.T) {
	profile := models.UserProfile{Goals: []string{"strength"}, Difficulty: "beginner"}

	queries := PlanQueries(profile)

	for _, q := range queries {
		if !reflect.DeepEqual(q.Difficulties, []string{"beginner"}) {
			t.Errorf("category %s: expected difficulties [beginner], got %v", q.Category, q.Difficulties)
		}
	}
}

func TestPlanQueries_AnyDifficultyOmitsFacet(t *testing.T) {
	for _, difficulty := range []string{"", "any"} {
		profile := models.UserProfile{Goals: []string{"strength"}, Difficulty: difficulty}

		for _, q := range PlanQueries(profile) {
			if q.Difficulties != nil {
				t.Errorf("difficulty %q, category %s: expected no difficulty facet, got %v", difficulty, q.Category, q.Difficulties)
			}
		}
	}
}

func TestPlanQueries_IndoorFacetExerciseOnly(t *testing.T) {
	profile := models.UserProfile{Goals: []string{"flexibility"}, IndoorOnly: true}

	for _, q := range PlanQueries(profile) {
		wantIndoor := q.Category == models.CategoryExercise
		if q.IndoorOnly != wantIndoor {
			t.Errorf("category %s: expected IndoorOnly=%v, got %v", q.Category, wantIndoor, q.IndoorOnly)
		}
	}
}

func TestPlanQueries_NoIndoorFacetWhenNotRequested(t *testing.T) {
	profile := models.UserProfile{Goals: []string{"flexibility"}}

	for _, q := range PlanQueries(profile) {
		if q.IndoorOnly {
			t.Errorf("category %s: expected no indoor facet", q.Category)
		}
	}
}
