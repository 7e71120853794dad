// Package catalog is the Postgres-backed item catalog. It doubles as the
// default search collaborator when no hosted index is configured.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/healthforge/healthforge/internal/models"
	"github.com/healthforge/healthforge/internal/search"
)

type Store struct {
	db DB
}

func NewStore(db DB) *Store {
	return &Store{db: db}
}

const itemColumns = `id, name, category, subcategory, difficulty,
	duration_minutes, calories_per_30min, calories_daily,
	protein_g, carbs_g, fat_g, meals_per_day,
	muscle_groups, equipment, indoor, goals, weather_suitability,
	benefits, allergens, dosage, diet_type, description, rating,
	compatibility_tags, price_range_usd`

// flatItem mirrors the catalog_items row; rebuilding the tagged variant
// happens after scanning.
type flatItem struct {
	id, name, category, subcategory, difficulty string
	durationMinutes, caloriesPer30Min           int
	caloriesDaily, proteinG, carbsG, fatG       int
	mealsPerDay                                 int
	muscleGroups, equipment                     []string
	indoor                                      bool
	goals, weatherSuitability                   []string
	benefits, allergens                         []string
	dosage, dietType, description               string
	rating                                      float64
	compatibilityTags                           []string
	priceUSD                                    float64
}

func scanItem(row Row) (models.Item, error) {
	var f flatItem
	err := row.Scan(
		&f.id, &f.name, &f.category, &f.subcategory, &f.difficulty,
		&f.durationMinutes, &f.caloriesPer30Min, &f.caloriesDaily,
		&f.proteinG, &f.carbsG, &f.fatG, &f.mealsPerDay,
		&f.muscleGroups, &f.equipment, &f.indoor, &f.goals, &f.weatherSuitability,
		&f.benefits, &f.allergens, &f.dosage, &f.dietType, &f.description, &f.rating,
		&f.compatibilityTags, &f.priceUSD,
	)
	if err != nil {
		return models.Item{}, err
	}

	item := models.Item{
		ID:                 f.id,
		Name:               f.name,
		Category:           models.Category(f.category),
		Subcategory:        f.subcategory,
		Difficulty:         f.difficulty,
		Goals:              f.goals,
		WeatherSuitability: f.weatherSuitability,
		Allergens:          f.allergens,
		CompatibilityTags:  f.compatibilityTags,
		Description:        f.description,
		Rating:             f.rating,
		PriceUSD:           f.priceUSD,
	}

	switch item.Category {
	case models.CategoryExercise:
		item.Exercise = &models.ExerciseDetails{
			DurationMinutes:  f.durationMinutes,
			CaloriesPer30Min: f.caloriesPer30Min,
			MuscleGroups:     f.muscleGroups,
			Equipment:        f.equipment,
			Indoor:           f.indoor,
		}
	case models.CategorySupplement:
		item.Supplement = &models.SupplementDetails{
			Dosage:   f.dosage,
			Benefits: f.benefits,
		}
	case models.CategoryMealPlan:
		item.MealPlan = &models.MealPlanDetails{
			CaloriesDaily: f.caloriesDaily,
			Macros:        models.Macros{ProteinG: f.proteinG, CarbsG: f.carbsG, FatG: f.fatG},
			MealsPerDay:   f.mealsPerDay,
			DietType:      f.dietType,
		}
	}

	return item, nil
}

func collectItems(rows Rows) ([]models.Item, error) {
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning catalog item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog items: %w", err)
	}

	return items, nil
}

// Upsert writes an item, replacing any previous record with the same id.
func (s *Store) Upsert(ctx context.Context, item models.Item) error {
	var (
		durationMinutes, caloriesPer30Min       int
		caloriesDaily, proteinG, carbsG, fatG   int
		mealsPerDay                             int
		muscleGroups, equipment, benefits       []string
		indoor                                  bool
		dosage, dietType                        string
	)

	switch {
	case item.Exercise != nil:
		durationMinutes = item.Exercise.DurationMinutes
		caloriesPer30Min = item.Exercise.CaloriesPer30Min
		muscleGroups = item.Exercise.MuscleGroups
		equipment = item.Exercise.Equipment
		indoor = item.Exercise.Indoor
	case item.Supplement != nil:
		dosage = item.Supplement.Dosage
		benefits = item.Supplement.Benefits
	case item.MealPlan != nil:
		caloriesDaily = item.MealPlan.CaloriesDaily
		proteinG = item.MealPlan.Macros.ProteinG
		carbsG = item.MealPlan.Macros.CarbsG
		fatG = item.MealPlan.Macros.FatG
		mealsPerDay = item.MealPlan.MealsPerDay
		dietType = item.MealPlan.DietType
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO catalog_items (
			id, name, category, subcategory, difficulty,
			duration_minutes, calories_per_30min, calories_daily,
			protein_g, carbs_g, fat_g, meals_per_day,
			muscle_groups, equipment, indoor, goals, weather_suitability,
			benefits, allergens, dosage, diet_type, description, rating,
			compatibility_tags, price_range_usd
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			$14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25
		)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			difficulty = EXCLUDED.difficulty,
			duration_minutes = EXCLUDED.duration_minutes,
			calories_per_30min = EXCLUDED.calories_per_30min,
			calories_daily = EXCLUDED.calories_daily,
			protein_g = EXCLUDED.protein_g,
			carbs_g = EXCLUDED.carbs_g,
			fat_g = EXCLUDED.fat_g,
			meals_per_day = EXCLUDED.meals_per_day,
			muscle_groups = EXCLUDED.muscle_groups,
			equipment = EXCLUDED.equipment,
			indoor = EXCLUDED.indoor,
			goals = EXCLUDED.goals,
			weather_suitability = EXCLUDED.weather_suitability,
			benefits = EXCLUDED.benefits,
			allergens = EXCLUDED.allergens,
			dosage = EXCLUDED.dosage,
			diet_type = EXCLUDED.diet_type,
			description = EXCLUDED.description,
			rating = EXCLUDED.rating,
			compatibility_tags = EXCLUDED.compatibility_tags,
			price_range_usd = EXCLUDED.price_range_usd,
			updated_at = now()`,
		item.ID, item.Name, string(item.Category), item.Subcategory, item.Difficulty,
		durationMinutes, caloriesPer30Min, caloriesDaily,
		proteinG, carbsG, fatG, mealsPerDay,
		muscleGroups, equipment, indoor, item.Goals, item.WeatherSuitability,
		benefits, item.Allergens, dosage, dietType, item.Description, item.Rating,
		item.CompatibilityTags, item.PriceUSD,
	)
	if err != nil {
		return fmt.Errorf("upserting catalog item %q: %w", item.ID, err)
	}

	return nil
}

// List returns catalog items, optionally filtered by category, best-rated first.
func (s *Store) List(ctx context.Context, category models.Category, limit int) ([]models.Item, error) {
	if limit <= 0 {
		limit = 50
	}

	var (
		rows Rows
		err  error
	)
	if category == "" {
		rows, err = s.db.Query(ctx,
			`SELECT `+itemColumns+` FROM catalog_items ORDER BY rating DESC, name LIMIT $1`,
			limit,
		)
	} else {
		rows, err = s.db.Query(ctx,
			`SELECT `+itemColumns+` FROM catalog_items WHERE category = $1 ORDER BY rating DESC, name LIMIT $2`,
			string(category), limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing catalog items: %w", err)
	}

	return collectItems(rows)
}

// Count returns the number of catalog items.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM catalog_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting catalog items: %w", err)
	}
	return count, nil
}

// Search implements search.Searcher against the local catalog. Hits are
// matched on goal-tag overlap or a case-insensitive text match on name and
// description, constrained by the query facets, best-rated first.
func (s *Store) Search(ctx context.Context, q search.Query) ([]models.Item, error) {
	conds := []string{"category = $1"}
	args := []any{string(q.Category)}

	if len(q.Difficulties) > 0 {
		args = append(args, q.Difficulties)
		conds = append(conds, fmt.Sprintf("difficulty = ANY($%d)", len(args)))
	}
	if q.IndoorOnly {
		conds = append(conds, "indoor = TRUE")
	}
	if len(q.Terms) > 0 {
		patterns := make([]string, 0, len(q.Terms))
		for _, term := range q.Terms {
			patterns = append(patterns, "%"+term+"%")
		}
		args = append(args, q.Terms)
		termsArg := len(args)
		args = append(args, patterns)
		patternsArg := len(args)
		conds = append(conds, fmt.Sprintf(
			"(goals && $%d OR name ILIKE ANY($%d) OR description ILIKE ANY($%d))",
			termsArg, patternsArg, patternsArg,
		))
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)

	sql := fmt.Sprintf(
		`SELECT `+itemColumns+` FROM catalog_items WHERE %s ORDER BY rating DESC, name LIMIT $%d`,
		strings.Join(conds, " AND "), len(args),
	)

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("searching catalog: %w", err)
	}

	return collectItems(rows)
}
