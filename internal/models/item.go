package models

import (
	"encoding/json"
)

// Category identifies one of the four fixed catalog partitions.
type Category string

const (
	CategoryExercise   Category = "exercise"
	CategorySupplement Category = "supplement"
	CategoryGear       Category = "gear"
	CategoryMealPlan   Category = "meal_plan"
)

// Categories lists the catalog partitions in assembly order. Kit items and
// alerts are always emitted in this order.
var Categories = []Category{CategoryExercise, CategorySupplement, CategoryGear, CategoryMealPlan}

// IsValidCategory checks if a category string is one of the four partitions.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == Category(category) {
			return true
		}
	}
	return false
}

// Macros is the daily macronutrient breakdown of a meal plan, in grams.
type Macros struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// ExerciseDetails holds the fields only meaningful for exercise items.
type ExerciseDetails struct {
	DurationMinutes  int
	CaloriesPer30Min int
	MuscleGroups     []string
	Equipment        []string
	Indoor           bool
}

// SupplementDetails holds the fields only meaningful for supplement items.
type SupplementDetails struct {
	Dosage   string
	Benefits []string
}

// MealPlanDetails holds the fields only meaningful for meal-plan items.
type MealPlanDetails struct {
	CaloriesDaily int
	Macros        Macros
	MealsPerDay   int
	DietType      string
}

// Item is an immutable catalog record. Category-specific numerics live on
// the detail struct matching the category; at most one of Exercise,
// Supplement, MealPlan is non-nil (gear carries no extra fields). The engine
// treats items as read-only values.
type Item struct {
	ID                 string
	Name               string
	Category           Category
	Subcategory        string
	Difficulty         string
	Goals              []string
	WeatherSuitability []string
	Allergens          []string
	CompatibilityTags  []string
	Description        string
	Rating             float64
	PriceUSD           float64

	Exercise   *ExerciseDetails
	Supplement *SupplementDetails
	MealPlan   *MealPlanDetails
}

// EquipmentNeeds returns the equipment tags required by an exercise item,
// or nil for any other category.
func (i Item) EquipmentNeeds() []string {
	if i.Exercise == nil {
		return nil
	}
	return i.Exercise.Equipment
}

// CalorieBurn returns calories burned per 30 minutes for exercises, 0 otherwise.
func (i Item) CalorieBurn() int {
	if i.Exercise == nil {
		return 0
	}
	return i.Exercise.CaloriesPer30Min
}

// DietType returns the declared diet type of a meal plan, or "" otherwise.
func (i Item) DietType() string {
	if i.MealPlan == nil {
		return ""
	}
	return i.MealPlan.DietType
}

// itemJSON is the flat wire shape used by the catalog and the search
// collaborator. Absent numeric fields decode as 0 and absent collections as
// empty, which is exactly the malformed-hit tolerance the engine needs.
type itemJSON struct {
	ObjectID           string   `json:"objectID"`
	Name               string   `json:"name"`
	Category           Category `json:"category"`
	Subcategory        string   `json:"subcategory"`
	Difficulty         string   `json:"difficulty"`
	DurationMinutes    int      `json:"duration_minutes,omitempty"`
	CaloriesPer30Min   int      `json:"calories_per_30min,omitempty"`
	CaloriesDaily      int      `json:"calories_daily,omitempty"`
	Macros             *Macros  `json:"macros,omitempty"`
	MealsPerDay        int      `json:"meals_per_day,omitempty"`
	MuscleGroups       []string `json:"muscle_groups,omitempty"`
	Equipment          []string `json:"equipment,omitempty"`
	Indoor             bool     `json:"indoor,omitempty"`
	Goals              []string `json:"goals,omitempty"`
	WeatherSuitability []string `json:"weather_suitability,omitempty"`
	Benefits           []string `json:"benefits,omitempty"`
	Allergens          []string `json:"allergens,omitempty"`
	Dosage             string   `json:"dosage,omitempty"`
	DietType           string   `json:"diet_type,omitempty"`
	Description        string   `json:"description,omitempty"`
	Rating             float64  `json:"rating,omitempty"`
	CompatibilityTags  []string `json:"compatibility_tags,omitempty"`
	PriceRangeUSD      float64  `json:"price_range_usd"`
}

// UnmarshalJSON decodes the flat catalog shape into the tagged variant.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*i = Item{
		ID:                 raw.ObjectID,
		Name:               raw.Name,
		Category:           raw.Category,
		Subcategory:        raw.Subcategory,
		Difficulty:         raw.Difficulty,
		Goals:              raw.Goals,
		WeatherSuitability: raw.WeatherSuitability,
		Allergens:          raw.Allergens,
		CompatibilityTags:  raw.CompatibilityTags,
		Description:        raw.Description,
		Rating:             raw.Rating,
		PriceUSD:           raw.PriceRangeUSD,
	}

	switch raw.Category {
	case CategoryExercise:
		i.Exercise = &ExerciseDetails{
			DurationMinutes:  raw.DurationMinutes,
			CaloriesPer30Min: raw.CaloriesPer30Min,
			MuscleGroups:     raw.MuscleGroups,
			Equipment:        raw.Equipment,
			Indoor:           raw.Indoor,
		}
	case CategorySupplement:
		i.Supplement = &SupplementDetails{
			Dosage:   raw.Dosage,
			Benefits: raw.Benefits,
		}
	case CategoryMealPlan:
		detail := &MealPlanDetails{
			CaloriesDaily: raw.CaloriesDaily,
			MealsPerDay:   raw.MealsPerDay,
			DietType:      raw.DietType,
		}
		if raw.Macros != nil {
			detail.Macros = *raw.Macros
		}
		i.MealPlan = detail
	}
	// Gear and unknown categories carry no detail struct.

	return nil
}

// MarshalJSON encodes the item back to the flat catalog shape.
func (i Item) MarshalJSON() ([]byte, error) {
	raw := itemJSON{
		ObjectID:           i.ID,
		Name:               i.Name,
		Category:           i.Category,
		Subcategory:        i.Subcategory,
		Difficulty:         i.Difficulty,
		Goals:              i.Goals,
		WeatherSuitability: i.WeatherSuitability,
		Allergens:          i.Allergens,
		CompatibilityTags:  i.CompatibilityTags,
		Description:        i.Description,
		Rating:             i.Rating,
		PriceRangeUSD:      i.PriceUSD,
	}

	switch {
	case i.Exercise != nil:
		raw.DurationMinutes = i.Exercise.DurationMinutes
		raw.CaloriesPer30Min = i.Exercise.CaloriesPer30Min
		raw.MuscleGroups = i.Exercise.MuscleGroups
		raw.Equipment = i.Exercise.Equipment
		raw.Indoor = i.Exercise.Indoor
	case i.Supplement != nil:
		raw.Dosage = i.Supplement.Dosage
		raw.Benefits = i.Supplement.Benefits
	case i.MealPlan != nil:
		raw.CaloriesDaily = i.MealPlan.CaloriesDaily
		macros := i.MealPlan.Macros
		raw.Macros = &macros
		raw.MealsPerDay = i.MealPlan.MealsPerDay
		raw.DietType = i.MealPlan.DietType
	}

	return json.Marshal(raw)
}
