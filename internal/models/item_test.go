package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestItemUnmarshal_Exercise(t *testing.T) {
	data := `{
		"objectID": "ex-001",
		"name": "Morning HIIT Circuit",
		"category": "exercise",
		"subcategory": "cardio",
		"difficulty": "intermediate",
		"duration_minutes": 30,
		"calories_per_30min": 320,
		"muscle_groups": ["legs", "core"],
		"equipment": ["jump rope"],
		"indoor": true,
		"goals": ["weight loss"],
		"weather_suitability": ["any"],
		"rating": 4.6,
		"price_range_usd": 0
	}`

	var item Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID != "ex-001" || item.Name != "Morning HIIT Circuit" {
		t.Errorf("unexpected identity fields %+v", item)
	}
	if item.Category != CategoryExercise {
		t.Errorf("expected exercise category, got %s", item.Category)
	}
	if item.Exercise == nil {
		t.Fatal("expected exercise details")
	}
	if item.Exercise.CaloriesPer30Min != 320 || item.Exercise.DurationMinutes != 30 {
		t.Errorf("unexpected exercise details %+v", item.Exercise)
	}
	if !item.Exercise.Indoor {
		t.Errorf("expected indoor flag set")
	}
	if item.Supplement != nil || item.MealPlan != nil {
		t.Errorf("only the matching detail struct may be set")
	}
	if !reflect.DeepEqual(item.EquipmentNeeds(), []string{"jump rope"}) {
		t.Errorf("unexpected equipment needs %v", item.EquipmentNeeds())
	}
}

func TestItemUnmarshal_MealPlanWithMacros(t *testing.T) {
	data := `{
		"objectID": "mp-001",
		"name": "Lean Bulk Plan",
		"category": "meal_plan",
		"calories_daily": 2800,
		"macros": {"protein_g": 180, "carbs_g": 300, "fat_g": 80},
		"meals_per_day": 5,
		"diet_type": "omnivore",
		"allergens": ["dairy", "eggs"],
		"price_range_usd": 12.99
	}`

	var item Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.MealPlan == nil {
		t.Fatal("expected meal plan details")
	}
	if item.MealPlan.CaloriesDaily != 2800 || item.MealPlan.MealsPerDay != 5 {
		t.Errorf("unexpected meal plan details %+v", item.MealPlan)
	}
	if item.MealPlan.Macros.ProteinG != 180 {
		t.Errorf("unexpected macros %+v", item.MealPlan.Macros)
	}
	if item.DietType() != "omnivore" {
		t.Errorf("expected omnivore diet type, got %q", item.DietType())
	}
	if item.CalorieBurn() != 0 {
		t.Errorf("meal plans burn no calories, got %d", item.CalorieBurn())
	}
}

func TestItemUnmarshal_GearHasNoDetails(t *testing.T) {
	data := `{"objectID":"g-001","name":"Adjustable Dumbbells","category":"gear","price_range_usd":149.99}`

	var item Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.Exercise != nil || item.Supplement != nil || item.MealPlan != nil {
		t.Errorf("gear must carry no detail struct, got %+v", item)
	}
	if item.EquipmentNeeds() != nil {
		t.Errorf("gear has no equipment needs")
	}
}

func TestItemUnmarshal_MissingFieldsTolerated(t *testing.T) {
	// Records missing numerics or collections decode to zero values rather
	// than failing.
	data := `{"objectID":"ex-002","name":"Stretch Routine","category":"exercise"}`

	var item Item
	if err := json.Unmarshal([]byte(data), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.CalorieBurn() != 0 || item.PriceUSD != 0 {
		t.Errorf("expected zero values for absent fields, got %+v", item)
	}
	if len(item.Allergens) != 0 || len(item.WeatherSuitability) != 0 {
		t.Errorf("expected empty collections, got %+v", item)
	}
}

func TestItemMarshal_RoundTrip(t *testing.T) {
	original := Item{
		ID:                 "sup-001",
		Name:               "Daily Omega-3",
		Category:           CategorySupplement,
		Difficulty:         "beginner",
		Goals:              []string{"general fitness"},
		WeatherSuitability: []string{"any"},
		Allergens:          []string{"fish"},
		Rating:             4.2,
		PriceUSD:           18.50,
		Supplement: &SupplementDetails{
			Dosage:   "1000mg daily",
			Benefits: []string{"heart health"},
		},
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Item
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Errorf("round trip mismatch:\noriginal: %+v\ndecoded:  %+v", original, decoded)
	}
}

func TestIsValidCategory(t *testing.T) {
	for _, c := range []string{"exercise", "supplement", "gear", "meal_plan"} {
		if !IsValidCategory(c) {
			t.Errorf("expected %q valid", c)
		}
	}
	for _, c := range []string{"", "potion", "Exercise"} {
		if IsValidCategory(c) {
			t.Errorf("expected %q invalid", c)
		}
	}
}
