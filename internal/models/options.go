package models

// GoalOption is a selectable wellness goal offered to the user.
type GoalOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// GoalOptions lists the goals the profile step offers.
var GoalOptions = []GoalOption{
	{ID: "weight loss", Label: "Weight Loss"},
	{ID: "muscle building", Label: "Build Muscle"},
	{ID: "endurance", Label: "Endurance"},
	{ID: "flexibility", Label: "Flexibility"},
	{ID: "stress relief", Label: "Stress Relief"},
	{ID: "better sleep", Label: "Better Sleep"},
	{ID: "general fitness", Label: "General Fitness"},
	{ID: "injury recovery", Label: "Recovery"},
}

// Difficulties lists the selectable difficulty tiers. Beginner content is
// always query-eligible regardless of the selected tier.
var Difficulties = []string{"beginner", "intermediate", "advanced"}

// Allergies lists the allergen tags a profile may exclude.
var Allergies = []string{"dairy", "soy", "nuts", "eggs", "fish", "gluten"}

// Diets lists the selectable diet preferences.
var Diets = []string{"any", "omnivore", "vegetarian", "vegan", "keto", "mediterranean", "gluten-free"}

// Weathers lists the selectable weather preferences.
var Weathers = []string{"any", "cold", "hot", "mild", "rainy"}

// Budgets lists the selectable budget tiers.
var Budgets = []BudgetTier{BudgetAny, BudgetBudget, BudgetModerate, BudgetPremium}
