package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoGoals       = errors.New("profile has no goals selected")
	ErrUnknownBudget = errors.New("unknown budget tier")
)

// BudgetTier is the user's spending preference. Tiers other than premium
// and any impose a hard price ceiling on kit items.
type BudgetTier string

const (
	BudgetAny      BudgetTier = "any"
	BudgetBudget   BudgetTier = "budget"
	BudgetModerate BudgetTier = "moderate"
	BudgetPremium  BudgetTier = "premium"
)

// Ceiling returns the maximum item price for the tier. The second return is
// false when the tier imposes no ceiling.
func (b BudgetTier) Ceiling() (float64, bool) {
	switch b {
	case BudgetBudget:
		return 50, true
	case BudgetModerate:
		return 200, true
	default:
		return 0, false
	}
}

// IsValid reports whether the tier is one of the four known values.
// An empty tier is treated as "any".
func (b BudgetTier) IsValid() bool {
	switch b {
	case "", BudgetAny, BudgetBudget, BudgetModerate, BudgetPremium:
		return true
	default:
		return false
	}
}

// DifficultyAny is the wildcard difficulty preference: no difficulty facet
// is applied to catalog queries.
const DifficultyAny = "any"

// PreferenceAny is the wildcard value for weather and diet preferences.
const PreferenceAny = "any"

// DietFlexible marks meal plans compatible with every diet preference.
const DietFlexible = "flexible"

// UserProfile is a snapshot of the user's goals and constraints. It is
// created by the presentation layer; the engine never mutates it.
type UserProfile struct {
	Goals      []string   `json:"goals"`
	Difficulty string     `json:"difficulty"`
	Allergies  []string   `json:"allergies"`
	Budget     BudgetTier `json:"budget"`
	Weather    string     `json:"weather"`
	IndoorOnly bool       `json:"indoor_only"`
	Diet       string     `json:"diet"`
}

// Validate checks that the profile can drive a kit assembly.
func (p UserProfile) Validate() error {
	if len(p.Goals) == 0 {
		return ErrNoGoals
	}
	if !p.Budget.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownBudget, p.Budget)
	}
	return nil
}

// HasAllergy reports whether the given allergen is in the profile's allergy set.
func (p UserProfile) HasAllergy(allergen string) bool {
	for _, a := range p.Allergies {
		if a == allergen {
			return true
		}
	}
	return false
}
