package kit

import (
	"fmt"
	"strings"

	"github.com/healthforge/healthforge/internal/models"
)

// filterCategory applies the compatibility rules to one category's hits, in
// the order received. Rules run in a fixed sequence per hit and stop at the
// first exclusion, so a hit produces at most one alert:
//
//  1. allergy: hard exclude with an exclusion alert
//  2. budget: hard exclude, silent (a preference, not a safety concern)
//  3. diet (meal plans only): hard exclude, silent
//  4. weather: keep the item but attach an advisory alert
func filterCategory(profile models.UserProfile, hits []models.Item) ([]models.Item, []models.Alert) {
	var included []models.Item
	var alerts []models.Alert

	for _, hit := range hits {
		if conflicts := allergyConflicts(profile, hit); len(conflicts) > 0 {
			alerts = append(alerts, allergyExclusion(hit, conflicts))
			continue
		}

		if ceiling, capped := profile.Budget.Ceiling(); capped && hit.PriceUSD > ceiling {
			continue
		}

		if excludedByDiet(profile, hit) {
			continue
		}

		if mismatchesWeather(profile, hit) {
			alerts = append(alerts, weatherAdvisory(hit, profile.Weather))
		}

		included = append(included, hit)
	}

	return included, alerts
}

// allergyConflicts returns the item's allergens present in the profile's
// allergy set, in the item's own listed order.
func allergyConflicts(profile models.UserProfile, item models.Item) []string {
	var conflicts []string
	for _, allergen := range item.Allergens {
		if profile.HasAllergy(allergen) {
			conflicts = append(conflicts, allergen)
		}
	}
	return conflicts
}

func excludedByDiet(profile models.UserProfile, item models.Item) bool {
	if item.Category != models.CategoryMealPlan || profile.Diet == models.PreferenceAny || profile.Diet == "" {
		return false
	}
	dietType := item.DietType()
	return dietType != "" && dietType != models.DietFlexible && dietType != profile.Diet
}

// mismatchesWeather reports whether an item declares weather suitability
// that covers neither "any" nor the profile's preferred weather. Mismatches
// never exclude; they only flag.
func mismatchesWeather(profile models.UserProfile, item models.Item) bool {
	if profile.Weather == models.PreferenceAny || profile.Weather == "" || len(item.WeatherSuitability) == 0 {
		return false
	}
	for _, w := range item.WeatherSuitability {
		if w == models.PreferenceAny || w == profile.Weather {
			return false
		}
	}
	return true
}

func allergyExclusion(item models.Item, conflicts []string) models.Alert {
	return models.Alert{
		Kind: models.AlertAllergyExclusion,
		Message: fmt.Sprintf("\"%s\" contains %s — excluded from your kit due to allergy settings",
			item.Name, strings.Join(conflicts, ", ")),
	}
}

func weatherAdvisory(item models.Item, weather string) models.Alert {
	return models.Alert{
		Kind: models.AlertWeatherAdvisory,
		Message: fmt.Sprintf("\"%s\" may not be ideal for %s weather — included but flagged",
			item.Name, weather),
	}
}
