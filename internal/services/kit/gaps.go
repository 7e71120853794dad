package kit

import (
	"fmt"
	"strings"

	"github.com/healthforge/healthforge/internal/models"
)

// EquipmentGaps cross-references the equipment required by the kit's
// exercises against the gear the kit already contains. A need is met when
// any included gear item's name contains the equipment tag, case-insensitive.
// Unmet needs each yield one advisory, in first-seen order across the
// exercises. The kit itself is never modified.
func EquipmentGaps(items []models.Item) []models.Alert {
	var needs []string
	seen := make(map[string]bool)
	for _, item := range items {
		if item.Category != models.CategoryExercise {
			continue
		}
		for _, tag := range item.EquipmentNeeds() {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			needs = append(needs, tag)
		}
	}

	var gearNames []string
	for _, item := range items {
		if item.Category == models.CategoryGear {
			gearNames = append(gearNames, strings.ToLower(item.Name))
		}
	}

	var alerts []models.Alert
	for _, need := range needs {
		lower := strings.ToLower(need)
		met := false
		for _, name := range gearNames {
			if strings.Contains(name, lower) {
				met = true
				break
			}
		}
		if !met {
			alerts = append(alerts, equipmentAdvisory(need))
		}
	}

	return alerts
}

func equipmentAdvisory(need string) models.Alert {
	return models.Alert{
		Kind: models.AlertEquipmentAdvisory,
		Message: fmt.Sprintf("Your exercises need \"%s\" — consider adding matching gear to your kit",
			need),
	}
}
