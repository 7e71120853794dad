package kit

import "github.com/healthforge/healthforge/internal/models"

// Summary holds aggregate metrics over a finished kit.
type Summary struct {
	ItemCount        int     `json:"item_count"`
	CategoryCount    int     `json:"category_count"`
	TotalCalorieBurn int     `json:"total_calorie_burn"`
	TotalCostUSD     float64 `json:"total_cost_usd"`
}

// Summarize computes the kit metrics: item count, distinct categories,
// calorie burn summed over exercises (per 30 minutes) and total estimated
// cost over all items. Items without a value contribute zero. Pure
// projection, recomputed on demand.
func Summarize(items []models.Item) Summary {
	s := Summary{ItemCount: len(items)}

	categories := make(map[models.Category]bool)
	for _, item := range items {
		categories[item.Category] = true
		s.TotalCalorieBurn += item.CalorieBurn()
		s.TotalCostUSD += item.PriceUSD
	}
	s.CategoryCount = len(categories)

	return s
}
