package handlers

import (
	"net/http"

	"github.com/healthforge/healthforge/internal/models"
)

type OptionsHandler struct{}

func NewOptionsHandler() *OptionsHandler {
	return &OptionsHandler{}
}

type OptionsResponse struct {
	Goals        []models.GoalOption `json:"goals"`
	Difficulties []string            `json:"difficulties"`
	Allergies    []string            `json:"allergies"`
	Diets        []string            `json:"diets"`
	Weathers     []string            `json:"weathers"`
	Budgets      []models.BudgetTier `json:"budgets"`
}

// Get handles GET /api/options: the static choice lists the profile form
// renders.
func (h *OptionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, OptionsResponse{
		Goals:        models.GoalOptions,
		Difficulties: models.Difficulties,
		Allergies:    models.Allergies,
		Diets:        models.Diets,
		Weathers:     models.Weathers,
		Budgets:      models.Budgets,
	})
}
