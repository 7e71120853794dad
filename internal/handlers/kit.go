package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/healthforge/healthforge/internal/logging"
	"github.com/healthforge/healthforge/internal/models"
	"github.com/healthforge/healthforge/internal/services/kit"
)

// Assembler builds a kit for a profile snapshot.
type Assembler interface {
	Assemble(ctx context.Context, profile models.UserProfile) (*kit.Result, error)
}

type KitHandler struct {
	engine Assembler
}

func NewKitHandler(engine Assembler) *KitHandler {
	return &KitHandler{engine: engine}
}

type KitResponse struct {
	Kit     []models.Item                     `json:"kit"`
	Grouped map[models.Category][]models.Item `json:"grouped"`
	Alerts  []models.Alert                    `json:"alerts"`
	Summary kit.Summary                       `json:"summary"`
}

// Build handles POST /api/kit. A collaborator outage still returns 200 with
// the error alert in the body; the client renders alerts either way.
func (h *KitHandler) Build(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := profile.Validate(); err != nil {
		switch {
		case errors.Is(err, models.ErrNoGoals):
			writeError(w, http.StatusBadRequest, "Select at least one goal to build a kit")
		case errors.Is(err, models.ErrUnknownBudget):
			writeError(w, http.StatusBadRequest, "Unknown budget tier")
		default:
			writeError(w, http.StatusBadRequest, "Invalid profile")
		}
		return
	}

	result, err := h.engine.Assemble(r.Context(), profile)
	if err != nil {
		logging.Error("Kit assembly failed", map[string]interface{}{
			"error": err.Error(),
		})
		// result still carries the error alert for the client.
	}

	writeJSON(w, http.StatusOK, kitResponse(result))
}

func kitResponse(result *kit.Result) KitResponse {
	resp := KitResponse{
		Kit:     result.Kit,
		Grouped: result.Grouped(),
		Alerts:  result.Alerts,
		Summary: result.Summary(),
	}
	if resp.Kit == nil {
		resp.Kit = []models.Item{}
	}
	if resp.Alerts == nil {
		resp.Alerts = []models.Alert{}
	}
	return resp
}
