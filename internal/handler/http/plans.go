package http

import (
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func (h *Handler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.services.PlanService.ListPlans(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, plans, http.StatusOK)
}

func (h *Handler) createPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var plan models.PricingPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.PlanService.CreatePlan(ctx, plan)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("plan_id", created.ID).Str("plan", created.Name).Msg("pricing plan created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) assignPlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var assignment models.UserPlan
	if err := json.NewDecoder(r.Body).Decode(&assignment); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	assigned, err := h.services.PlanService.AssignPlan(ctx, assignment)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", assigned.UserID).
		Int64("plan_id", assigned.PlanID).
		Msg("pricing plan assigned")

	utils.WriteJSON(w, assigned, http.StatusCreated)
}

// getActivePlan answers with the caller's current plan binding. The master
// admin may inspect any owner through the user_id parameter.
func (h *Handler) getActivePlan(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, _ := utils.GetUserIDFromContext(ctx)
	if callerType, _ := utils.GetUserTypeFromContext(ctx); callerType == models.UserTypeMasterAdmin {
		if queried := queryInt64(r, "user_id"); queried > 0 {
			userID = queried
		}
	}

	active, err := h.services.PlanService.GetActivePlan(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, active, http.StatusOK)
}
