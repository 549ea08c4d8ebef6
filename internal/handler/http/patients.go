package http

import (
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// registerPatient records a patient booking. Customers always book in
// their own name; staff may name any customer in the payload.
func (h *Handler) registerPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, okID := utils.GetUserIDFromContext(ctx)
	callerType, okType := utils.GetUserTypeFromContext(ctx)
	if !okID || !okType {
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var patient models.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	if callerType == models.UserTypeCustomer {
		patient.CustomerID = callerID
	}

	registered, err := h.services.PatientService.RegisterPatient(ctx, patient)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("patient_id", registered.ID).
		Int64("venue_id", registered.VenueID).
		Msg("patient registered")
	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	patient, err := h.services.PatientService.GetPatient(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var patient models.Patient
	if err := json.NewDecoder(r.Body).Decode(&patient); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}
	patient.ID = id

	updated, err := h.services.PatientService.UpdatePatient(ctx, patient)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("patient_id", updated.ID).Msg("patient updated")
	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, okID := utils.GetUserIDFromContext(ctx)
	callerType, okType := utils.GetUserTypeFromContext(ctx)
	if !okID || !okType {
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	filter := models.PatientFilter{
		Search:     r.URL.Query().Get("search"),
		CustomerID: queryInt64(r, "customer_id"),
		VenueID:    queryInt64(r, "venue_id"),
		City:       r.URL.Query().Get("city"),
		From:       queryTime(r, "from"),
		To:         queryTime(r, "to"),
	}

	// Customers only ever see their own bookings.
	if callerType == models.UserTypeCustomer {
		filter.CustomerID = callerID
	}

	page := utils.ParsePageQuery(r)
	patients, count, err := h.services.PatientService.ListPatients(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, patients), http.StatusOK)
}
