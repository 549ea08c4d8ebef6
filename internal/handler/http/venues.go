package http

import (
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func (h *Handler) createVenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	// Owners always create in their own name. The master admin may name any
	// owner in the payload.
	if callerType, _ := utils.GetUserTypeFromContext(ctx); callerType == models.UserTypeOwner {
		callerID, _ := utils.GetUserIDFromContext(ctx)
		venue.OwnerID = callerID
	}

	created, err := h.services.CatalogService.CreateVenue(ctx, venue)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("venue_id", created.ID).Int64("owner_id", created.OwnerID).Msg("venue created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getVenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	venueID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	venue, err := h.services.CatalogService.GetVenue(ctx, venueID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, venue, http.StatusOK)
}

func (h *Handler) updateVenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	venueID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var venue models.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}
	venue.ID = venueID

	updated, err := h.services.CatalogService.UpdateVenue(ctx, venue)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteVenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	venueID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteVenue(ctx, venueID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("venue_id", venueID).Msg("venue soft-deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listVenues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := utils.ParsePageQuery(r)
	filter := models.VenueFilter{
		Search:         r.URL.Query().Get("search"),
		OwnerID:        queryInt64(r, "owner_id"),
		ManagerID:      queryInt64(r, "manager_id"),
		City:           r.URL.Query().Get("city"),
		MinCapacity:    queryInt(r, "min_capacity"),
		MaxCapacity:    queryInt(r, "max_capacity"),
		MinPrice:       queryDecimal(r, "min_price"),
		MaxPrice:       queryDecimal(r, "max_price"),
		Tags:           queryCSV(r, "tags"),
		IncludeDeleted: queryBool(r, "include_deleted"),
	}

	// Soft-deleted rows stay invisible to everyone below owner level.
	if callerType, _ := utils.GetUserTypeFromContext(ctx); callerType != models.UserTypeMasterAdmin && callerType != models.UserTypeOwner {
		filter.IncludeDeleted = false
	}

	venues, count, err := h.services.CatalogService.ListVenues(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, venues), http.StatusOK)
}
