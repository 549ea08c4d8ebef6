package http

import (
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func (h *Handler) createService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	// The owner is always inherited from the parent venue; whatever the
	// payload claims is ignored by the service layer.
	created, err := h.services.CatalogService.CreateService(ctx, service)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("service_id", created.ID).Int64("venue_id", created.VenueID).Msg("service created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	serviceID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	service, err := h.services.CatalogService.GetService(ctx, serviceID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, service, http.StatusOK)
}

func (h *Handler) updateService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	serviceID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var service models.Service
	if err := json.NewDecoder(r.Body).Decode(&service); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}
	service.ID = serviceID

	updated, err := h.services.CatalogService.UpdateService(ctx, service)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteService(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	serviceID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteService(ctx, serviceID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("service_id", serviceID).Msg("service deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listServices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := utils.ParsePageQuery(r)
	filter := models.ServiceFilter{
		Search:   r.URL.Query().Get("search"),
		VenueID:  queryInt64(r, "venue_id"),
		OwnerID:  queryInt64(r, "owner_id"),
		Category: r.URL.Query().Get("category"),
		MinPrice: queryDecimal(r, "min_price"),
		MaxPrice: queryDecimal(r, "max_price"),
	}

	services, count, err := h.services.CatalogService.ListServices(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, services), http.StatusOK)
}
