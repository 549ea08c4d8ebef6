package http

import (
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func (h *Handler) createResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var resource models.Resource
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.CatalogService.CreateResource(ctx, resource)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("resource_id", created.ID).Int64("venue_id", created.VenueID).Msg("resource created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resourceID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	resource, err := h.services.CatalogService.GetResource(ctx, resourceID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}

func (h *Handler) updateResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resourceID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resource models.Resource
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}
	resource.ID = resourceID

	updated, err := h.services.CatalogService.UpdateResource(ctx, resource)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resourceID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.DeleteResource(ctx, resourceID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("resource_id", resourceID).Msg("resource deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := utils.ParsePageQuery(r)
	filter := models.ResourceFilter{
		Search:      r.URL.Query().Get("search"),
		VenueID:     queryInt64(r, "venue_id"),
		OwnerID:     queryInt64(r, "owner_id"),
		Category:    r.URL.Query().Get("category"),
		MinQuantity: queryInt(r, "min_quantity"),
		MinPrice:    queryDecimal(r, "min_price"),
		MaxPrice:    queryDecimal(r, "max_price"),
	}

	resources, count, err := h.services.CatalogService.ListResources(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, resources), http.StatusOK)
}
