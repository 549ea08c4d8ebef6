package http

import (
	"net/http"
	"strconv"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// maxPhotoUploadBytes bounds a single uploaded image.
const maxPhotoUploadBytes = 10 << 20

// attachPhoto returns the upload handler for one attachable entity kind. The
// request is a multipart form with a "file" part and optional "caption" and
// "is_primary" fields.
func (h *Handler) attachPhoto(entityType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		entityID, err := pathID(r, "id")
		if err != nil {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		uploadedBy, found := utils.GetUserIDFromContext(ctx)
		if !found {
			log.Error().Err(ErrMissingUserContext).Send()
			utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
		if err := r.ParseMultipartForm(maxPhotoUploadBytes); err != nil {
			log.Warn().Err(err).Msg("invalid multipart form")
			utils.WriteJSONError(w, "invalid multipart form", http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			log.Warn().Err(err).Msg("missing file part")
			utils.WriteJSONError(w, "multipart form must carry a \"file\" part", http.StatusBadRequest)
			return
		}
		defer file.Close()

		isPrimary, _ := strconv.ParseBool(r.FormValue("is_primary"))

		photo := models.Photo{
			EntityType: entityType,
			EntityID:   entityID,
			Caption:    r.FormValue("caption"),
			IsPrimary:  isPrimary,
			UploadedBy: uploadedBy,
		}

		created, err := h.services.CatalogService.AttachPhoto(ctx, photo, header.Filename, file)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		log.Info().
			Int64("photo_id", created.ID).
			Str("entity_type", entityType).
			Int64("entity_id", entityID).
			Msg("photo attached")

		utils.WriteJSON(w, created, http.StatusCreated)
	}
}

// listPhotos returns the photo-listing handler for one attachable entity
// kind. Photos are a small sub-collection, so the listing is not paginated.
func (h *Handler) listPhotos(entityType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		entityID, err := pathID(r, "id")
		if err != nil {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		photos, err := h.services.CatalogService.ListPhotos(ctx, entityType, entityID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, photos, http.StatusOK)
	}
}

func (h *Handler) removePhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	photoID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.RemovePhoto(ctx, photoID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("photo_id", photoID).Msg("photo removed")

	w.WriteHeader(http.StatusNoContent)
}
