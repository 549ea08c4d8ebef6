package http

import (
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// staffRequest is the create-staff payload: registration data plus the role
// the new account should hold inside the creator's organization.
type staffRequest struct {
	UserType models.UserType `json:"user_type"`
	models.Registration
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Err(ErrMissingUserContext).Send()
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	profile, err := h.services.UserService.GetProfile(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Err(ErrMissingUserContext).Send()
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.UpdateProfile(ctx, userID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creatorID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Err(ErrMissingUserContext).Send()
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var request staffRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateStaff(ctx, creatorID, request.UserType, request.Registration)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", created.UserID).
		Str("employee_id", created.EmployeeID).
		Str("user_type", string(created.UserType)).
		Msg("staff account created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) approveOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	approved, err := h.services.UserService.ApproveOwner(ctx, ownerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", approved.UserID).Msg("owner account approved")

	utils.WriteJSON(w, approved, http.StatusOK)
}

func (h *Handler) listOwners(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := utils.ParsePageQuery(r)
	filter := models.UserFilter{
		Search:     r.URL.Query().Get("search"),
		City:       r.URL.Query().Get("city"),
		ActiveOnly: queryBool(r, "active_only"),
	}

	owners, count, err := h.services.UserService.ListOwners(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, owners), http.StatusOK)
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page := utils.ParsePageQuery(r)
	filter := models.UserFilter{
		Search:     r.URL.Query().Get("search"),
		City:       r.URL.Query().Get("city"),
		ParentID:   queryInt64(r, "parent_id"),
		ActiveOnly: queryBool(r, "active_only"),
	}
	if t := r.URL.Query().Get("type"); t != "" {
		filter.Types = []models.UserType{models.UserType(t)}
	}

	// Owners always browse their own organization; admins and managers name
	// the organization through the owner_id parameter.
	ownerID := queryInt64(r, "owner_id")
	callerID, _ := utils.GetUserIDFromContext(ctx)
	if callerType, _ := utils.GetUserTypeFromContext(ctx); callerType == models.UserTypeOwner {
		ownerID = callerID
	}

	staff, count, err := h.services.UserService.ListStaff(ctx, ownerID, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, staff), http.StatusOK)
}
