package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// loginResponse bundles the authenticated profile with the issued token pair.
type loginResponse struct {
	User   models.User      `json:"user"`
	Tokens models.TokenPair `json:"tokens"`
}

func (h *Handler) registerCustomer(w http.ResponseWriter, r *http.Request) {
	h.handleRegistration(w, r, h.services.AuthService.RegisterCustomer)
}

func (h *Handler) registerOwner(w http.ResponseWriter, r *http.Request) {
	h.handleRegistration(w, r, h.services.AuthService.RegisterOwner)
}

// handleRegistration is the shared body of the two public registration
// endpoints; they differ only in the service call deciding the account role.
func (h *Handler) handleRegistration(w http.ResponseWriter, r *http.Request, register func(context.Context, models.Registration) (models.User, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var registration models.Registration
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	registered, err := register(ctx, registration)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", registered.UserID).
		Str("user_type", string(registered.UserType)).
		Msg("account registered")

	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	user, tokens, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")

	utils.WriteJSON(w, loginResponse{User: user, Tokens: tokens}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	tokens, err := h.services.AuthService.Refresh(ctx, request.Refresh)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, tokens, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Logout(ctx, request.Refresh); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "logged out"}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Err(ErrMissingUserContext).Send()
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var change models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&change); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ChangePassword(ctx, userID, change); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("user_id", userID).Msg("password changed, all sessions revoked")

	utils.WriteJSON(w, models.MessageResponse{Message: "password changed"}, http.StatusOK)
}
