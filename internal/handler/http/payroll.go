package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// paymentRequest names the staff member and the month a payment covers.
// The amount itself is computed from attendance, never sent by clients.
type paymentRequest struct {
	OwnerID     int64     `json:"owner_id"`
	UserID      int64     `json:"user_id"`
	SalaryMonth time.Time `json:"salary_month"`
}

// statusUpdateRequest carries the target state of a payment.
type statusUpdateRequest struct {
	Status string `json:"status"`
}

// setSalaryStructure creates or replaces the salary terms of one staff
// member. The previous structure stays on record as history.
func (h *Handler) setSalaryStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := pathID(r, "userID")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var structure models.SalaryStructure
	if err := json.NewDecoder(r.Body).Decode(&structure); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}
	structure.UserID = userID

	saved, err := h.services.PayrollService.SetSalaryStructure(ctx, structure)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", saved.UserID).
		Str("salary_type", saved.SalaryType).
		Msg("salary structure set")
	utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) getSalaryStructure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r, "userID")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	structure, err := h.services.PayrollService.GetSalaryStructure(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, structure, http.StatusOK)
}

// listSalaryStructures returns the full salary history of one user,
// newest first. Histories stay short, so the listing is not paginated.
func (h *Handler) listSalaryStructures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, err := pathID(r, "userID")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	history, err := h.services.PayrollService.ListSalaryStructures(ctx, userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, history, http.StatusOK)
}

// createPayment computes and records one month's payment for one staff
// member. Owners always pay from their own account; the master admin may
// name any owner in the payload.
func (h *Handler) createPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, okID := utils.GetUserIDFromContext(ctx)
	callerType, okType := utils.GetUserTypeFromContext(ctx)
	if !okID || !okType {
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	ownerID := req.OwnerID
	if callerType == models.UserTypeOwner {
		ownerID = callerID
	}

	payment, err := h.services.PayrollService.CreatePayment(ctx, ownerID, req.UserID, req.SalaryMonth)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("payment_id", payment.ID).
		Int64("user_id", payment.UserID).
		Str("amount", payment.Amount.String()).
		Msg("payroll payment created")
	utils.WriteJSON(w, payment, http.StatusCreated)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := h.services.PayrollService.GetPayment(ctx, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, payment, http.StatusOK)
}

func (h *Handler) updatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := pathID(r, "id")
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req statusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	payment, err := h.services.PayrollService.UpdatePaymentStatus(ctx, id, req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("payment_id", payment.ID).
		Str("status", payment.Status).
		Msg("payment status updated")
	utils.WriteJSON(w, payment, http.StatusOK)
}

func (h *Handler) listPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	callerID, okID := utils.GetUserIDFromContext(ctx)
	callerType, okType := utils.GetUserTypeFromContext(ctx)
	if !okID || !okType {
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	filter := models.PaymentFilter{
		OwnerID: queryInt64(r, "owner_id"),
		UserID:  queryInt64(r, "user_id"),
		Status:  r.URL.Query().Get("status"),
		Month:   queryTime(r, "month"),
	}

	// Owners only ever see payments they made themselves.
	if callerType == models.UserTypeOwner {
		filter.OwnerID = callerID
	}

	page := utils.ParsePageQuery(r)
	payments, count, err := h.services.PayrollService.ListPayments(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, payments), http.StatusOK)
}
