// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// listAttendanceStatuses returns the attendance status vocabulary. The
// set is seeded and rarely changes, so the listing is not paginated.
func (h *Handler) listAttendanceStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses, err := h.services.AttendanceService.ListStatuses(ctx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, statuses, http.StatusOK)
}

// markAttendance records one day's status for one staff member. Marking
// the same user and date again overwrites the earlier record.
func (h *Handler) markAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var mark models.AttendanceMark
	if err := json.NewDecoder(r.Body).Decode(&mark); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	attendance, err := h.services.AttendanceService.Mark(ctx, callerID, mark)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", attendance.UserID).
		Str("status", mark.Status).
		Msg("attendance marked")
	utils.WriteJSON(w, attendance, http.StatusOK)
}

// bulkMarkAttendance records a batch of marks in one transaction. The
// batch is atomic, one bad entry rejects the whole request.
func (h *Handler) bulkMarkAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		utils.WriteJSONError(w, ErrMissingUserContext.Error(), http.StatusUnauthorized)
		return
	}

	var marks []models.AttendanceMark
	if err := json.NewDecoder(r.Body).Decode(&marks); err != nil {
		log.Warn().Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidRequestBody.Error(), http.StatusBadRequest)
		return
	}

	records, err := h.services.AttendanceService.BulkMark(ctx, callerID, marks)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int("marked", len(records)).Msg("attendance bulk-marked")
	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) listAttendance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := models.AttendanceFilter{
		UserID:  queryInt64(r, "user_id"),
		OwnerID: queryInt64(r, "owner_id"),
		Status:  r.URL.Query().Get("status"),
		From:    queryTime(r, "from"),
		To:      queryTime(r, "to"),
	}

	page := utils.ParsePageQuery(r)
	records, count, err := h.services.AttendanceService.ListAttendance(ctx, filter, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, utils.NewPage(r, page, count, records), http.StatusOK)
}

// attendanceSummary aggregates one user's marks over a date range into
// payable-day counts. The range defaults to the current calendar month.
func (h *Handler) attendanceSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := queryInt64(r, "user_id")
	if userID <= 0 {
		utils.WriteJSONError(w, "user_id query parameter is required", http.StatusBadRequest)
		return
	}

	from := queryTime(r, "from")
	to := queryTime(r, "to")
	if from.IsZero() || to.IsZero() {
		now := time.Now().UTC()
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		to = from.AddDate(0, 1, -1)
	}

	summary, err := h.services.AttendanceService.Summary(ctx, userID, from, to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}
