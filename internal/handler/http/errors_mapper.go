package http

import (
	"errors"
	"net/http"

	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordsDoNotMatch:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountPendingApproval:  http.StatusForbidden,
	service.ErrPermissionDenied:        http.StatusForbidden,
	service.ErrPlanLimitReached:        http.StatusForbidden,
	service.ErrUnknownSalaryType:       http.StatusBadRequest,
	service.ErrUnknownPaymentStatus:    http.StatusBadRequest,
	service.ErrInvalidStatusTransition: http.StatusConflict,

	validators.ErrInvalidCustomerID:   http.StatusBadRequest,
	validators.ErrInvalidVenueID:      http.StatusBadRequest,
	validators.ErrMissingName:         http.StatusBadRequest,
	validators.ErrInvalidGender:       http.StatusBadRequest,
	validators.ErrInvalidAge:          http.StatusBadRequest,
	validators.ErrInvalidMobileNumber: http.StatusBadRequest,
	validators.ErrInvalidAadharNumber: http.StatusBadRequest,
	validators.ErrInvalidPANNumber:    http.StatusBadRequest,
	validators.ErrMissingAppointment:  http.StatusBadRequest,
	validators.ErrNegativeAmount:      http.StatusBadRequest,
	validators.ErrAdvanceTooLarge:     http.StatusBadRequest,
	validators.ErrPaymentModeRequired: http.StatusBadRequest,
	validators.ErrInvalidPaymentMode:  http.StatusBadRequest,

	store.ErrEmailAlreadyExists:        http.StatusConflict,
	store.ErrMobileAlreadyExists:       http.StatusConflict,
	store.ErrHierarchyNodeExists:       http.StatusConflict,
	store.ErrPlanNameTaken:             http.StatusConflict,
	store.ErrDuplicatePayment:          http.StatusConflict,
	store.ErrUserNotFound:              http.StatusNotFound,
	store.ErrHierarchyNotFound:         http.StatusNotFound,
	store.ErrRoleNotFound:              http.StatusNotFound,
	store.ErrRefreshTokenNotFound:      http.StatusUnauthorized,
	store.ErrPlanNotFound:              http.StatusNotFound,
	store.ErrVenueNotFound:             http.StatusNotFound,
	store.ErrServiceNotFound:           http.StatusNotFound,
	store.ErrResourceNotFound:          http.StatusNotFound,
	store.ErrPhotoNotFound:             http.StatusNotFound,
	store.ErrPatientNotFound:           http.StatusNotFound,
	store.ErrAttendanceStatusNotFound:  http.StatusNotFound,
	store.ErrAttendanceNotFound:        http.StatusNotFound,
	store.ErrSalaryStructureNotFound:   http.StatusNotFound,
	store.ErrPaymentNotFound:           http.StatusNotFound,

	adapter.ErrEmptyUpload:         http.StatusBadRequest,
	adapter.ErrUnsupportedMedia:    http.StatusBadRequest,
	adapter.ErrBadRequest:          http.StatusBadRequest,
	adapter.ErrTooLarge:            http.StatusRequestEntityTooLarge,
	adapter.ErrMediaNotFound:       http.StatusNotFound,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// mapError resolves err to the HTTP status and client-facing message of the
// first mapped sentinel found in its wrap chain. Server-side failures are
// masked with the generic status text so storage and upstream details never
// reach API clients; the same goes for unmapped errors.
func mapError(err error) (status int, message string) {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			if mapped >= http.StatusInternalServerError {
				return mapped, http.StatusText(mapped)
			}
			return mapped, target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with the uniform {"error": "..."} body.
// Client errors keep the sentinel message, server errors are masked.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := mapError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, message, status)
}
