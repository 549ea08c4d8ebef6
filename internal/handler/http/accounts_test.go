package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func TestGetProfile_Success(t *testing.T) {
	users := &mockUserService{
		getProfileFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(42), userID)
			return models.User{UserID: 42, Email: "asha@example.com"}, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/accounts/profile", nil), 42, models.UserTypeCustomer)
	rec := httptest.NewRecorder()
	h.getProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "asha@example.com", profile.Email)
}

func TestGetProfile_NoIdentity(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/profile", nil)
	rec := httptest.NewRecorder()
	h.getProfile(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile_Success(t *testing.T) {
	users := &mockUserService{
		updateProfileFn: func(_ context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
			require.NotNil(t, update.City)
			assert.Equal(t, "Mumbai", *update.City)
			return models.User{UserID: userID, City: *update.City}, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := httptest.NewRequest(http.MethodPut, "/api/accounts/profile", strings.NewReader(`{"city":"Mumbai"}`))
	req = asUser(req, 42, models.UserTypeCustomer)
	rec := httptest.NewRecorder()
	h.updateProfile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Mumbai", updated.City)
}

func TestCreateStaff_Success(t *testing.T) {
	users := &mockUserService{
		createStaffFn: func(_ context.Context, creatorID int64, userType models.UserType, registration models.Registration) (models.User, error) {
			assert.Equal(t, int64(7), creatorID)
			assert.Equal(t, models.UserTypeStaff, userType)
			assert.Equal(t, "ravi@example.com", registration.Email)
			return models.User{UserID: 99, EmployeeID: "EMP-2026-7-001", UserType: userType}, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	body := `{"user_type":"VSRE_STAFF","email":"ravi@example.com","mobile_number":"9876501234","first_name":"Ravi","last_name":"Kumar","gender":"MALE","address":"2 Hill St","city":"Pune","password":"pw","confirm_password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/staff", strings.NewReader(body))
	req = asUser(req, 7, models.UserTypeOwner)
	rec := httptest.NewRecorder()
	h.createStaff(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "EMP-2026-7-001", created.EmployeeID)
}

func TestCreateStaff_PlanLimitReached(t *testing.T) {
	users := &mockUserService{
		createStaffFn: func(context.Context, int64, models.UserType, models.Registration) (models.User, error) {
			return models.User{}, service.ErrPlanLimitReached
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	body := `{"user_type":"VSRE_STAFF","email":"one-too-many@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/api/accounts/staff", strings.NewReader(body))
	req = asUser(req, 7, models.UserTypeOwner)
	rec := httptest.NewRecorder()
	h.createStaff(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), service.ErrPlanLimitReached.Error())
}

func TestApproveOwner_Success(t *testing.T) {
	users := &mockUserService{
		approveOwnerFn: func(_ context.Context, ownerID int64) (models.User, error) {
			assert.Equal(t, int64(13), ownerID)
			return models.User{UserID: 13, IsActive: true}, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/owners/13/approve", nil)
	req = withURLParam(asUser(req, 1, models.UserTypeMasterAdmin), "id", "13")
	rec := httptest.NewRecorder()
	h.approveOwner(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var approved models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &approved))
	assert.True(t, approved.IsActive)
}

func TestApproveOwner_BadID(t *testing.T) {
	h := newTestHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/owners/abc/approve", nil)
	req = withURLParam(req, "id", "abc")
	rec := httptest.NewRecorder()
	h.approveOwner(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestApproveOwner_NotFound(t *testing.T) {
	users := &mockUserService{
		approveOwnerFn: func(context.Context, int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := httptest.NewRequest(http.MethodPost, "/api/accounts/owners/404/approve", nil)
	req = withURLParam(req, "id", "404")
	rec := httptest.NewRecorder()
	h.approveOwner(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListOwners_PagedEnvelope(t *testing.T) {
	users := &mockUserService{
		listOwnersFn: func(_ context.Context, filter models.UserFilter, page models.PageQuery) ([]models.OwnerSummary, int64, error) {
			assert.Equal(t, "pune", filter.City)
			return []models.OwnerSummary{{Owner: models.User{UserID: 7}}}, 1, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/owners?city=pune", nil)
	req = asUser(req, 1, models.UserTypeMasterAdmin)
	rec := httptest.NewRecorder()
	h.listOwners(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var page models.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Count)
}

func TestListStaff_OwnerScopedToSelf(t *testing.T) {
	users := &mockUserService{
		listStaffFn: func(_ context.Context, ownerID int64, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error) {
			// The owner_id parameter is ignored for owner callers.
			assert.Equal(t, int64(7), ownerID)
			return nil, 0, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/staff?owner_id=999", nil)
	req = asUser(req, 7, models.UserTypeOwner)
	rec := httptest.NewRecorder()
	h.listStaff(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListStaff_AdminPicksOrganization(t *testing.T) {
	users := &mockUserService{
		listStaffFn: func(_ context.Context, ownerID int64, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error) {
			assert.Equal(t, int64(999), ownerID)
			require.Len(t, filter.Types, 1)
			assert.Equal(t, models.UserTypeManager, filter.Types[0])
			return nil, 0, nil
		},
	}
	h := newTestHandler(&service.Services{UserService: users})

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/staff?owner_id=999&type=VSRE_MANAGER", nil)
	req = asUser(req, 1, models.UserTypeMasterAdmin)
	rec := httptest.NewRecorder()
	h.listStaff(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
