// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/service"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// Function-field mocks for the service interfaces the handler tests
// exercise. A nil field answers with zero values.

var errService = errors.New("service error")

// newTestHandler builds a Handler over the given service set, filling
// absent services with zero-value mocks. The database and media store
// stay nil, only the health endpoint touches them.
func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.CatalogService == nil {
		services.CatalogService = &mockCatalogService{}
	}
	if services.PlanService == nil {
		services.PlanService = &mockPlanService{}
	}
	if services.PatientService == nil {
		services.PatientService = &mockPatientService{}
	}
	if services.AttendanceService == nil {
		services.AttendanceService = &mockAttendanceService{}
	}
	if services.PayrollService == nil {
		services.PayrollService = &mockPayrollService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{}
	}
	return NewHandler(services, nil, nil, logger.Nop())
}

// asUser stamps the authenticated identity on the request context the
// same way the auth middleware does.
func asUser(r *http.Request, userID int64, userType models.UserType) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	ctx = context.WithValue(ctx, utils.UserTypeCtxKey, userType)
	return r.WithContext(ctx)
}

// withURLParam injects a chi route parameter for directly invoked
// handlers that bypass the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerCustomerFn func(ctx context.Context, registration models.Registration) (models.User, error)
	registerOwnerFn    func(ctx context.Context, registration models.Registration) (models.User, error)
	loginFn            func(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error)
	refreshFn          func(ctx context.Context, refreshToken string) (models.TokenPair, error)
	logoutFn           func(ctx context.Context, refreshToken string) error
	changePasswordFn   func(ctx context.Context, userID int64, change models.PasswordChange) error
	parseAccessTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
	hasPermissionFn    func(ctx context.Context, userType models.UserType, action, resource string) (bool, error)
}

func (m *mockAuthService) RegisterCustomer(ctx context.Context, registration models.Registration) (models.User, error) {
	if m.registerCustomerFn != nil {
		return m.registerCustomerFn(ctx, registration)
	}
	return models.User{}, nil
}

func (m *mockAuthService) RegisterOwner(ctx context.Context, registration models.Registration) (models.User, error) {
	if m.registerOwnerFn != nil {
		return m.registerOwnerFn(ctx, registration)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.User{}, models.TokenPair{}, nil
}

func (m *mockAuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	if m.refreshFn != nil {
		return m.refreshFn(ctx, refreshToken)
	}
	return models.TokenPair{}, nil
}

func (m *mockAuthService) Logout(ctx context.Context, refreshToken string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, refreshToken)
	}
	return nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, change)
	}
	return nil
}

func (m *mockAuthService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseAccessTokenFn != nil {
		return m.parseAccessTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) HasPermission(ctx context.Context, userType models.UserType, action, resource string) (bool, error) {
	if m.hasPermissionFn != nil {
		return m.hasPermissionFn(ctx, userType, action, resource)
	}
	return true, nil
}

// ─────────────────────────────────────────────
// Mock: service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getProfileFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	createStaffFn   func(ctx context.Context, creatorID int64, userType models.UserType, registration models.Registration) (models.User, error)
	approveOwnerFn  func(ctx context.Context, ownerID int64) (models.User, error)
	listOwnersFn    func(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.OwnerSummary, int64, error)
	listStaffFn     func(ctx context.Context, ownerID int64, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.User{}, nil
}

func (m *mockUserService) CreateStaff(ctx context.Context, creatorID int64, userType models.UserType, registration models.Registration) (models.User, error) {
	if m.createStaffFn != nil {
		return m.createStaffFn(ctx, creatorID, userType, registration)
	}
	return models.User{}, nil
}

func (m *mockUserService) ApproveOwner(ctx context.Context, ownerID int64) (models.User, error) {
	if m.approveOwnerFn != nil {
		return m.approveOwnerFn(ctx, ownerID)
	}
	return models.User{}, nil
}

func (m *mockUserService) ListOwners(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.OwnerSummary, int64, error) {
	if m.listOwnersFn != nil {
		return m.listOwnersFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockUserService) ListStaff(ctx context.Context, ownerID int64, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error) {
	if m.listStaffFn != nil {
		return m.listStaffFn(ctx, ownerID, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: service.CatalogService
// ─────────────────────────────────────────────

type mockCatalogService struct {
	createVenueFn func(ctx context.Context, venue models.Venue) (models.Venue, error)
	getVenueFn    func(ctx context.Context, venueID int64) (models.Venue, error)
	updateVenueFn func(ctx context.Context, venue models.Venue) (models.Venue, error)
	deleteVenueFn func(ctx context.Context, venueID int64) error
	listVenuesFn  func(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error)

	createServiceFn func(ctx context.Context, svc models.Service) (models.Service, error)
	getServiceFn    func(ctx context.Context, serviceID int64) (models.Service, error)
	updateServiceFn func(ctx context.Context, svc models.Service) (models.Service, error)
	deleteServiceFn func(ctx context.Context, serviceID int64) error
	listServicesFn  func(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error)

	createResourceFn func(ctx context.Context, resource models.Resource) (models.Resource, error)
	getResourceFn    func(ctx context.Context, resourceID int64) (models.Resource, error)
	updateResourceFn func(ctx context.Context, resource models.Resource) (models.Resource, error)
	deleteResourceFn func(ctx context.Context, resourceID int64) error
	listResourcesFn  func(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error)

	attachPhotoFn func(ctx context.Context, photo models.Photo, filename string, content io.Reader) (models.Photo, error)
	listPhotosFn  func(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error)
	removePhotoFn func(ctx context.Context, photoID int64) error
}

func (m *mockCatalogService) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if m.createVenueFn != nil {
		return m.createVenueFn(ctx, venue)
	}
	return venue, nil
}

func (m *mockCatalogService) GetVenue(ctx context.Context, venueID int64) (models.Venue, error) {
	if m.getVenueFn != nil {
		return m.getVenueFn(ctx, venueID)
	}
	return models.Venue{}, nil
}

func (m *mockCatalogService) UpdateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if m.updateVenueFn != nil {
		return m.updateVenueFn(ctx, venue)
	}
	return venue, nil
}

func (m *mockCatalogService) DeleteVenue(ctx context.Context, venueID int64) error {
	if m.deleteVenueFn != nil {
		return m.deleteVenueFn(ctx, venueID)
	}
	return nil
}

func (m *mockCatalogService) ListVenues(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error) {
	if m.listVenuesFn != nil {
		return m.listVenuesFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockCatalogService) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	if m.createServiceFn != nil {
		return m.createServiceFn(ctx, svc)
	}
	return svc, nil
}

func (m *mockCatalogService) GetService(ctx context.Context, serviceID int64) (models.Service, error) {
	if m.getServiceFn != nil {
		return m.getServiceFn(ctx, serviceID)
	}
	return models.Service{}, nil
}

func (m *mockCatalogService) UpdateService(ctx context.Context, svc models.Service) (models.Service, error) {
	if m.updateServiceFn != nil {
		return m.updateServiceFn(ctx, svc)
	}
	return svc, nil
}

func (m *mockCatalogService) DeleteService(ctx context.Context, serviceID int64) error {
	if m.deleteServiceFn != nil {
		return m.deleteServiceFn(ctx, serviceID)
	}
	return nil
}

func (m *mockCatalogService) ListServices(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error) {
	if m.listServicesFn != nil {
		return m.listServicesFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockCatalogService) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if m.createResourceFn != nil {
		return m.createResourceFn(ctx, resource)
	}
	return resource, nil
}

func (m *mockCatalogService) GetResource(ctx context.Context, resourceID int64) (models.Resource, error) {
	if m.getResourceFn != nil {
		return m.getResourceFn(ctx, resourceID)
	}
	return models.Resource{}, nil
}

func (m *mockCatalogService) UpdateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if m.updateResourceFn != nil {
		return m.updateResourceFn(ctx, resource)
	}
	return resource, nil
}

func (m *mockCatalogService) DeleteResource(ctx context.Context, resourceID int64) error {
	if m.deleteResourceFn != nil {
		return m.deleteResourceFn(ctx, resourceID)
	}
	return nil
}

func (m *mockCatalogService) ListResources(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error) {
	if m.listResourcesFn != nil {
		return m.listResourcesFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockCatalogService) AttachPhoto(ctx context.Context, photo models.Photo, filename string, content io.Reader) (models.Photo, error) {
	if m.attachPhotoFn != nil {
		return m.attachPhotoFn(ctx, photo, filename, content)
	}
	return photo, nil
}

func (m *mockCatalogService) ListPhotos(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error) {
	if m.listPhotosFn != nil {
		return m.listPhotosFn(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *mockCatalogService) RemovePhoto(ctx context.Context, photoID int64) error {
	if m.removePhotoFn != nil {
		return m.removePhotoFn(ctx, photoID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.PlanService
// ─────────────────────────────────────────────

type mockPlanService struct {
	createPlanFn    func(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error)
	listPlansFn     func(ctx context.Context) ([]models.PricingPlan, error)
	assignPlanFn    func(ctx context.Context, assignment models.UserPlan) (models.UserPlan, error)
	getActivePlanFn func(ctx context.Context, userID int64) (models.UserPlan, error)
}

func (m *mockPlanService) CreatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error) {
	if m.createPlanFn != nil {
		return m.createPlanFn(ctx, plan)
	}
	return plan, nil
}

func (m *mockPlanService) ListPlans(ctx context.Context) ([]models.PricingPlan, error) {
	if m.listPlansFn != nil {
		return m.listPlansFn(ctx)
	}
	return nil, nil
}

func (m *mockPlanService) AssignPlan(ctx context.Context, assignment models.UserPlan) (models.UserPlan, error) {
	if m.assignPlanFn != nil {
		return m.assignPlanFn(ctx, assignment)
	}
	return assignment, nil
}

func (m *mockPlanService) GetActivePlan(ctx context.Context, userID int64) (models.UserPlan, error) {
	if m.getActivePlanFn != nil {
		return m.getActivePlanFn(ctx, userID)
	}
	return models.UserPlan{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.PatientService
// ─────────────────────────────────────────────

type mockPatientService struct {
	registerPatientFn func(ctx context.Context, patient models.Patient) (models.Patient, error)
	getPatientFn      func(ctx context.Context, patientID int64) (models.Patient, error)
	updatePatientFn   func(ctx context.Context, patient models.Patient) (models.Patient, error)
	listPatientsFn    func(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error)
}

func (m *mockPatientService) RegisterPatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if m.registerPatientFn != nil {
		return m.registerPatientFn(ctx, patient)
	}
	return patient, nil
}

func (m *mockPatientService) GetPatient(ctx context.Context, patientID int64) (models.Patient, error) {
	if m.getPatientFn != nil {
		return m.getPatientFn(ctx, patientID)
	}
	return models.Patient{}, nil
}

func (m *mockPatientService) UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if m.updatePatientFn != nil {
		return m.updatePatientFn(ctx, patient)
	}
	return patient, nil
}

func (m *mockPatientService) ListPatients(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error) {
	if m.listPatientsFn != nil {
		return m.listPatientsFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: service.AttendanceService
// ─────────────────────────────────────────────

type mockAttendanceService struct {
	listStatusesFn   func(ctx context.Context) ([]models.AttendanceStatus, error)
	markFn           func(ctx context.Context, markedBy int64, mark models.AttendanceMark) (models.Attendance, error)
	bulkMarkFn       func(ctx context.Context, markedBy int64, marks []models.AttendanceMark) ([]models.Attendance, error)
	listAttendanceFn func(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error)
	summaryFn        func(ctx context.Context, userID int64, from, to time.Time) (models.AttendanceSummary, error)
}

func (m *mockAttendanceService) ListStatuses(ctx context.Context) ([]models.AttendanceStatus, error) {
	if m.listStatusesFn != nil {
		return m.listStatusesFn(ctx)
	}
	return nil, nil
}

func (m *mockAttendanceService) Mark(ctx context.Context, markedBy int64, mark models.AttendanceMark) (models.Attendance, error) {
	if m.markFn != nil {
		return m.markFn(ctx, markedBy, mark)
	}
	return models.Attendance{}, nil
}

func (m *mockAttendanceService) BulkMark(ctx context.Context, markedBy int64, marks []models.AttendanceMark) ([]models.Attendance, error) {
	if m.bulkMarkFn != nil {
		return m.bulkMarkFn(ctx, markedBy, marks)
	}
	return nil, nil
}

func (m *mockAttendanceService) ListAttendance(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error) {
	if m.listAttendanceFn != nil {
		return m.listAttendanceFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockAttendanceService) Summary(ctx context.Context, userID int64, from, to time.Time) (models.AttendanceSummary, error) {
	if m.summaryFn != nil {
		return m.summaryFn(ctx, userID, from, to)
	}
	return models.AttendanceSummary{}, nil
}

// ─────────────────────────────────────────────
// Mock: service.PayrollService
// ─────────────────────────────────────────────

type mockPayrollService struct {
	setSalaryStructureFn   func(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error)
	getSalaryStructureFn   func(ctx context.Context, userID int64) (models.SalaryStructure, error)
	listSalaryStructuresFn func(ctx context.Context, userID int64) ([]models.SalaryStructure, error)
	createPaymentFn        func(ctx context.Context, ownerID, userID int64, salaryMonth time.Time) (models.PayrollPayment, error)
	getPaymentFn           func(ctx context.Context, paymentID int64) (models.PayrollPayment, error)
	updatePaymentStatusFn  func(ctx context.Context, paymentID int64, status string) (models.PayrollPayment, error)
	listPaymentsFn         func(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error)
}

func (m *mockPayrollService) SetSalaryStructure(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error) {
	if m.setSalaryStructureFn != nil {
		return m.setSalaryStructureFn(ctx, structure)
	}
	return structure, nil
}

func (m *mockPayrollService) GetSalaryStructure(ctx context.Context, userID int64) (models.SalaryStructure, error) {
	if m.getSalaryStructureFn != nil {
		return m.getSalaryStructureFn(ctx, userID)
	}
	return models.SalaryStructure{}, nil
}

func (m *mockPayrollService) ListSalaryStructures(ctx context.Context, userID int64) ([]models.SalaryStructure, error) {
	if m.listSalaryStructuresFn != nil {
		return m.listSalaryStructuresFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPayrollService) CreatePayment(ctx context.Context, ownerID, userID int64, salaryMonth time.Time) (models.PayrollPayment, error) {
	if m.createPaymentFn != nil {
		return m.createPaymentFn(ctx, ownerID, userID, salaryMonth)
	}
	return models.PayrollPayment{}, nil
}

func (m *mockPayrollService) GetPayment(ctx context.Context, paymentID int64) (models.PayrollPayment, error) {
	if m.getPaymentFn != nil {
		return m.getPaymentFn(ctx, paymentID)
	}
	return models.PayrollPayment{}, nil
}

func (m *mockPayrollService) UpdatePaymentStatus(ctx context.Context, paymentID int64, status string) (models.PayrollPayment, error) {
	if m.updatePaymentStatusFn != nil {
		return m.updatePaymentStatusFn(ctx, paymentID, status)
	}
	return models.PayrollPayment{}, nil
}

func (m *mockPayrollService) ListPayments(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error) {
	if m.listPaymentsFn != nil {
		return m.listPaymentsFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: service.AppInfoService
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	getAppVersionFn func(ctx context.Context) string
	getBuildInfoFn  func(ctx context.Context) models.BuildInfo
}

func (m *mockAppInfoService) GetAppVersion(ctx context.Context) string {
	if m.getAppVersionFn != nil {
		return m.getAppVersionFn(ctx)
	}
	return "dev"
}

func (m *mockAppInfoService) GetBuildInfo(ctx context.Context) models.BuildInfo {
	if m.getBuildInfoFn != nil {
		return m.getBuildInfoFn(ctx)
	}
	return models.BuildInfo{}
}

// ─────────────────────────────────────────────
// Mock: adapter.MediaStore
// ─────────────────────────────────────────────

type mockMediaStore struct {
	uploadFn  func(ctx context.Context, filename string, content io.Reader) (adapter.StoredMedia, error)
	deleteFn  func(ctx context.Context, key string) error
	healthyFn func(ctx context.Context) error
}

func (m *mockMediaStore) Upload(ctx context.Context, filename string, content io.Reader) (adapter.StoredMedia, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, filename, content)
	}
	return adapter.StoredMedia{}, nil
}

func (m *mockMediaStore) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockMediaStore) Healthy(ctx context.Context) error {
	if m.healthyFn != nil {
		return m.healthyFn(ctx)
	}
	return nil
}
