// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// Function-field mocks for the store and adapter interfaces the service
// tests exercise. A nil field answers with zero values.

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn           func(ctx context.Context, user models.User) (models.User, error)
	findUserByIDFn         func(ctx context.Context, userID int64) (models.User, error)
	findUserByIdentifierFn func(ctx context.Context, identifier string) (models.User, error)
	updateProfileFn        func(ctx context.Context, user models.User) (models.User, error)
	updatePasswordFn       func(ctx context.Context, userID int64, passwordHash string) error
	setEmployeeIDFn        func(ctx context.Context, userID int64, employeeID string) error
	setActiveFn            func(ctx context.Context, userID int64, active bool) error
	countEmployeeIDsFn     func(ctx context.Context, prefix string) (int, error)
	listUsersFn            func(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	if m.findUserByIdentifierFn != nil {
		return m.findUserByIdentifierFn(ctx, identifier)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(ctx, userID, passwordHash)
	}
	return nil
}

func (m *mockUserRepository) SetEmployeeID(ctx context.Context, userID int64, employeeID string) error {
	if m.setEmployeeIDFn != nil {
		return m.setEmployeeIDFn(ctx, userID, employeeID)
	}
	return nil
}

func (m *mockUserRepository) SetActive(ctx context.Context, userID int64, active bool) error {
	if m.setActiveFn != nil {
		return m.setActiveFn(ctx, userID, active)
	}
	return nil
}

func (m *mockUserRepository) CountEmployeeIDs(ctx context.Context, prefix string) (int, error) {
	if m.countEmployeeIDsFn != nil {
		return m.countEmployeeIDsFn(ctx, prefix)
	}
	return 0, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.TokenRepository
// ─────────────────────────────────────────────

type mockTokenRepository struct {
	saveFn             func(ctx context.Context, token models.RefreshToken) error
	getFn              func(ctx context.Context, jti string) (models.RefreshToken, error)
	revokeFn           func(ctx context.Context, jti string) error
	revokeAllForUserFn func(ctx context.Context, userID int64) error
	deleteExpiredFn    func(ctx context.Context, before time.Time) (int64, error)
}

func (m *mockTokenRepository) Save(ctx context.Context, token models.RefreshToken) error {
	if m.saveFn != nil {
		return m.saveFn(ctx, token)
	}
	return nil
}

func (m *mockTokenRepository) Get(ctx context.Context, jti string) (models.RefreshToken, error) {
	if m.getFn != nil {
		return m.getFn(ctx, jti)
	}
	return models.RefreshToken{}, nil
}

func (m *mockTokenRepository) Revoke(ctx context.Context, jti string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, jti)
	}
	return nil
}

func (m *mockTokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	if m.revokeAllForUserFn != nil {
		return m.revokeAllForUserFn(ctx, userID)
	}
	return nil
}

func (m *mockTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx, before)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.RoleRepository
// ─────────────────────────────────────────────

type mockRoleRepository struct {
	upsertPermissionFn func(ctx context.Context, permission models.Permission) (int64, error)
	upsertRoleFn       func(ctx context.Context, name string) (int64, error)
	grantPermissionFn  func(ctx context.Context, roleID, permissionID int64) error
	getRoleByNameFn    func(ctx context.Context, name string) (models.Role, error)
	countRolesFn       func(ctx context.Context) (int, error)
	countPermissionsFn func(ctx context.Context) (int, error)
}

func (m *mockRoleRepository) UpsertPermission(ctx context.Context, permission models.Permission) (int64, error) {
	if m.upsertPermissionFn != nil {
		return m.upsertPermissionFn(ctx, permission)
	}
	return 0, nil
}

func (m *mockRoleRepository) UpsertRole(ctx context.Context, name string) (int64, error) {
	if m.upsertRoleFn != nil {
		return m.upsertRoleFn(ctx, name)
	}
	return 0, nil
}

func (m *mockRoleRepository) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	if m.grantPermissionFn != nil {
		return m.grantPermissionFn(ctx, roleID, permissionID)
	}
	return nil
}

func (m *mockRoleRepository) GetRoleByName(ctx context.Context, name string) (models.Role, error) {
	if m.getRoleByNameFn != nil {
		return m.getRoleByNameFn(ctx, name)
	}
	return models.Role{}, nil
}

func (m *mockRoleRepository) CountRoles(ctx context.Context) (int, error) {
	if m.countRolesFn != nil {
		return m.countRolesFn(ctx)
	}
	return 0, nil
}

func (m *mockRoleRepository) CountPermissions(ctx context.Context) (int, error) {
	if m.countPermissionsFn != nil {
		return m.countPermissionsFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.HierarchyRepository
// ─────────────────────────────────────────────

type mockHierarchyRepository struct {
	createNodeFn       func(ctx context.Context, node models.Hierarchy) (models.Hierarchy, error)
	getByUserIDFn      func(ctx context.Context, userID int64) (models.Hierarchy, error)
	listByOwnerFn      func(ctx context.Context, ownerID int64) ([]models.Hierarchy, error)
	countByUserTypesFn func(ctx context.Context, ownerID int64, types []models.UserType) (int, error)
}

func (m *mockHierarchyRepository) CreateNode(ctx context.Context, node models.Hierarchy) (models.Hierarchy, error) {
	if m.createNodeFn != nil {
		return m.createNodeFn(ctx, node)
	}
	return node, nil
}

func (m *mockHierarchyRepository) GetByUserID(ctx context.Context, userID int64) (models.Hierarchy, error) {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return models.Hierarchy{}, nil
}

func (m *mockHierarchyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Hierarchy, error) {
	if m.listByOwnerFn != nil {
		return m.listByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockHierarchyRepository) CountByUserTypes(ctx context.Context, ownerID int64, types []models.UserType) (int, error) {
	if m.countByUserTypesFn != nil {
		return m.countByUserTypesFn(ctx, ownerID, types)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.PlanRepository
// ─────────────────────────────────────────────

type mockPlanRepository struct {
	createPlanFn    func(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error)
	getPlanByIDFn   func(ctx context.Context, planID int64) (models.PricingPlan, error)
	getPlanByNameFn func(ctx context.Context, name string) (models.PricingPlan, error)
	listPlansFn     func(ctx context.Context) ([]models.PricingPlan, error)
	updatePlanFn    func(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error)
	assignPlanFn    func(ctx context.Context, userPlan models.UserPlan) (models.UserPlan, error)
	getActivePlanFn func(ctx context.Context, userID int64) (models.UserPlan, error)
	listUserPlansFn func(ctx context.Context, userID int64) ([]models.UserPlan, error)
}

func (m *mockPlanRepository) CreatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error) {
	if m.createPlanFn != nil {
		return m.createPlanFn(ctx, plan)
	}
	return plan, nil
}

func (m *mockPlanRepository) GetPlanByID(ctx context.Context, planID int64) (models.PricingPlan, error) {
	if m.getPlanByIDFn != nil {
		return m.getPlanByIDFn(ctx, planID)
	}
	return models.PricingPlan{}, nil
}

func (m *mockPlanRepository) GetPlanByName(ctx context.Context, name string) (models.PricingPlan, error) {
	if m.getPlanByNameFn != nil {
		return m.getPlanByNameFn(ctx, name)
	}
	return models.PricingPlan{}, nil
}

func (m *mockPlanRepository) ListPlans(ctx context.Context) ([]models.PricingPlan, error) {
	if m.listPlansFn != nil {
		return m.listPlansFn(ctx)
	}
	return nil, nil
}

func (m *mockPlanRepository) UpdatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error) {
	if m.updatePlanFn != nil {
		return m.updatePlanFn(ctx, plan)
	}
	return plan, nil
}

func (m *mockPlanRepository) AssignPlan(ctx context.Context, userPlan models.UserPlan) (models.UserPlan, error) {
	if m.assignPlanFn != nil {
		return m.assignPlanFn(ctx, userPlan)
	}
	return userPlan, nil
}

func (m *mockPlanRepository) GetActivePlan(ctx context.Context, userID int64) (models.UserPlan, error) {
	if m.getActivePlanFn != nil {
		return m.getActivePlanFn(ctx, userID)
	}
	return models.UserPlan{}, nil
}

func (m *mockPlanRepository) ListUserPlans(ctx context.Context, userID int64) ([]models.UserPlan, error) {
	if m.listUserPlansFn != nil {
		return m.listUserPlansFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.VenueRepository
// ─────────────────────────────────────────────

type mockVenueRepository struct {
	createVenueFn     func(ctx context.Context, venue models.Venue) (models.Venue, error)
	getVenueByIDFn    func(ctx context.Context, venueID int64) (models.Venue, error)
	updateVenueFn     func(ctx context.Context, venue models.Venue) (models.Venue, error)
	softDeleteVenueFn func(ctx context.Context, venueID int64) error
	countByOwnerFn    func(ctx context.Context, ownerID int64) (int, error)
	listVenuesFn      func(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error)
}

func (m *mockVenueRepository) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if m.createVenueFn != nil {
		return m.createVenueFn(ctx, venue)
	}
	return venue, nil
}

func (m *mockVenueRepository) GetVenueByID(ctx context.Context, venueID int64) (models.Venue, error) {
	if m.getVenueByIDFn != nil {
		return m.getVenueByIDFn(ctx, venueID)
	}
	return models.Venue{}, nil
}

func (m *mockVenueRepository) UpdateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if m.updateVenueFn != nil {
		return m.updateVenueFn(ctx, venue)
	}
	return venue, nil
}

func (m *mockVenueRepository) SoftDeleteVenue(ctx context.Context, venueID int64) error {
	if m.softDeleteVenueFn != nil {
		return m.softDeleteVenueFn(ctx, venueID)
	}
	return nil
}

func (m *mockVenueRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	if m.countByOwnerFn != nil {
		return m.countByOwnerFn(ctx, ownerID)
	}
	return 0, nil
}

func (m *mockVenueRepository) ListVenues(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error) {
	if m.listVenuesFn != nil {
		return m.listVenuesFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.ServiceRepository
// ─────────────────────────────────────────────

type mockServiceRepository struct {
	createServiceFn  func(ctx context.Context, service models.Service) (models.Service, error)
	getServiceByIDFn func(ctx context.Context, serviceID int64) (models.Service, error)
	updateServiceFn  func(ctx context.Context, service models.Service) (models.Service, error)
	deleteServiceFn  func(ctx context.Context, serviceID int64) error
	countByOwnerFn   func(ctx context.Context, ownerID int64) (int, error)
	listServicesFn   func(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error)
}

func (m *mockServiceRepository) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	if m.createServiceFn != nil {
		return m.createServiceFn(ctx, service)
	}
	return service, nil
}

func (m *mockServiceRepository) GetServiceByID(ctx context.Context, serviceID int64) (models.Service, error) {
	if m.getServiceByIDFn != nil {
		return m.getServiceByIDFn(ctx, serviceID)
	}
	return models.Service{}, nil
}

func (m *mockServiceRepository) UpdateService(ctx context.Context, service models.Service) (models.Service, error) {
	if m.updateServiceFn != nil {
		return m.updateServiceFn(ctx, service)
	}
	return service, nil
}

func (m *mockServiceRepository) DeleteService(ctx context.Context, serviceID int64) error {
	if m.deleteServiceFn != nil {
		return m.deleteServiceFn(ctx, serviceID)
	}
	return nil
}

func (m *mockServiceRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	if m.countByOwnerFn != nil {
		return m.countByOwnerFn(ctx, ownerID)
	}
	return 0, nil
}

func (m *mockServiceRepository) ListServices(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error) {
	if m.listServicesFn != nil {
		return m.listServicesFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.ResourceRepository
// ─────────────────────────────────────────────

type mockResourceRepository struct {
	createResourceFn  func(ctx context.Context, resource models.Resource) (models.Resource, error)
	getResourceByIDFn func(ctx context.Context, resourceID int64) (models.Resource, error)
	updateResourceFn  func(ctx context.Context, resource models.Resource) (models.Resource, error)
	deleteResourceFn  func(ctx context.Context, resourceID int64) error
	countByOwnerFn    func(ctx context.Context, ownerID int64) (int, error)
	listResourcesFn   func(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error)
}

func (m *mockResourceRepository) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if m.createResourceFn != nil {
		return m.createResourceFn(ctx, resource)
	}
	return resource, nil
}

func (m *mockResourceRepository) GetResourceByID(ctx context.Context, resourceID int64) (models.Resource, error) {
	if m.getResourceByIDFn != nil {
		return m.getResourceByIDFn(ctx, resourceID)
	}
	return models.Resource{}, nil
}

func (m *mockResourceRepository) UpdateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	if m.updateResourceFn != nil {
		return m.updateResourceFn(ctx, resource)
	}
	return resource, nil
}

func (m *mockResourceRepository) DeleteResource(ctx context.Context, resourceID int64) error {
	if m.deleteResourceFn != nil {
		return m.deleteResourceFn(ctx, resourceID)
	}
	return nil
}

func (m *mockResourceRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	if m.countByOwnerFn != nil {
		return m.countByOwnerFn(ctx, ownerID)
	}
	return 0, nil
}

func (m *mockResourceRepository) ListResources(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error) {
	if m.listResourcesFn != nil {
		return m.listResourcesFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.PhotoRepository
// ─────────────────────────────────────────────

type mockPhotoRepository struct {
	savePhotoFn     func(ctx context.Context, photo models.Photo) (models.Photo, error)
	getPhotoByIDFn  func(ctx context.Context, photoID int64) (models.Photo, error)
	listByEntityFn  func(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error)
	demotePrimaryFn func(ctx context.Context, entityType string, entityID int64) error
	deletePhotoFn   func(ctx context.Context, photoID int64) error
}

func (m *mockPhotoRepository) SavePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	if m.savePhotoFn != nil {
		return m.savePhotoFn(ctx, photo)
	}
	return photo, nil
}

func (m *mockPhotoRepository) GetPhotoByID(ctx context.Context, photoID int64) (models.Photo, error) {
	if m.getPhotoByIDFn != nil {
		return m.getPhotoByIDFn(ctx, photoID)
	}
	return models.Photo{}, nil
}

func (m *mockPhotoRepository) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error) {
	if m.listByEntityFn != nil {
		return m.listByEntityFn(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *mockPhotoRepository) DemotePrimary(ctx context.Context, entityType string, entityID int64) error {
	if m.demotePrimaryFn != nil {
		return m.demotePrimaryFn(ctx, entityType, entityID)
	}
	return nil
}

func (m *mockPhotoRepository) DeletePhoto(ctx context.Context, photoID int64) error {
	if m.deletePhotoFn != nil {
		return m.deletePhotoFn(ctx, photoID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.PatientRepository
// ─────────────────────────────────────────────

type mockPatientRepository struct {
	createPatientFn  func(ctx context.Context, patient models.Patient) (models.Patient, error)
	getPatientByIDFn func(ctx context.Context, patientID int64) (models.Patient, error)
	updatePatientFn  func(ctx context.Context, patient models.Patient) (models.Patient, error)
	listPatientsFn   func(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error)
}

func (m *mockPatientRepository) CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if m.createPatientFn != nil {
		return m.createPatientFn(ctx, patient)
	}
	return patient, nil
}

func (m *mockPatientRepository) GetPatientByID(ctx context.Context, patientID int64) (models.Patient, error) {
	if m.getPatientByIDFn != nil {
		return m.getPatientByIDFn(ctx, patientID)
	}
	return models.Patient{}, nil
}

func (m *mockPatientRepository) UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error) {
	if m.updatePatientFn != nil {
		return m.updatePatientFn(ctx, patient)
	}
	return patient, nil
}

func (m *mockPatientRepository) ListPatients(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error) {
	if m.listPatientsFn != nil {
		return m.listPatientsFn(ctx, filter, page)
	}
	return nil, 0, nil
}

// ─────────────────────────────────────────────
// Mock: store.AttendanceRepository
// ─────────────────────────────────────────────

type mockAttendanceRepository struct {
	upsertStatusFn        func(ctx context.Context, status models.AttendanceStatus) (int64, error)
	listStatusesFn        func(ctx context.Context) ([]models.AttendanceStatus, error)
	getStatusByCodeFn     func(ctx context.Context, code string) (models.AttendanceStatus, error)
	countStatusesFn       func(ctx context.Context) (int, error)
	markFn                func(ctx context.Context, entry models.Attendance) (models.Attendance, error)
	bulkMarkFn            func(ctx context.Context, entries []models.Attendance) ([]models.Attendance, error)
	listAttendanceFn      func(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error)
	summaryByCodeFn       func(ctx context.Context, userID int64, from, to time.Time) (map[string]int, error)
	listUnmarkedUserIDsFn func(ctx context.Context, types []models.UserType, date time.Time) ([]int64, error)
}

func (m *mockAttendanceRepository) UpsertStatus(ctx context.Context, status models.AttendanceStatus) (int64, error) {
	if m.upsertStatusFn != nil {
		return m.upsertStatusFn(ctx, status)
	}
	return 0, nil
}

func (m *mockAttendanceRepository) ListStatuses(ctx context.Context) ([]models.AttendanceStatus, error) {
	if m.listStatusesFn != nil {
		return m.listStatusesFn(ctx)
	}
	return nil, nil
}

func (m *mockAttendanceRepository) GetStatusByCode(ctx context.Context, code string) (models.AttendanceStatus, error) {
	if m.getStatusByCodeFn != nil {
		return m.getStatusByCodeFn(ctx, code)
	}
	return models.AttendanceStatus{}, nil
}

func (m *mockAttendanceRepository) CountStatuses(ctx context.Context) (int, error) {
	if m.countStatusesFn != nil {
		return m.countStatusesFn(ctx)
	}
	return 0, nil
}

func (m *mockAttendanceRepository) Mark(ctx context.Context, entry models.Attendance) (models.Attendance, error) {
	if m.markFn != nil {
		return m.markFn(ctx, entry)
	}
	return entry, nil
}

func (m *mockAttendanceRepository) BulkMark(ctx context.Context, entries []models.Attendance) ([]models.Attendance, error) {
	if m.bulkMarkFn != nil {
		return m.bulkMarkFn(ctx, entries)
	}
	return entries, nil
}

func (m *mockAttendanceRepository) ListAttendance(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error) {
	if m.listAttendanceFn != nil {
		return m.listAttendanceFn(ctx, filter, page)
	}
	return nil, 0, nil
}

func (m *mockAttendanceRepository) SummaryByCode(ctx context.Context, userID int64, from, to time.Time) (map[string]int, error) {
	if m.summaryByCodeFn != nil {
		return m.summaryByCodeFn(ctx, userID, from, to)
	}
	return map[string]int{}, nil
}

func (m *mockAttendanceRepository) ListUnmarkedUserIDs(ctx context.Context, types []models.UserType, date time.Time) ([]int64, error) {
	if m.listUnmarkedUserIDsFn != nil {
		return m.listUnmarkedUserIDsFn(ctx, types, date)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.PayrollRepository
// ─────────────────────────────────────────────

type mockPayrollRepository struct {
	setSalaryStructureFn       func(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error)
	getActiveSalaryStructureFn func(ctx context.Context, userID int64) (models.SalaryStructure, error)
	listSalaryStructuresFn     func(ctx context.Context, userID int64) ([]models.SalaryStructure, error)
	createPaymentFn            func(ctx context.Context, payment models.PayrollPayment) (models.PayrollPayment, error)
	getPaymentByIDFn           func(ctx context.Context, paymentID int64) (models.PayrollPayment, error)
	updatePaymentStatusFn      func(ctx context.Context, paymentID int64, status string, paidAt *time.Time) (models.PayrollPayment, error)
	listPaymentsFn             func(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error)
}

func (m *mockPayrollRepository) SetSalaryStructure(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error) {
	if m.setSalaryStructureFn != nil {
		return m.setSalaryStructureFn(ctx, structure)
	}
	return structure, nil
}

func (m *mockPayrollRepository) GetActiveSalaryStructure(ctx context.Context, userID int64) (models.SalaryStructure, error) {
	if m.getActiveSalaryStructureFn != nil {
		return m.getActiveSalaryStructureFn(ctx, userID)
	}
	return models.SalaryStructure{}, nil
}

func (m *mockPayrollRepository) ListSalaryStructures(ctx context.Context, userID int64) ([]models.SalaryStructure, error) {
	if m.listSalaryStructuresFn != nil {
		return m.listSalaryStructuresFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockPayrollRepository) CreatePayment(ctx context.Context, payment models.PayrollPayment) (models.PayrollPayment, error) {
	if m.createPaymentFn != nil {
		return m.createPaymentFn(ctx, payment)
	}
	return payment, nil
}

func (m *mockPayrollRepository) GetPaymentByID(ctx context.Context, paymentID int64) (models.PayrollPayment, error) {
	if m.getPaymentByIDFn != nil {
		return m.getPaymentByIDFn(ctx, paymentID)
	}
	return models.PayrollPayment{}, nil
}

func (m *mockPayrollRepository) UpdatePaymentStatus(ctx context.Context, paymentID int64, status string, paidAt *time.Time) (models.PayrollPayment, error) {
	if m.updatePaymentStatusFn != nil {
		return m.updatePaymentStatusFn(ctx, paymentID, status, paidAt)
	}
	return models.PayrollPayment{}, nil
}

func (m *mockPayrollRepository) ListPayments(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error) {
	if m.listPaymentsFn != nil {
		return m.listPaymentsFn(ctx, filter, page)
	}
	return nil, 0, nil
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
