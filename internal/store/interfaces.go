package store

import (
	"context"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// UserRepository manages account records: creation, credential lookup,
// profile maintenance and role-scoped listings.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	SetEmployeeID(ctx context.Context, userID int64, employeeID string) error
	SetActive(ctx context.Context, userID int64, active bool) error
	CountEmployeeIDs(ctx context.Context, prefix string) (int, error)
	ListUsers(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error)
}

// HierarchyRepository maintains the organization reporting tree.
type HierarchyRepository interface {
	CreateNode(ctx context.Context, node models.Hierarchy) (models.Hierarchy, error)
	GetByUserID(ctx context.Context, userID int64) (models.Hierarchy, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Hierarchy, error)
	CountByUserTypes(ctx context.Context, ownerID int64, types []models.UserType) (int, error)
}

// RoleRepository maintains the seeded permission catalog. The upsert methods
// are conflict-safe so the seeder can run against an already seeded database.
type RoleRepository interface {
	UpsertPermission(ctx context.Context, permission models.Permission) (int64, error)
	UpsertRole(ctx context.Context, name string) (int64, error)
	GrantPermission(ctx context.Context, roleID, permissionID int64) error
	GetRoleByName(ctx context.Context, name string) (models.Role, error)
	CountRoles(ctx context.Context) (int, error)
	CountPermissions(ctx context.Context) (int, error)
}

// TokenRepository keeps the server-side refresh token ledger used for
// rotation and revocation.
type TokenRepository interface {
	Save(ctx context.Context, token models.RefreshToken) error
	Get(ctx context.Context, jti string) (models.RefreshToken, error)
	Revoke(ctx context.Context, jti string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// PlanRepository manages pricing plan definitions and the plan assignments
// of owner accounts.
type PlanRepository interface {
	CreatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error)
	GetPlanByID(ctx context.Context, planID int64) (models.PricingPlan, error)
	GetPlanByName(ctx context.Context, name string) (models.PricingPlan, error)
	ListPlans(ctx context.Context) ([]models.PricingPlan, error)
	UpdatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error)
	AssignPlan(ctx context.Context, userPlan models.UserPlan) (models.UserPlan, error)
	GetActivePlan(ctx context.Context, userID int64) (models.UserPlan, error)
	ListUserPlans(ctx context.Context, userID int64) ([]models.UserPlan, error)
}

// VenueRepository manages venue records. Deletes are soft: the record stays
// for history and is excluded from default listings.
type VenueRepository interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	GetVenueByID(ctx context.Context, venueID int64) (models.Venue, error)
	UpdateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	SoftDeleteVenue(ctx context.Context, venueID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	ListVenues(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error)
}

// ServiceRepository manages bookable service offerings attached to venues.
type ServiceRepository interface {
	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	GetServiceByID(ctx context.Context, serviceID int64) (models.Service, error)
	UpdateService(ctx context.Context, service models.Service) (models.Service, error)
	DeleteService(ctx context.Context, serviceID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	ListServices(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error)
}

// ResourceRepository manages rentable inventory attached to venues.
type ResourceRepository interface {
	CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	GetResourceByID(ctx context.Context, resourceID int64) (models.Resource, error)
	UpdateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	DeleteResource(ctx context.Context, resourceID int64) error
	CountByOwner(ctx context.Context, ownerID int64) (int, error)
	ListResources(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error)
}

// PhotoRepository manages photo attachments of catalog entities.
type PhotoRepository interface {
	SavePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	GetPhotoByID(ctx context.Context, photoID int64) (models.Photo, error)
	ListByEntity(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error)
	DemotePrimary(ctx context.Context, entityType string, entityID int64) error
	DeletePhoto(ctx context.Context, photoID int64) error
}

// PatientRepository manages customer booking records.
type PatientRepository interface {
	CreatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	GetPatientByID(ctx context.Context, patientID int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	ListPatients(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error)
}

// AttendanceRepository manages the attendance status master table and the
// per-user, per-date attendance entries.
type AttendanceRepository interface {
	UpsertStatus(ctx context.Context, status models.AttendanceStatus) (int64, error)
	ListStatuses(ctx context.Context) ([]models.AttendanceStatus, error)
	GetStatusByCode(ctx context.Context, code string) (models.AttendanceStatus, error)
	CountStatuses(ctx context.Context) (int, error)
	Mark(ctx context.Context, entry models.Attendance) (models.Attendance, error)
	BulkMark(ctx context.Context, entries []models.Attendance) ([]models.Attendance, error)
	ListAttendance(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error)
	SummaryByCode(ctx context.Context, userID int64, from, to time.Time) (map[string]int, error)
	ListUnmarkedUserIDs(ctx context.Context, types []models.UserType, date time.Time) ([]int64, error)
}

// PayrollRepository manages salary structures and payroll disbursements.
type PayrollRepository interface {
	SetSalaryStructure(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error)
	GetActiveSalaryStructure(ctx context.Context, userID int64) (models.SalaryStructure, error)
	ListSalaryStructures(ctx context.Context, userID int64) ([]models.SalaryStructure, error)
	CreatePayment(ctx context.Context, payment models.PayrollPayment) (models.PayrollPayment, error)
	GetPaymentByID(ctx context.Context, paymentID int64) (models.PayrollPayment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID int64, status string, paidAt *time.Time) (models.PayrollPayment, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error)
}
