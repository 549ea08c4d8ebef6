package service

import (
	"context"
	"io"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// AuthService handles registration, credential verification and the JWT token
// lifecycle including refresh rotation.
type AuthService interface {
	RegisterCustomer(ctx context.Context, registration models.Registration) (models.User, error)
	RegisterOwner(ctx context.Context, registration models.Registration) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID int64, change models.PasswordChange) error
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
	HasPermission(ctx context.Context, userType models.UserType, action, resource string) (bool, error)
}

// UserService covers profile maintenance, account management inside an
// organization and the role-scoped listings.
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error)
	CreateStaff(ctx context.Context, creatorID int64, userType models.UserType, registration models.Registration) (models.User, error)
	ApproveOwner(ctx context.Context, ownerID int64) (models.User, error)
	ListOwners(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.OwnerSummary, int64, error)
	ListStaff(ctx context.Context, ownerID int64, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error)
}

// CatalogService manages venues, their service offerings and rentable
// resources, and the photos attached to all three.
type CatalogService interface {
	CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	GetVenue(ctx context.Context, venueID int64) (models.Venue, error)
	UpdateVenue(ctx context.Context, venue models.Venue) (models.Venue, error)
	DeleteVenue(ctx context.Context, venueID int64) error
	ListVenues(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error)

	CreateService(ctx context.Context, service models.Service) (models.Service, error)
	GetService(ctx context.Context, serviceID int64) (models.Service, error)
	UpdateService(ctx context.Context, service models.Service) (models.Service, error)
	DeleteService(ctx context.Context, serviceID int64) error
	ListServices(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error)

	CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	GetResource(ctx context.Context, resourceID int64) (models.Resource, error)
	UpdateResource(ctx context.Context, resource models.Resource) (models.Resource, error)
	DeleteResource(ctx context.Context, resourceID int64) error
	ListResources(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error)

	AttachPhoto(ctx context.Context, photo models.Photo, filename string, content io.Reader) (models.Photo, error)
	ListPhotos(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error)
	RemovePhoto(ctx context.Context, photoID int64) error
}

// PlanService administers pricing plan definitions and owner subscriptions.
type PlanService interface {
	CreatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error)
	ListPlans(ctx context.Context) ([]models.PricingPlan, error)
	AssignPlan(ctx context.Context, assignment models.UserPlan) (models.UserPlan, error)
	GetActivePlan(ctx context.Context, userID int64) (models.UserPlan, error)
}

// PatientService manages customer booking records.
type PatientService interface {
	RegisterPatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	GetPatient(ctx context.Context, patientID int64) (models.Patient, error)
	UpdatePatient(ctx context.Context, patient models.Patient) (models.Patient, error)
	ListPatients(ctx context.Context, filter models.PatientFilter, page models.PageQuery) ([]models.Patient, int64, error)
}

// AttendanceService records working-day statuses and aggregates them into the
// summaries payroll consumes.
type AttendanceService interface {
	ListStatuses(ctx context.Context) ([]models.AttendanceStatus, error)
	Mark(ctx context.Context, markedBy int64, mark models.AttendanceMark) (models.Attendance, error)
	BulkMark(ctx context.Context, markedBy int64, marks []models.AttendanceMark) ([]models.Attendance, error)
	ListAttendance(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) ([]models.Attendance, int64, error)
	Summary(ctx context.Context, userID int64, from, to time.Time) (models.AttendanceSummary, error)
}

// PayrollService maintains salary structures and computes disbursements from
// attendance summaries.
type PayrollService interface {
	SetSalaryStructure(ctx context.Context, structure models.SalaryStructure) (models.SalaryStructure, error)
	GetSalaryStructure(ctx context.Context, userID int64) (models.SalaryStructure, error)
	ListSalaryStructures(ctx context.Context, userID int64) ([]models.SalaryStructure, error)
	CreatePayment(ctx context.Context, ownerID, userID int64, salaryMonth time.Time) (models.PayrollPayment, error)
	GetPayment(ctx context.Context, paymentID int64) (models.PayrollPayment, error)
	UpdatePaymentStatus(ctx context.Context, paymentID int64, status string) (models.PayrollPayment, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) ([]models.PayrollPayment, int64, error)
}

// AppInfoService exposes build-time metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
