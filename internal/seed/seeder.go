// Package seed writes the baseline reference data the application expects at
// runtime: the permission catalog with its per-role grants, the attendance
// status dictionary and the starter pricing plan. Every phase is
// conflict-safe, so reseeding an already seeded database changes nothing.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
	"github.com/shopspring/decimal"
)

// Resource kinds grouped the way the default role scopes reference them.
var (
	accountResources = []string{"user", "hierarchy", "plan"}
	venueResources   = []string{"venue", "service", "resource", "photo"}
	bookingResources = []string{"booking"}

	// operationsResources are only granted to the master admin; owners
	// reach attendance and payroll through their own scoped endpoints.
	operationsResources = []string{"attendance", "payroll"}
)

var permissionActions = []string{
	models.PermissionView,
	models.PermissionAdd,
	models.PermissionChange,
	models.PermissionDelete,
}

// roleScope describes the grant of one seeded role: which actions it may
// perform on which resource kinds.
type roleScope struct {
	actions   []string
	resources []string
}

// seededRoleOrder fixes the seeding order so logs and tests are stable.
var seededRoleOrder = []models.UserType{
	models.UserTypeMasterAdmin,
	models.UserTypeOwner,
	models.UserTypeManager,
	models.UserTypeLineManager,
	models.UserTypeStaff,
	models.UserTypeCustomer,
}

// defaultRoleScopes are the default group rules: master admin holds every
// permission, owners hold everything on accounts and the venue catalog,
// managers may view and change the same, staff and line managers may view
// the venue catalog, customers may view and create bookings.
var defaultRoleScopes = map[models.UserType]roleScope{
	models.UserTypeMasterAdmin: {actions: permissionActions, resources: allResources()},
	models.UserTypeOwner:       {actions: permissionActions, resources: joinResources(accountResources, venueResources)},
	models.UserTypeManager: {
		actions:   []string{models.PermissionView, models.PermissionChange},
		resources: joinResources(accountResources, venueResources),
	},
	models.UserTypeLineManager: {actions: []string{models.PermissionView}, resources: venueResources},
	models.UserTypeStaff:       {actions: []string{models.PermissionView}, resources: venueResources},
	models.UserTypeCustomer: {
		actions:   []string{models.PermissionView, models.PermissionAdd},
		resources: bookingResources,
	},
}

// defaultAttendanceStatuses are the codes attendance marking and payroll
// computation rely on.
var defaultAttendanceStatuses = []models.AttendanceStatus{
	{Code: models.StatusAbsent, Label: "Absent", IsActive: true},
	{Code: models.StatusPresent, Label: "Present", IsActive: true},
	{Code: models.StatusHalfDay, Label: "Half day", IsActive: true},
	{Code: models.StatusPaidLeave, Label: "Paid leave", IsActive: true},
	{Code: models.StatusUnpaidLeave, Label: "Unpaid leave", IsActive: true},
}

func starterPlan() models.PricingPlan {
	return models.PricingPlan{
		Name:         models.StarterPlanName,
		PlanType:     models.PlanPayPerUse,
		Description:  "Pay-per-use starter plan for new owners.",
		Price:        decimal.Zero,
		MaxVenues:    1,
		MaxServices:  1,
		MaxResources: 1,
		IsActive:     true,
	}
}

func allResources() []string {
	return joinResources(accountResources, venueResources, bookingResources, operationsResources)
}

func joinResources(groups ...[]string) []string {
	joined := make([]string, 0, 10)
	for _, group := range groups {
		joined = append(joined, group...)
	}
	return joined
}

// Seeder runs the seeding phases. One instance serves both the startup
// sequence and the seed subcommand.
type Seeder struct {
	roles      store.RoleRepository
	attendance store.AttendanceRepository
	plans      store.PlanRepository
	logger     *logger.Logger
}

// NewSeeder constructs a Seeder over the application repositories.
func NewSeeder(storages *store.Storages, logger *logger.Logger) *Seeder {
	logger.Debug().Msg("creating seeder")
	return &Seeder{
		roles:      storages.RoleRepository,
		attendance: storages.AttendanceRepository,
		plans:      storages.PlanRepository,
		logger:     logger,
	}
}

// Run executes all seeding phases in order and stops on the first failure.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedPermissionCatalog(ctx); err != nil {
		return fmt.Errorf("seeding permission catalog: %w", err)
	}

	if err := s.seedAttendanceStatuses(ctx); err != nil {
		return fmt.Errorf("seeding attendance statuses: %w", err)
	}

	if err := s.seedPricingPlans(ctx); err != nil {
		return fmt.Errorf("seeding pricing plans: %w", err)
	}

	return nil
}

// seedPermissionCatalog upserts the full action-by-resource permission set,
// then the six roles with their scoped grants.
func (s *Seeder) seedPermissionCatalog(ctx context.Context) error {
	log := logger.FromContext(ctx)

	resources := allResources()
	permissionIDs := make(map[string]int64, len(resources)*len(permissionActions))

	for _, resource := range resources {
		for _, action := range permissionActions {
			permission := models.Permission{
				Codename: action + "_" + resource,
				Action:   action,
				Resource: resource,
			}

			id, err := s.roles.UpsertPermission(ctx, permission)
			if err != nil {
				return fmt.Errorf("upserting permission %s: %w", permission.Codename, err)
			}
			permissionIDs[permission.Codename] = id
		}
	}

	granted := 0
	for _, userType := range seededRoleOrder {
		scope := defaultRoleScopes[userType]

		roleID, err := s.roles.UpsertRole(ctx, string(userType))
		if err != nil {
			return fmt.Errorf("upserting role %s: %w", userType, err)
		}

		for _, resource := range scope.resources {
			for _, action := range scope.actions {
				if err := s.roles.GrantPermission(ctx, roleID, permissionIDs[action+"_"+resource]); err != nil {
					return fmt.Errorf("granting %s_%s to role %s: %w", action, resource, userType, err)
				}
				granted++
			}
		}
	}

	log.Info().
		Int("permissions", len(permissionIDs)).
		Int("roles", len(seededRoleOrder)).
		Int("grants", granted).
		Msg("seeded permission catalog")

	return nil
}

// seedAttendanceStatuses update-or-creates the five default status codes.
func (s *Seeder) seedAttendanceStatuses(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for _, status := range defaultAttendanceStatuses {
		if _, err := s.attendance.UpsertStatus(ctx, status); err != nil {
			return fmt.Errorf("upserting status %s: %w", status.Code, err)
		}
	}

	log.Info().
		Int("statuses", len(defaultAttendanceStatuses)).
		Msg("seeded attendance statuses")

	return nil
}

// seedPricingPlans inserts the starter plan when no plan of that name exists
// yet. Existing plans are left untouched so operator edits survive restarts.
func (s *Seeder) seedPricingPlans(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := s.plans.GetPlanByName(ctx, models.StarterPlanName)
	if err == nil {
		log.Info().Str("plan", models.StarterPlanName).Msg("starter plan already present")
		return nil
	}
	if !errors.Is(err, store.ErrPlanNotFound) {
		return fmt.Errorf("looking up plan %s: %w", models.StarterPlanName, err)
	}

	created, err := s.plans.CreatePlan(ctx, starterPlan())
	if err != nil {
		return fmt.Errorf("creating plan %s: %w", models.StarterPlanName, err)
	}

	log.Info().
		Str("plan", created.Name).
		Int64("plan_id", created.ID).
		Msg("seeded starter pricing plan")

	return nil
}
