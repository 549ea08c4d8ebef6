// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pankaj Shinde

package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func newTestUserService(users *mockUserRepository, hierarchy *mockHierarchyRepository, plans *mockPlanRepository) UserService {
	return NewUserService(users, hierarchy, plans, logger.Nop())
}

// unlimitedPlan answers every active-plan lookup with a plan that caps
// nothing.
func unlimitedPlan() *mockPlanRepository {
	return &mockPlanRepository{
		getActivePlanFn: func(_ context.Context, userID int64) (models.UserPlan, error) {
			return models.UserPlan{
				UserID: userID,
				PlanID: 1,
				Plan:   &models.PricingPlan{ID: 1, Name: "Business"},
			}, nil
		},
	}
}

// ─────────────────────────────────────────────
// GetProfile / UpdateProfile
// ─────────────────────────────────────────────

func TestUserService_GetProfile_Success(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, Email: "jay@example.com"}, nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	user, err := svc.GetProfile(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "jay@example.com", user.Email)
}

func TestUserService_UpdateProfile_AppliesOnlyProvidedFields(t *testing.T) {
	stored := models.User{UserID: 7, FirstName: "Jay", LastName: "Prakash", City: "Pune"}
	var updated models.User
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return stored, nil
		},
		updateProfileFn: func(_ context.Context, user models.User) (models.User, error) {
			updated = user
			return user, nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	city := "Mumbai"
	gender := models.GenderFemale
	_, err := svc.UpdateProfile(context.Background(), 7, models.ProfileUpdate{
		City:   &city,
		Gender: &gender,
	})

	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, models.GenderFemale, updated.Gender)
	assert.Equal(t, "Jay", updated.FirstName, "untouched fields must survive")
	assert.Equal(t, "Prakash", updated.LastName)
}

func TestUserService_UpdateProfile_RejectsUnknownGender(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 7}, nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	bad := "X"
	_, err := svc.UpdateProfile(context.Background(), 7, models.ProfileUpdate{Gender: &bad})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// CreateStaff
// ─────────────────────────────────────────────

func TestUserService_CreateStaff_OwnerCreatesFirstLevel(t *testing.T) {
	owner := models.User{UserID: 9, UserType: models.UserTypeOwner, IsActive: true}

	var employeeID string
	var countedPrefix string
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return owner, nil
		},
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 31
			return user, nil
		},
		countEmployeeIDsFn: func(_ context.Context, prefix string) (int, error) {
			countedPrefix = prefix
			return 2, nil
		},
		setEmployeeIDFn: func(_ context.Context, userID int64, id string) error {
			assert.Equal(t, int64(31), userID)
			employeeID = id
			return nil
		},
	}
	var node models.Hierarchy
	hierarchy := &mockHierarchyRepository{
		createNodeFn: func(_ context.Context, n models.Hierarchy) (models.Hierarchy, error) {
			node = n
			return n, nil
		},
	}
	svc := newTestUserService(users, hierarchy, unlimitedPlan())

	created, err := svc.CreateStaff(context.Background(), 9, models.UserTypeStaff, validRegistration())

	require.NoError(t, err)
	base := fmt.Sprintf("VSRE-S-%d-009-", time.Now().Year())
	assert.Equal(t, base, countedPrefix)
	assert.Equal(t, base+"003", employeeID, "sequence continues after the existing two")
	assert.Equal(t, employeeID, created.EmployeeID)
	assert.True(t, created.IsActive, "managed accounts skip the approval step")
	assert.Equal(t, int64(9), created.CreatedBy)
	require.NotNil(t, created.DateJoined)

	assert.Equal(t, int64(31), node.UserID)
	assert.Equal(t, int64(9), node.ParentID)
	assert.Equal(t, int64(9), node.OwnerID)
	assert.Equal(t, 1, node.Level, "accounts created by the owner sit at level 1")
}

func TestUserService_CreateStaff_ManagerCreatesOneLevelDeeper(t *testing.T) {
	manager := models.User{UserID: 12, UserType: models.UserTypeManager, IsActive: true}
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return manager, nil
		},
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 44
			return user, nil
		},
	}
	var node models.Hierarchy
	hierarchy := &mockHierarchyRepository{
		getByUserIDFn: func(_ context.Context, userID int64) (models.Hierarchy, error) {
			assert.Equal(t, int64(12), userID)
			return models.Hierarchy{UserID: 12, OwnerID: 9, Level: 1}, nil
		},
		createNodeFn: func(_ context.Context, n models.Hierarchy) (models.Hierarchy, error) {
			node = n
			return n, nil
		},
	}
	svc := newTestUserService(users, hierarchy, unlimitedPlan())

	_, err := svc.CreateStaff(context.Background(), 12, models.UserTypeLineManager, validRegistration())

	require.NoError(t, err)
	assert.Equal(t, int64(9), node.OwnerID, "organization is inherited from the creator's node")
	assert.Equal(t, int64(12), node.ParentID)
	assert.Equal(t, 2, node.Level)
}

func TestUserService_CreateStaff_CreatorWithoutPlacement(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 12, UserType: models.UserTypeManager}, nil
		},
	}
	hierarchy := &mockHierarchyRepository{
		getByUserIDFn: func(_ context.Context, _ int64) (models.Hierarchy, error) {
			return models.Hierarchy{}, store.ErrHierarchyNotFound
		},
	}
	svc := newTestUserService(users, hierarchy, unlimitedPlan())

	_, err := svc.CreateStaff(context.Background(), 12, models.UserTypeStaff, validRegistration())

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUserService_CreateStaff_RejectsUnmanagedRole(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{}, &mockHierarchyRepository{}, &mockPlanRepository{})

	_, err := svc.CreateStaff(context.Background(), 9, models.UserTypeCustomer, validRegistration())

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_CreateStaff_PlanLimitReached(t *testing.T) {
	owner := models.User{UserID: 9, UserType: models.UserTypeOwner, IsActive: true}
	created := false
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return owner, nil
		},
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			created = true
			return user, nil
		},
	}
	hierarchy := &mockHierarchyRepository{
		countByUserTypesFn: func(_ context.Context, _ int64, _ []models.UserType) (int, error) {
			return 2, nil
		},
	}
	plans := &mockPlanRepository{
		getActivePlanFn: func(_ context.Context, _ int64) (models.UserPlan, error) {
			return models.UserPlan{Plan: &models.PricingPlan{MaxStaff: 2}}, nil
		},
	}
	svc := newTestUserService(users, hierarchy, plans)

	_, err := svc.CreateStaff(context.Background(), 9, models.UserTypeStaff, validRegistration())

	require.ErrorIs(t, err, ErrPlanLimitReached)
	assert.False(t, created, "no account may be created past the cap")
}

func TestUserService_CreateStaff_FallsBackToStarterPlan(t *testing.T) {
	owner := models.User{UserID: 9, UserType: models.UserTypeOwner, IsActive: true}
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return owner, nil
		},
	}
	hierarchy := &mockHierarchyRepository{
		countByUserTypesFn: func(_ context.Context, _ int64, _ []models.UserType) (int, error) {
			return 1, nil
		},
	}
	var fallbackName string
	plans := &mockPlanRepository{
		getActivePlanFn: func(_ context.Context, _ int64) (models.UserPlan, error) {
			return models.UserPlan{}, store.ErrPlanNotFound
		},
		getPlanByNameFn: func(_ context.Context, name string) (models.PricingPlan, error) {
			fallbackName = name
			return models.PricingPlan{Name: name, MaxStaff: 1}, nil
		},
	}
	svc := newTestUserService(users, hierarchy, plans)

	_, err := svc.CreateStaff(context.Background(), 9, models.UserTypeStaff, validRegistration())

	require.ErrorIs(t, err, ErrPlanLimitReached)
	assert.Equal(t, models.StarterPlanName, fallbackName, "owners without a binding run on the Starter limits")
}

// ─────────────────────────────────────────────
// ApproveOwner
// ─────────────────────────────────────────────

func TestUserService_ApproveOwner_Activates(t *testing.T) {
	activated := false
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 9, UserType: models.UserTypeOwner, IsActive: false}, nil
		},
		setActiveFn: func(_ context.Context, userID int64, active bool) error {
			assert.Equal(t, int64(9), userID)
			assert.True(t, active)
			activated = true
			return nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	owner, err := svc.ApproveOwner(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, activated)
	assert.True(t, owner.IsActive)
}

func TestUserService_ApproveOwner_AlreadyActiveIsNoop(t *testing.T) {
	touched := false
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 9, UserType: models.UserTypeOwner, IsActive: true}, nil
		},
		setActiveFn: func(_ context.Context, _ int64, _ bool) error {
			touched = true
			return nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	owner, err := svc.ApproveOwner(context.Background(), 9)

	require.NoError(t, err)
	assert.True(t, owner.IsActive)
	assert.False(t, touched)
}

func TestUserService_ApproveOwner_RejectsNonOwner(t *testing.T) {
	users := &mockUserRepository{
		findUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{UserID: 5, UserType: models.UserTypeCustomer}, nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	_, err := svc.ApproveOwner(context.Background(), 5)

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// ListOwners / ListStaff
// ─────────────────────────────────────────────

func TestUserService_ListOwners_BuildsSummaries(t *testing.T) {
	var appliedFilter models.UserFilter
	users := &mockUserRepository{
		listUsersFn: func(_ context.Context, filter models.UserFilter, _ models.PageQuery) ([]models.User, int64, error) {
			appliedFilter = filter
			return []models.User{
				{UserID: 9, UserType: models.UserTypeOwner},
				{UserID: 10, UserType: models.UserTypeOwner},
			}, 2, nil
		},
	}
	hierarchy := &mockHierarchyRepository{
		countByUserTypesFn: func(_ context.Context, ownerID int64, types []models.UserType) (int, error) {
			// Two manager roles are counted together, staff separately.
			if len(types) == 2 {
				return int(ownerID), nil
			}
			return int(ownerID) * 10, nil
		},
	}
	svc := newTestUserService(users, hierarchy, &mockPlanRepository{})

	dirty := models.UserFilter{Types: []models.UserType{models.UserTypeStaff}, OwnerID: 3}
	summaries, total, err := svc.ListOwners(context.Background(), dirty, models.PageQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []models.UserType{models.UserTypeOwner}, appliedFilter.Types, "listing is forced to the owner role")
	assert.Zero(t, appliedFilter.OwnerID)

	require.Len(t, summaries, 2)
	assert.Equal(t, 9, summaries[0].ManagerCount)
	assert.Equal(t, 90, summaries[0].StaffCount)
	assert.Equal(t, 10, summaries[1].ManagerCount)
	assert.Equal(t, 100, summaries[1].StaffCount)
}

func TestUserService_ListStaff_DefaultsToManagedRoles(t *testing.T) {
	var appliedFilter models.UserFilter
	users := &mockUserRepository{
		listUsersFn: func(_ context.Context, filter models.UserFilter, _ models.PageQuery) ([]models.User, int64, error) {
			appliedFilter = filter
			return []models.User{{UserID: 31}}, 1, nil
		},
	}
	svc := newTestUserService(users, &mockHierarchyRepository{}, &mockPlanRepository{})

	staff, total, err := svc.ListStaff(context.Background(), 9, models.UserFilter{}, models.PageQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, staff, 1)
	assert.Equal(t, int64(9), appliedFilter.OwnerID)
	assert.Equal(t, managedUserTypes, appliedFilter.Types)
}

func TestUserService_ListStaff_RequiresOwner(t *testing.T) {
	svc := newTestUserService(&mockUserRepository{}, &mockHierarchyRepository{}, &mockPlanRepository{})

	_, _, err := svc.ListStaff(context.Background(), 0, models.UserFilter{}, models.PageQuery{})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
