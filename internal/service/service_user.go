package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/internal/utils"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// employeeIDPrefixes maps the managed roles to the short prefix their
// employee identifiers start with. Roles absent from the map never receive an
// employee ID.
var employeeIDPrefixes = map[models.UserType]string{
	models.UserTypeManager:     "VSRE-M",
	models.UserTypeLineManager: "VSRE-LM",
	models.UserTypeStaff:       "VSRE-S",
}

// managedUserTypes are the account roles an owner's organization is built
// from. They are the roles counted against the plan's staff limit and the
// default scope of staff listings.
var managedUserTypes = []models.UserType{
	models.UserTypeManager,
	models.UserTypeLineManager,
	models.UserTypeStaff,
}

// userService is the concrete implementation of UserService. It maintains
// profiles, creates managed accounts inside an owner's organization and
// serves the role-scoped listings.
type userService struct {
	userRepository      store.UserRepository
	hierarchyRepository store.HierarchyRepository
	planRepository      store.PlanRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService over the account, hierarchy and
// plan repositories.
func NewUserService(userRepository store.UserRepository, hierarchyRepository store.HierarchyRepository, planRepository store.PlanRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:      userRepository,
		hierarchyRepository: hierarchyRepository,
		planRepository:      planRepository,
		logger:              logger,
	}
}

// GetProfile returns the account record of the given user.
func (u *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of update to the stored profile
// and returns the updated record. Role, credentials and activation state are
// not reachable through this method.
func (u *userService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile lookup failed")
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	if update.Gender != nil && !validGenderCode(*update.Gender) {
		return models.User{}, ErrInvalidDataProvided
	}

	applyProfileUpdate(&user, update)

	updated, err := u.userRepository.UpdateProfile(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// CreateStaff registers a managed account (manager, line manager or staff)
// inside the creator's organization. The new account is activated
// immediately, placed under the creator in the reporting tree and assigned a
// sequential employee identifier.
//
// Returns:
//   - ErrInvalidDataProvided if the role is not a managed one or the
//     registration payload is incomplete.
//   - ErrPasswordsDoNotMatch if the confirmation does not match.
//   - ErrPermissionDenied if the creator is neither an owner nor placed in an
//     organization.
//   - ErrPlanLimitReached if the owner's plan caps the organization size.
func (u *userService) CreateStaff(ctx context.Context, creatorID int64, userType models.UserType, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	prefix, managed := employeeIDPrefixes[userType]
	if !managed {
		log.Error().Str("user_type", string(userType)).Msg("not a managed account role")
		return models.User{}, ErrInvalidDataProvided
	}

	if registration.Email == "" || registration.MobileNumber == "" || registration.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}
	if registration.Password != registration.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	creator, err := u.userRepository.FindUserByID(ctx, creatorID)
	if err != nil {
		log.Err(err).Int64("creator_id", creatorID).Msg("creator lookup failed")
		return models.User{}, fmt.Errorf("creator lookup failed: %w", err)
	}

	ownerID, level, err := u.resolvePlacement(ctx, creator)
	if err != nil {
		return models.User{}, err
	}

	if err := u.checkStaffLimit(ctx, ownerID); err != nil {
		return models.User{}, err
	}

	hash, err := utils.HashPassword(registration.Password)
	if err != nil {
		log.Err(err).Str("email", registration.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := time.Now()
	user := models.User{
		Email:            registration.Email,
		MobileNumber:     registration.MobileNumber,
		EmergencyContact: registration.EmergencyContact,
		FirstName:        registration.FirstName,
		MiddleName:       registration.MiddleName,
		LastName:         registration.LastName,
		Gender:           registration.Gender,
		Category:         registration.Category,
		UserType:         userType,
		Address:          registration.Address,
		City:             registration.City,
		OrderTypes:       registration.OrderTypes,
		Skills:           registration.Skills,
		IsActive:         true,
		DateJoined:       &now,
		CreatedBy:        creatorID,
		PasswordHash:     hash,
	}

	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).
			Str("email", user.Email).
			Str("user_type", string(userType)).
			Msg("staff creation ended with error")
		return models.User{}, fmt.Errorf("staff creation ended with error: %w", err)
	}

	employeeID, err := u.assignEmployeeID(ctx, created.UserID, prefix, ownerID)
	if err != nil {
		return models.User{}, err
	}
	created.EmployeeID = employeeID

	node := models.Hierarchy{
		UserID:   created.UserID,
		ParentID: creatorID,
		OwnerID:  ownerID,
		Level:    level,
	}
	if _, err := u.hierarchyRepository.CreateNode(ctx, node); err != nil {
		log.Err(err).Int64("user_id", created.UserID).Msg("hierarchy placement failed")
		return models.User{}, fmt.Errorf("hierarchy placement failed: %w", err)
	}

	log.Info().
		Int64("user_id", created.UserID).
		Str("employee_id", employeeID).
		Str("user_type", string(userType)).
		Int64("owner_id", ownerID).
		Msg("managed account created")

	return created, nil
}

// ApproveOwner activates a pending owner account. Approving an already active
// owner changes nothing.
func (u *userService) ApproveOwner(ctx context.Context, ownerID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := u.userRepository.FindUserByID(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("owner lookup failed")
		return models.User{}, fmt.Errorf("owner lookup failed: %w", err)
	}

	if user.UserType != models.UserTypeOwner {
		log.Error().
			Int64("user_id", ownerID).
			Str("user_type", string(user.UserType)).
			Msg("approval target is not an owner account")
		return models.User{}, ErrInvalidDataProvided
	}

	if user.IsActive {
		return user, nil
	}

	if err := u.userRepository.SetActive(ctx, ownerID, true); err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("owner activation failed")
		return models.User{}, fmt.Errorf("owner activation failed: %w", err)
	}
	user.IsActive = true

	log.Info().Int64("owner_id", ownerID).Msg("owner account approved")

	return user, nil
}

// ListOwners returns one page of owner accounts together with the manager and
// staff headcounts of each organization. The listing is forced to the owner
// role regardless of the types carried by the filter.
func (u *userService) ListOwners(ctx context.Context, filter models.UserFilter, page models.PageQuery) ([]models.OwnerSummary, int64, error) {
	log := logger.FromContext(ctx)

	filter.Types = []models.UserType{models.UserTypeOwner}
	filter.OwnerID = 0
	filter.ParentID = 0

	owners, total, err := u.userRepository.ListUsers(ctx, filter, page)
	if err != nil {
		log.Err(err).Msg("owner listing failed")
		return nil, 0, fmt.Errorf("owner listing failed: %w", err)
	}

	summaries := make([]models.OwnerSummary, 0, len(owners))
	for _, owner := range owners {
		managers, err := u.hierarchyRepository.CountByUserTypes(ctx, owner.UserID,
			[]models.UserType{models.UserTypeManager, models.UserTypeLineManager})
		if err != nil {
			log.Err(err).Int64("owner_id", owner.UserID).Msg("manager headcount failed")
			return nil, 0, fmt.Errorf("manager headcount failed: %w", err)
		}

		staff, err := u.hierarchyRepository.CountByUserTypes(ctx, owner.UserID,
			[]models.UserType{models.UserTypeStaff})
		if err != nil {
			log.Err(err).Int64("owner_id", owner.UserID).Msg("staff headcount failed")
			return nil, 0, fmt.Errorf("staff headcount failed: %w", err)
		}

		summaries = append(summaries, models.OwnerSummary{
			Owner:        owner,
			ManagerCount: managers,
			StaffCount:   staff,
		})
	}

	return summaries, total, nil
}

// ListStaff returns one page of the managed accounts inside the given owner's
// organization. Without an explicit type constraint the listing covers
// managers, line managers and staff alike.
func (u *userService) ListStaff(ctx context.Context, ownerID int64, filter models.UserFilter, page models.PageQuery) ([]models.User, int64, error) {
	log := logger.FromContext(ctx)

	if ownerID <= 0 {
		return nil, 0, ErrInvalidDataProvided
	}

	filter.OwnerID = ownerID
	if len(filter.Types) == 0 {
		filter.Types = managedUserTypes
	}

	users, total, err := u.userRepository.ListUsers(ctx, filter, page)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("staff listing failed")
		return nil, 0, fmt.Errorf("staff listing failed: %w", err)
	}

	return users, total, nil
}

// resolvePlacement determines which organization a new managed account joins
// and at which depth. Owners root their own tree; any other creator must
// already hold a node.
func (u *userService) resolvePlacement(ctx context.Context, creator models.User) (ownerID int64, level int, err error) {
	log := logger.FromContext(ctx)

	if creator.UserType == models.UserTypeOwner {
		return creator.UserID, 1, nil
	}

	node, err := u.hierarchyRepository.GetByUserID(ctx, creator.UserID)
	if err != nil {
		if errors.Is(err, store.ErrHierarchyNotFound) {
			log.Error().Int64("creator_id", creator.UserID).Msg("creator has no organization placement")
			return 0, 0, ErrPermissionDenied
		}
		log.Err(err).Int64("creator_id", creator.UserID).Msg("creator placement lookup failed")
		return 0, 0, fmt.Errorf("creator placement lookup failed: %w", err)
	}

	return node.OwnerID, node.Level + 1, nil
}

// checkStaffLimit rejects the creation when the owner's effective plan caps
// the organization headcount and the cap is already reached.
func (u *userService) checkStaffLimit(ctx context.Context, ownerID int64) error {
	log := logger.FromContext(ctx)

	plan, err := effectivePlan(ctx, u.planRepository, ownerID)
	if err != nil {
		return err
	}
	if plan.MaxStaff <= 0 {
		return nil
	}

	count, err := u.hierarchyRepository.CountByUserTypes(ctx, ownerID, managedUserTypes)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("organization headcount failed")
		return fmt.Errorf("organization headcount failed: %w", err)
	}

	if count >= plan.MaxStaff {
		log.Warn().
			Int64("owner_id", ownerID).
			Int("headcount", count).
			Int("max_staff", plan.MaxStaff).
			Msg("plan staff limit reached")
		return ErrPlanLimitReached
	}

	return nil
}

// assignEmployeeID builds the next sequential employee identifier for the
// organization and stamps it onto the account. The format is
// PREFIX-YEAR-OWNER-SEQ, e.g. VSRE-S-2026-007-003.
func (u *userService) assignEmployeeID(ctx context.Context, userID int64, prefix string, ownerID int64) (string, error) {
	log := logger.FromContext(ctx)

	base := fmt.Sprintf("%s-%d-%03d-", prefix, time.Now().Year(), ownerID)

	count, err := u.userRepository.CountEmployeeIDs(ctx, base)
	if err != nil {
		log.Err(err).Str("prefix", base).Msg("employee id sequence lookup failed")
		return "", fmt.Errorf("employee id sequence lookup failed: %w", err)
	}

	employeeID := fmt.Sprintf("%s%03d", base, count+1)
	if err := u.userRepository.SetEmployeeID(ctx, userID, employeeID); err != nil {
		log.Err(err).Int64("user_id", userID).Str("employee_id", employeeID).Msg("employee id assignment failed")
		return "", fmt.Errorf("employee id assignment failed: %w", err)
	}

	return employeeID, nil
}

// applyProfileUpdate copies the non-nil fields of update onto user.
func applyProfileUpdate(user *models.User, update models.ProfileUpdate) {
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.MiddleName != nil {
		user.MiddleName = *update.MiddleName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.EmergencyContact != nil {
		user.EmergencyContact = *update.EmergencyContact
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.City != nil {
		user.City = *update.City
	}
	if update.OrderTypes != nil {
		user.OrderTypes = *update.OrderTypes
	}
	if update.Skills != nil {
		user.Skills = *update.Skills
	}
}

// validGenderCode reports whether code is one of the stored gender codes.
func validGenderCode(code string) bool {
	switch code {
	case models.GenderMale, models.GenderFemale, models.GenderOther, models.GenderUndisclosed:
		return true
	}
	return false
}
