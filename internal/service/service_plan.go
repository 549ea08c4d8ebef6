package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// planService is the concrete implementation of PlanService.
type planService struct {
	planRepository store.PlanRepository

	logger *logger.Logger
}

// NewPlanService constructs a PlanService over the plan repository.
func NewPlanService(planRepository store.PlanRepository, logger *logger.Logger) PlanService {
	return &planService{
		planRepository: planRepository,
		logger:         logger,
	}
}

// CreatePlan persists a new pricing plan definition.
//
// Returns ErrInvalidDataProvided when the name is empty or the plan type is
// unknown, and a wrapped store.ErrPlanNameTaken when the name is already in
// use.
func (p *planService) CreatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	if plan.Name == "" || !plan.PlanType.Valid() {
		log.Error().
			Str("name", plan.Name).
			Str("plan_type", string(plan.PlanType)).
			Msg("invalid pricing plan provided")
		return models.PricingPlan{}, ErrInvalidDataProvided
	}

	created, err := p.planRepository.CreatePlan(ctx, plan)
	if err != nil {
		log.Err(err).Str("name", plan.Name).Msg("pricing plan creation failed")
		return models.PricingPlan{}, fmt.Errorf("pricing plan creation failed: %w", err)
	}

	return created, nil
}

// ListPlans returns every pricing plan definition.
func (p *planService) ListPlans(ctx context.Context) ([]models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	plans, err := p.planRepository.ListPlans(ctx)
	if err != nil {
		log.Err(err).Msg("pricing plan listing failed")
		return nil, fmt.Errorf("pricing plan listing failed: %w", err)
	}

	return plans, nil
}

// AssignPlan binds an owner account to a pricing plan, replacing any active
// binding. The start date defaults to now; subscription plans receive an end
// date one billing cycle after the start unless the caller provides one.
func (p *planService) AssignPlan(ctx context.Context, assignment models.UserPlan) (models.UserPlan, error) {
	log := logger.FromContext(ctx)

	if assignment.UserID <= 0 || assignment.PlanID <= 0 {
		return models.UserPlan{}, ErrInvalidDataProvided
	}

	plan, err := p.planRepository.GetPlanByID(ctx, assignment.PlanID)
	if err != nil {
		log.Err(err).Int64("plan_id", assignment.PlanID).Msg("plan lookup failed")
		return models.UserPlan{}, fmt.Errorf("plan lookup failed: %w", err)
	}

	if assignment.StartDate.IsZero() {
		assignment.StartDate = time.Now()
	}
	if plan.PlanType == models.PlanSubscription && plan.BillingCycleDays > 0 && assignment.EndDate == nil {
		end := assignment.StartDate.AddDate(0, 0, plan.BillingCycleDays)
		assignment.EndDate = &end
	}
	assignment.IsActive = true

	bound, err := p.planRepository.AssignPlan(ctx, assignment)
	if err != nil {
		log.Err(err).
			Int64("user_id", assignment.UserID).
			Int64("plan_id", assignment.PlanID).
			Msg("plan assignment failed")
		return models.UserPlan{}, fmt.Errorf("plan assignment failed: %w", err)
	}
	bound.Plan = &plan

	log.Info().
		Int64("user_id", bound.UserID).
		Str("plan", plan.Name).
		Msg("pricing plan assigned")

	return bound, nil
}

// GetActivePlan returns the owner's current plan binding joined with the plan
// definition. Passes store.ErrPlanNotFound through when no binding exists.
func (p *planService) GetActivePlan(ctx context.Context, userID int64) (models.UserPlan, error) {
	log := logger.FromContext(ctx)

	userPlan, err := p.planRepository.GetActivePlan(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			return models.UserPlan{}, err
		}
		log.Err(err).Int64("user_id", userID).Msg("active plan lookup failed")
		return models.UserPlan{}, fmt.Errorf("active plan lookup failed: %w", err)
	}

	return userPlan, nil
}

// effectivePlan resolves the plan whose limits govern the given owner: the
// active binding when one exists, the seeded starter plan otherwise.
func effectivePlan(ctx context.Context, plans store.PlanRepository, ownerID int64) (models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	active, err := plans.GetActivePlan(ctx, ownerID)
	switch {
	case err == nil:
		if active.Plan != nil {
			return *active.Plan, nil
		}

		plan, err := plans.GetPlanByID(ctx, active.PlanID)
		if err != nil {
			log.Err(err).Int64("plan_id", active.PlanID).Msg("bound plan lookup failed")
			return models.PricingPlan{}, fmt.Errorf("bound plan lookup failed: %w", err)
		}
		return plan, nil

	case errors.Is(err, store.ErrPlanNotFound):
		starter, err := plans.GetPlanByName(ctx, models.StarterPlanName)
		if err != nil {
			log.Err(err).Int64("owner_id", ownerID).Msg("starter plan fallback lookup failed")
			return models.PricingPlan{}, fmt.Errorf("starter plan fallback lookup failed: %w", err)
		}
		return starter, nil

	default:
		log.Err(err).Int64("owner_id", ownerID).Msg("active plan lookup failed")
		return models.PricingPlan{}, fmt.Errorf("active plan lookup failed: %w", err)
	}
}
