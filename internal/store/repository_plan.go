package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// planRepository is the PostgreSQL-backed implementation of [PlanRepository].
// It manages the "pricing_plans" and "user_plans" tables.
type planRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPlanRepository constructs a [PlanRepository] backed by the provided
// database connection and logger.
func NewPlanRepository(db *DB, logger *logger.Logger) PlanRepository {
	logger.Debug().Msg("creating plan repository")
	return &planRepository{
		db:     db,
		logger: logger,
	}
}

// scanPricingPlan reads one pricing_plans row in the canonical column order.
func scanPricingPlan(row interface{ Scan(dest ...any) error }) (models.PricingPlan, error) {
	var plan models.PricingPlan

	err := row.Scan(
		&plan.ID,
		&plan.Name,
		&plan.PlanType,
		&plan.Description,
		&plan.Price,
		&plan.BillingCycleDays,
		&plan.MaxVenues,
		&plan.MaxServices,
		&plan.MaxResources,
		&plan.MaxStaff,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return models.PricingPlan{}, err
	}

	return plan, nil
}

// CreatePlan persists a new pricing plan and returns the stored record.
//
// Error handling:
//   - unique_violation (23505) on the name key → [ErrPlanNameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *planRepository) CreatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPricingPlan,
		plan.Name, plan.PlanType, plan.Description, plan.Price, plan.BillingCycleDays,
		plan.MaxVenues, plan.MaxServices, plan.MaxResources, plan.MaxStaff, plan.IsActive,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "planRepository.CreatePlan").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.PricingPlan{}, ErrPlanNameTaken
		}
		return models.PricingPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanPricingPlan(row)
	if err != nil {
		log.Err(err).Str("func", "planRepository.CreatePlan").Msg("error: scanning error")
		return models.PricingPlan{}, err
	}

	return saved, nil
}

// GetPlanByID retrieves one pricing plan.
//
// Error handling:
//   - No matching row → [ErrPlanNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *planRepository) GetPlanByID(ctx context.Context, planID int64) (models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	plan, err := scanPricingPlan(r.db.QueryRowContext(ctx, getPricingPlanByID, planID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PricingPlan{}, ErrPlanNotFound
		}
		log.Err(err).Str("func", "planRepository.GetPlanByID").Msg("error: scanning error")
		return models.PricingPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return plan, nil
}

// GetPlanByName retrieves one pricing plan by its unique name. The seeder
// uses it to keep the default plan insert-if-absent.
//
// Error handling:
//   - No matching row → [ErrPlanNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *planRepository) GetPlanByName(ctx context.Context, name string) (models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	plan, err := scanPricingPlan(r.db.QueryRowContext(ctx, getPricingPlanByName, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PricingPlan{}, ErrPlanNotFound
		}
		log.Err(err).Str("func", "planRepository.GetPlanByName").Msg("error: scanning error")
		return models.PricingPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return plan, nil
}

// ListPlans returns every pricing plan, active and inactive, ordered by
// creation.
func (r *planRepository) ListPlans(ctx context.Context) ([]models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPricingPlans)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ListPlans").
			Msg("failed to execute query for listing pricing plans")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.PricingPlan, 0, 50)

	for rows.Next() {
		plan, scanErr := scanPricingPlan(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "planRepository.ListPlans").
				Msg("failed to scan pricing plan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, plan)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "planRepository.ListPlans").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// UpdatePlan writes the mutable columns of a pricing plan and returns the
// updated record.
//
// Error handling:
//   - No matching row → [ErrPlanNotFound].
//   - unique_violation (23505) on the name key → [ErrPlanNameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *planRepository) UpdatePlan(ctx context.Context, plan models.PricingPlan) (models.PricingPlan, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updatePricingPlan,
		plan.ID,
		plan.Name, plan.PlanType, plan.Description, plan.Price, plan.BillingCycleDays,
		plan.MaxVenues, plan.MaxServices, plan.MaxResources, plan.MaxStaff, plan.IsActive,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "planRepository.UpdatePlan").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.PricingPlan{}, ErrPlanNameTaken
		}
		return models.PricingPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanPricingPlan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.PricingPlan{}, ErrPlanNotFound
		}
		log.Err(err).Str("func", "planRepository.UpdatePlan").Msg("error: scanning error")
		return models.PricingPlan{}, err
	}

	return updated, nil
}

// AssignPlan binds an owner account to a pricing plan. The previous active
// binding (if any) is deactivated in the same transaction so the partial
// unique index on active bindings is never violated.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrPlanNotFound] (unknown plan or user).
//   - Transaction failures → wrapped with the transaction sentinels.
func (r *planRepository) AssignPlan(ctx context.Context, userPlan models.UserPlan) (models.UserPlan, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.AssignPlan").
			Int64("user_id", userPlan.UserID).
			Msg("failed to begin transaction")
		return models.UserPlan{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deactivateUserPlans, userPlan.UserID); err != nil {
		log.Err(err).
			Str("func", "planRepository.AssignPlan").
			Int64("user_id", userPlan.UserID).
			Msg("failed to deactivate previous plan bindings")
		return models.UserPlan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var saved models.UserPlan
	err = tx.QueryRowContext(ctx, createUserPlan,
		userPlan.UserID, userPlan.PlanID, userPlan.StartDate, userPlan.EndDate, userPlan.IsActive,
	).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.PlanID,
		&saved.StartDate,
		&saved.EndDate,
		&saved.IsActive,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.AssignPlan").
			Int64("user_id", userPlan.UserID).
			Int64("plan_id", userPlan.PlanID).
			Msg("failed to insert plan binding")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.UserPlan{}, ErrPlanNotFound
		}
		return models.UserPlan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "planRepository.AssignPlan").
			Int64("user_id", userPlan.UserID).
			Msg("failed to commit transaction")
		return models.UserPlan{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return saved, nil
}

// GetActivePlan retrieves the owner's current plan binding joined with the
// plan definition.
//
// Error handling:
//   - No active binding → [ErrPlanNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *planRepository) GetActivePlan(ctx context.Context, userID int64) (models.UserPlan, error) {
	log := logger.FromContext(ctx)

	var userPlan models.UserPlan
	var plan models.PricingPlan

	err := r.db.QueryRowContext(ctx, getActiveUserPlan, userID).Scan(
		&userPlan.ID,
		&userPlan.UserID,
		&userPlan.PlanID,
		&userPlan.StartDate,
		&userPlan.EndDate,
		&userPlan.IsActive,
		&userPlan.CreatedAt,
		&userPlan.UpdatedAt,
		&plan.ID,
		&plan.Name,
		&plan.PlanType,
		&plan.Description,
		&plan.Price,
		&plan.BillingCycleDays,
		&plan.MaxVenues,
		&plan.MaxServices,
		&plan.MaxResources,
		&plan.MaxStaff,
		&plan.IsActive,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserPlan{}, ErrPlanNotFound
		}
		log.Err(err).Str("func", "planRepository.GetActivePlan").Msg("error: scanning error")
		return models.UserPlan{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	userPlan.Plan = &plan

	return userPlan, nil
}

// ListUserPlans returns the plan binding history of one account, most recent
// first.
func (r *planRepository) ListUserPlans(ctx context.Context, userID int64) ([]models.UserPlan, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserPlans, userID)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.ListUserPlans").
			Int64("user_id", userID).
			Msg("failed to execute query for listing plan bindings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.UserPlan, 0, 50)

	for rows.Next() {
		var userPlan models.UserPlan

		scanErr := rows.Scan(
			&userPlan.ID,
			&userPlan.UserID,
			&userPlan.PlanID,
			&userPlan.StartDate,
			&userPlan.EndDate,
			&userPlan.IsActive,
			&userPlan.CreatedAt,
			&userPlan.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "planRepository.ListUserPlans").
				Int64("user_id", userID).
				Msg("failed to scan plan binding row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, userPlan)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "planRepository.ListUserPlans").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
