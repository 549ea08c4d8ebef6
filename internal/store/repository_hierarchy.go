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

// hierarchyRepository is the PostgreSQL-backed implementation of
// [HierarchyRepository]. It maintains the organization reporting tree stored
// in the "user_hierarchy" table.
type hierarchyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHierarchyRepository constructs a [HierarchyRepository] backed by the
// provided database connection and logger.
func NewHierarchyRepository(db *DB, logger *logger.Logger) HierarchyRepository {
	logger.Debug().Msg("creating hierarchy repository")
	return &hierarchyRepository{
		db:     db,
		logger: logger,
	}
}

// scanHierarchy reads one user_hierarchy row in the canonical column order.
func scanHierarchy(row interface{ Scan(dest ...any) error }) (models.Hierarchy, error) {
	var node models.Hierarchy
	var parentID sql.NullInt64

	err := row.Scan(
		&node.ID,
		&node.UserID,
		&parentID,
		&node.OwnerID,
		&node.Department,
		&node.Band,
		&node.Level,
		&node.CreatedAt,
		&node.UpdatedAt,
	)
	if err != nil {
		return models.Hierarchy{}, err
	}

	node.ParentID = parentID.Int64

	return node, nil
}

// CreateNode inserts a reporting-tree node for an account and returns the
// stored record. Each account may appear in the tree at most once.
//
// Error handling:
//   - unique_violation (23505) on user_id → [ErrHierarchyNodeExists].
//   - foreign_key_violation (23503) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *hierarchyRepository) CreateNode(ctx context.Context, node models.Hierarchy) (models.Hierarchy, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createHierarchy,
		node.UserID, nullID(node.ParentID), node.OwnerID,
		node.Department, node.Band, node.Level,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "hierarchyRepository.CreateNode").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Hierarchy{}, ErrHierarchyNodeExists
		case pgerrcode.ForeignKeyViolation:
			return models.Hierarchy{}, ErrUserNotFound
		default:
			return models.Hierarchy{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	saved, err := scanHierarchy(row)
	if err != nil {
		log.Err(err).Str("func", "hierarchyRepository.CreateNode").Msg("error: scanning error")
		return models.Hierarchy{}, err
	}

	return saved, nil
}

// GetByUserID retrieves the reporting-tree node of the given account.
//
// Error handling:
//   - No matching row → [ErrHierarchyNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *hierarchyRepository) GetByUserID(ctx context.Context, userID int64) (models.Hierarchy, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getHierarchyByUserID, userID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "hierarchyRepository.GetByUserID").Msg("error: row is nil")
		return models.Hierarchy{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	node, err := scanHierarchy(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Hierarchy{}, ErrHierarchyNotFound
		}
		log.Err(err).Str("func", "hierarchyRepository.GetByUserID").Msg("error: scanning error")
		return models.Hierarchy{}, err
	}

	return node, nil
}

// ListByOwner returns every reporting-tree node inside one owner's
// organization, ordered by depth.
func (r *hierarchyRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.Hierarchy, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listHierarchyByOwner, ownerID)
	if err != nil {
		log.Err(err).
			Str("func", "hierarchyRepository.ListByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing hierarchy nodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Hierarchy, 0, 50)

	for rows.Next() {
		node, scanErr := scanHierarchy(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "hierarchyRepository.ListByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan hierarchy row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, node)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "hierarchyRepository.ListByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// CountByUserTypes returns how many accounts of the given roles sit inside
// one owner's organization. Used by plan-limit checks before adding staff.
func (r *hierarchyRepository) CountByUserTypes(ctx context.Context, ownerID int64, types []models.UserType) (int, error) {
	log := logger.FromContext(ctx)

	typeNames := make([]string, 0, len(types))
	for _, t := range types {
		typeNames = append(typeNames, string(t))
	}

	var count int
	err := r.db.QueryRowContext(ctx, countHierarchyUsersByType, ownerID, typeNames).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "hierarchyRepository.CountByUserTypes").
			Int64("owner_id", ownerID).
			Msg("error executing query for counting accounts by role")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
