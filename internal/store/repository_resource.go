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

// resourceRepository is the PostgreSQL-backed implementation of
// [ResourceRepository]. It manages the "resources" table.
type resourceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResourceRepository constructs a [ResourceRepository] backed by the
// provided database connection and logger.
func NewResourceRepository(db *DB, logger *logger.Logger) ResourceRepository {
	logger.Debug().Msg("creating resource repository")
	return &resourceRepository{
		db:     db,
		logger: logger,
	}
}

// scanResource reads one full resources row in the canonical column order
// shared by every resource query. Works for both [sql.Row] and [sql.Rows].
func scanResource(row interface{ Scan(dest ...any) error }) (models.Resource, error) {
	var resource models.Resource

	err := row.Scan(
		&resource.ID,
		&resource.VenueID,
		&resource.OwnerID,
		&resource.Name,
		&resource.Description,
		&resource.Category,
		&resource.Quantity,
		&resource.PricePerUnit,
		&resource.IsActive,
		&resource.CreatedAt,
		&resource.UpdatedAt,
	)
	if err != nil {
		return models.Resource{}, err
	}

	return resource, nil
}

// CreateResource persists a new inventory item and returns the stored
// record.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrVenueNotFound] (unknown venue or
//     owner).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *resourceRepository) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createResource,
		resource.VenueID, resource.OwnerID,
		resource.Name, resource.Description, resource.Category,
		resource.Quantity, resource.PricePerUnit,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "resourceRepository.CreateResource").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Resource{}, ErrVenueNotFound
		}
		return models.Resource{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanResource(row)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.CreateResource").Msg("error: scanning error")
		return models.Resource{}, err
	}

	return saved, nil
}

// GetResourceByID retrieves one inventory item.
//
// Error handling:
//   - No matching row → [ErrResourceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *resourceRepository) GetResourceByID(ctx context.Context, resourceID int64) (models.Resource, error) {
	log := logger.FromContext(ctx)

	resource, err := scanResource(r.db.QueryRowContext(ctx, getResourceByID, resourceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resource{}, ErrResourceNotFound
		}
		log.Err(err).Str("func", "resourceRepository.GetResourceByID").Msg("error: scanning error")
		return models.Resource{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return resource, nil
}

// UpdateResource writes the mutable columns of an inventory item and returns
// the updated record. VenueID and OwnerID are immutable once set.
//
// Error handling:
//   - No matching row → [ErrResourceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *resourceRepository) UpdateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateResource,
		resource.ID,
		resource.Name, resource.Description, resource.Category,
		resource.Quantity, resource.PricePerUnit, resource.IsActive,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "resourceRepository.UpdateResource").Msg("error: row is nil")
		return models.Resource{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanResource(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resource{}, ErrResourceNotFound
		}
		log.Err(err).Str("func", "resourceRepository.UpdateResource").Msg("error: scanning error")
		return models.Resource{}, err
	}

	return updated, nil
}

// DeleteResource removes an inventory item.
//
// Error handling:
//   - No matching row → [ErrResourceNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *resourceRepository) DeleteResource(ctx context.Context, resourceID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteResource, resourceID)
	if err != nil {
		log.Err(err).Str("func", "resourceRepository.DeleteResource").Msg("error executing query for deleting resource")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// CountByOwner returns how many inventory items an owner has across all
// venues. Plan-limit checks use the count before allowing another resource.
func (r *resourceRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.db.QueryRowContext(ctx, countResourcesByOwner, ownerID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.CountByOwner").
			Int64("owner_id", ownerID).
			Msg("error executing query for counting resources")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListResources returns one page of inventory items matching the filter
// together with the total number of matches, so callers can build a
// pagination envelope.
func (r *resourceRepository) ListResources(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListResourcesQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.ListResources").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.ListResources").
			Msg("failed to execute query for listing resources")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Resource, 0, 50)

	for rows.Next() {
		item, scanErr := scanResource(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "resourceRepository.ListResources").
				Msg("failed to scan resource row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "resourceRepository.ListResources").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countResources(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countResources runs the COUNT twin of the listing query for the same
// filter.
func (r *resourceRepository) countResources(ctx context.Context, filter models.ResourceFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountResourcesQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "resourceRepository.countResources").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "resourceRepository.countResources").
			Msg("failed to execute query for counting resources")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
