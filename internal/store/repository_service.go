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

// serviceRepository is the PostgreSQL-backed implementation of
// [ServiceRepository]. It manages the "services" table.
type serviceRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewServiceRepository constructs a [ServiceRepository] backed by the
// provided database connection and logger.
func NewServiceRepository(db *DB, logger *logger.Logger) ServiceRepository {
	logger.Debug().Msg("creating service repository")
	return &serviceRepository{
		db:     db,
		logger: logger,
	}
}

// scanService reads one full services row in the canonical column order
// shared by every service query. Works for both [sql.Row] and [sql.Rows].
func scanService(row interface{ Scan(dest ...any) error }) (models.Service, error) {
	var service models.Service

	err := row.Scan(
		&service.ID,
		&service.VenueID,
		&service.OwnerID,
		&service.Name,
		&service.Description,
		&service.Category,
		&service.Price,
		&service.DurationMinutes,
		&service.StaffIDs,
		&service.IsActive,
		&service.CreatedAt,
		&service.UpdatedAt,
	)
	if err != nil {
		return models.Service{}, err
	}

	return service, nil
}

// CreateService persists a new service offering and returns the stored
// record.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrVenueNotFound] (unknown venue or
//     owner).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *serviceRepository) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createService,
		service.VenueID, service.OwnerID,
		service.Name, service.Description, service.Category,
		service.Price, service.DurationMinutes, service.StaffIDs,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "serviceRepository.CreateService").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Service{}, ErrVenueNotFound
		}
		return models.Service{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanService(row)
	if err != nil {
		log.Err(err).Str("func", "serviceRepository.CreateService").Msg("error: scanning error")
		return models.Service{}, err
	}

	return saved, nil
}

// GetServiceByID retrieves one service offering.
//
// Error handling:
//   - No matching row → [ErrServiceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *serviceRepository) GetServiceByID(ctx context.Context, serviceID int64) (models.Service, error) {
	log := logger.FromContext(ctx)

	service, err := scanService(r.db.QueryRowContext(ctx, getServiceByID, serviceID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Service{}, ErrServiceNotFound
		}
		log.Err(err).Str("func", "serviceRepository.GetServiceByID").Msg("error: scanning error")
		return models.Service{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return service, nil
}

// UpdateService writes the mutable columns of a service and returns the
// updated record. VenueID and OwnerID are immutable once set.
//
// Error handling:
//   - No matching row → [ErrServiceNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *serviceRepository) UpdateService(ctx context.Context, service models.Service) (models.Service, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateService,
		service.ID,
		service.Name, service.Description, service.Category,
		service.Price, service.DurationMinutes, service.StaffIDs, service.IsActive,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "serviceRepository.UpdateService").Msg("error: row is nil")
		return models.Service{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanService(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Service{}, ErrServiceNotFound
		}
		log.Err(err).Str("func", "serviceRepository.UpdateService").Msg("error: scanning error")
		return models.Service{}, err
	}

	return updated, nil
}

// DeleteService removes a service offering. Bookings referencing it keep
// their record with the reference cleared.
//
// Error handling:
//   - No matching row → [ErrServiceNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *serviceRepository) DeleteService(ctx context.Context, serviceID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteService, serviceID)
	if err != nil {
		log.Err(err).Str("func", "serviceRepository.DeleteService").Msg("error executing query for deleting service")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

// CountByOwner returns how many services an owner has across all venues.
// Plan-limit checks use the count before allowing another service.
func (r *serviceRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.db.QueryRowContext(ctx, countServicesByOwner, ownerID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.CountByOwner").
			Int64("owner_id", ownerID).
			Msg("error executing query for counting services")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListServices returns one page of services matching the filter together
// with the total number of matches, so callers can build a pagination
// envelope.
func (r *serviceRepository) ListServices(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListServicesQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.ListServices").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.ListServices").
			Msg("failed to execute query for listing services")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Service, 0, 50)

	for rows.Next() {
		item, scanErr := scanService(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "serviceRepository.ListServices").
				Msg("failed to scan service row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "serviceRepository.ListServices").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countServices(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countServices runs the COUNT twin of the listing query for the same
// filter.
func (r *serviceRepository) countServices(ctx context.Context, filter models.ServiceFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountServicesQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "serviceRepository.countServices").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "serviceRepository.countServices").
			Msg("failed to execute query for counting services")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
