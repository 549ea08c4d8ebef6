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

// venueRepository is the PostgreSQL-backed implementation of
// [VenueRepository]. It manages the "venues" table.
type venueRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVenueRepository constructs a [VenueRepository] backed by the provided
// database connection and logger.
func NewVenueRepository(db *DB, logger *logger.Logger) VenueRepository {
	logger.Debug().Msg("creating venue repository")
	return &venueRepository{
		db:     db,
		logger: logger,
	}
}

// scanVenue reads one full venues row in the canonical column order shared by
// every venue query. Works for both [sql.Row] and [sql.Rows].
func scanVenue(row interface{ Scan(dest ...any) error }) (models.Venue, error) {
	var venue models.Venue
	var managerID sql.NullInt64

	err := row.Scan(
		&venue.ID,
		&venue.OwnerID,
		&managerID,
		&venue.StaffIDs,
		&venue.Name,
		&venue.Description,
		&venue.Address,
		&venue.City,
		&venue.Pincode,
		&venue.ContactEmail,
		&venue.ContactPhone,
		&venue.Website,
		&venue.Capacity,
		&venue.Rooms,
		&venue.Floors,
		&venue.PricePerHour,
		&venue.Amenities,
		&venue.Tags,
		&venue.Seating,
		&venue.Parking,
		&venue.IsActive,
		&venue.DeletedAt,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		return models.Venue{}, err
	}

	venue.ManagerID = managerID.Int64

	return venue, nil
}

// CreateVenue persists a new venue and returns the fully populated
// [models.Venue] with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUserNotFound] (unknown owner or
//     manager account).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *venueRepository) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createVenue,
		venue.OwnerID, nullID(venue.ManagerID), venue.StaffIDs,
		venue.Name, venue.Description, venue.Address, venue.City, venue.Pincode,
		venue.ContactEmail, venue.ContactPhone, venue.Website,
		venue.Capacity, venue.Rooms, venue.Floors, venue.PricePerHour,
		venue.Amenities, venue.Tags, venue.Seating, venue.Parking,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "venueRepository.CreateVenue").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Venue{}, ErrUserNotFound
		}
		return models.Venue{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanVenue(row)
	if err != nil {
		log.Err(err).Str("func", "venueRepository.CreateVenue").Msg("error: scanning error")
		return models.Venue{}, err
	}

	return saved, nil
}

// GetVenueByID retrieves one venue, soft-deleted or not. Callers that must
// hide deleted venues check [models.Venue.Deleted] themselves.
//
// Error handling:
//   - No matching row → [ErrVenueNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *venueRepository) GetVenueByID(ctx context.Context, venueID int64) (models.Venue, error) {
	log := logger.FromContext(ctx)

	venue, err := scanVenue(r.db.QueryRowContext(ctx, getVenueByID, venueID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, ErrVenueNotFound
		}
		log.Err(err).Str("func", "venueRepository.GetVenueByID").Msg("error: scanning error")
		return models.Venue{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return venue, nil
}

// UpdateVenue writes the mutable columns of a venue and returns the updated
// record. OwnerID is immutable once set.
//
// Error handling:
//   - No matching row → [ErrVenueNotFound].
//   - foreign_key_violation (23503) → [ErrUserNotFound] (unknown manager).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *venueRepository) UpdateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateVenue,
		venue.ID,
		nullID(venue.ManagerID), venue.StaffIDs,
		venue.Name, venue.Description, venue.Address, venue.City, venue.Pincode,
		venue.ContactEmail, venue.ContactPhone, venue.Website,
		venue.Capacity, venue.Rooms, venue.Floors, venue.PricePerHour,
		venue.Amenities, venue.Tags, venue.Seating, venue.Parking,
		venue.IsActive,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "venueRepository.UpdateVenue").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Venue{}, ErrUserNotFound
		}
		return models.Venue{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	updated, err := scanVenue(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Venue{}, ErrVenueNotFound
		}
		log.Err(err).Str("func", "venueRepository.UpdateVenue").Msg("error: scanning error")
		return models.Venue{}, err
	}

	return updated, nil
}

// SoftDeleteVenue marks a venue inactive and stamps deleted_at. Repeating the
// call on an already deleted venue reports not found.
//
// Error handling:
//   - No matching live row → [ErrVenueNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *venueRepository) SoftDeleteVenue(ctx context.Context, venueID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, softDeleteVenue, venueID)
	if err != nil {
		log.Err(err).Str("func", "venueRepository.SoftDeleteVenue").Msg("error executing query for deleting venue")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrVenueNotFound
	}

	return nil
}

// CountByOwner returns how many live venues an owner has. Plan-limit checks
// use the count before allowing another venue.
func (r *venueRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	err := r.db.QueryRowContext(ctx, countVenuesByOwner, ownerID).Scan(&count)
	if err != nil {
		log.Err(err).
			Str("func", "venueRepository.CountByOwner").
			Int64("owner_id", ownerID).
			Msg("error executing query for counting venues")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListVenues returns one page of venues matching the filter together with the
// total number of matches, so callers can build a pagination envelope.
func (r *venueRepository) ListVenues(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVenuesQuery(ctx, filter, page)
	if err != nil {
		log.Err(err).
			Str("func", "venueRepository.ListVenues").
			Msg("failed to create query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "venueRepository.ListVenues").
			Msg("failed to execute query for listing venues")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Venue, 0, 50)

	for rows.Next() {
		item, scanErr := scanVenue(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "venueRepository.ListVenues").
				Msg("failed to scan venue row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "venueRepository.ListVenues").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	total, err := r.countVenues(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return results, total, nil
}

// countVenues runs the COUNT twin of the listing query for the same filter.
func (r *venueRepository) countVenues(ctx context.Context, filter models.VenueFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountVenuesQuery(ctx, filter)
	if err != nil {
		log.Err(err).
			Str("func", "venueRepository.countVenues").
			Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "venueRepository.countVenues").
			Msg("failed to execute query for counting venues")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
