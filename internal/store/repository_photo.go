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

// photoRepository is the PostgreSQL-backed implementation of
// [PhotoRepository]. It manages the "photos" table, which serves venues,
// services and resources through a generic entity reference.
type photoRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPhotoRepository constructs a [PhotoRepository] backed by the provided
// database connection and logger.
func NewPhotoRepository(db *DB, logger *logger.Logger) PhotoRepository {
	logger.Debug().Msg("creating photo repository")
	return &photoRepository{
		db:     db,
		logger: logger,
	}
}

// scanPhoto reads one full photos row in the canonical column order shared
// by every photo query. Works for both [sql.Row] and [sql.Rows].
func scanPhoto(row interface{ Scan(dest ...any) error }) (models.Photo, error) {
	var photo models.Photo

	err := row.Scan(
		&photo.ID,
		&photo.EntityType,
		&photo.EntityID,
		&photo.StorageKey,
		&photo.URL,
		&photo.Caption,
		&photo.IsPrimary,
		&photo.UploadedBy,
		&photo.UploadedAt,
	)
	if err != nil {
		return models.Photo{}, err
	}

	return photo, nil
}

// SavePhoto persists a photo attachment and returns the stored record.
// Callers demote the previous primary first when attaching a new cover
// photo.
//
// Error handling:
//   - foreign_key_violation (23503) → [ErrUserNotFound] (unknown uploader).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *photoRepository) SavePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, savePhoto,
		photo.EntityType, photo.EntityID, photo.StorageKey, photo.URL,
		photo.Caption, photo.IsPrimary, photo.UploadedBy,
	)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "photoRepository.SavePhoto").Msg("error: row is nil")

		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Photo{}, ErrUserNotFound
		}
		return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	saved, err := scanPhoto(row)
	if err != nil {
		log.Err(err).Str("func", "photoRepository.SavePhoto").Msg("error: scanning error")
		return models.Photo{}, err
	}

	return saved, nil
}

// GetPhotoByID retrieves one photo attachment.
//
// Error handling:
//   - No matching row → [ErrPhotoNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *photoRepository) GetPhotoByID(ctx context.Context, photoID int64) (models.Photo, error) {
	log := logger.FromContext(ctx)

	photo, err := scanPhoto(r.db.QueryRowContext(ctx, getPhotoByID, photoID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Photo{}, ErrPhotoNotFound
		}
		log.Err(err).Str("func", "photoRepository.GetPhotoByID").Msg("error: scanning error")
		return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return photo, nil
}

// ListByEntity returns every photo attached to one entity, primary first,
// then oldest upload first.
func (r *photoRepository) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPhotosByEntity, entityType, entityID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.ListByEntity").
			Str("entity_type", entityType).
			Int64("entity_id", entityID).
			Msg("failed to execute query for listing photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Photo, 0, 50)

	for rows.Next() {
		photo, scanErr := scanPhoto(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "photoRepository.ListByEntity").
				Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "photoRepository.ListByEntity").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// DemotePrimary clears the primary flag on every photo of one entity.
// Affecting zero rows is not an error: the entity may have no cover photo
// yet.
//
// Error handling:
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *photoRepository) DemotePrimary(ctx context.Context, entityType string, entityID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, demotePrimaryPhotos, entityType, entityID)
	if err != nil {
		log.Err(err).
			Str("func", "photoRepository.DemotePrimary").
			Str("entity_type", entityType).
			Int64("entity_id", entityID).
			Msg("error executing query for demoting primary photos")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeletePhoto removes a photo attachment record. The stored object is the
// caller's to clean up.
//
// Error handling:
//   - No matching row → [ErrPhotoNotFound].
//   - Execution failure → wrapped with [ErrExecutingStatement].
func (r *photoRepository) DeletePhoto(ctx context.Context, photoID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePhoto, photoID)
	if err != nil {
		log.Err(err).Str("func", "photoRepository.DeletePhoto").Msg("error executing query for deleting photo")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}
