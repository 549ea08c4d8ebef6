package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// It maintains the seeded permission catalog: the "permissions", "roles" and
// "role_permissions" tables.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertPermission inserts or refreshes one permission definition and
// returns its identifier. Conflicts on the codename update the action and
// resource columns, keeping reseeding idempotent.
func (r *roleRepository) UpsertPermission(ctx context.Context, permission models.Permission) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, upsertPermission,
		permission.Codename, permission.Action, permission.Resource,
	).Scan(&id)
	if err != nil {
		log.Err(err).
			Str("func", "roleRepository.UpsertPermission").
			Str("codename", permission.Codename).
			Msg("error executing query for upserting permission")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

// UpsertRole inserts a role by name if absent and returns its identifier.
func (r *roleRepository) UpsertRole(ctx context.Context, name string) (int64, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, upsertRole, name).Scan(&id)
	if err != nil {
		log.Err(err).
			Str("func", "roleRepository.UpsertRole").
			Str("role", name).
			Msg("error executing query for upserting role")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, nil
}

// GrantPermission links a permission to a role. Granting an already linked
// pair is a no-op.
func (r *roleRepository) GrantPermission(ctx context.Context, roleID, permissionID int64) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, grantPermission, roleID, permissionID)
	if err != nil {
		log.Err(err).
			Str("func", "roleRepository.GrantPermission").
			Int64("role_id", roleID).
			Int64("permission_id", permissionID).
			Msg("error executing query for granting permission")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetRoleByName retrieves a role together with its resolved permission list.
//
// Error handling:
//   - No matching role → [ErrRoleNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *roleRepository) GetRoleByName(ctx context.Context, name string) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	err := r.db.QueryRowContext(ctx, getRoleByName, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}
		log.Err(err).Str("func", "roleRepository.GetRoleByName").Msg("error: scanning error")
		return models.Role{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, listRolePermissions, role.ID)
	if err != nil {
		log.Err(err).
			Str("func", "roleRepository.GetRoleByName").
			Int64("role_id", role.ID).
			Msg("failed to execute query for listing role permissions")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	role.Permissions = make([]models.Permission, 0, 50)

	for rows.Next() {
		var permission models.Permission

		scanErr := rows.Scan(&permission.ID, &permission.Codename, &permission.Action, &permission.Resource)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "roleRepository.GetRoleByName").
				Int64("role_id", role.ID).
				Msg("failed to scan permission row")
			return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		role.Permissions = append(role.Permissions, permission)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "roleRepository.GetRoleByName").
			Int64("role_id", role.ID).
			Msg("error occurred during rows iteration")
		return models.Role{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return role, nil
}

// CountRoles returns the number of seeded roles.
func (r *roleRepository) CountRoles(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countRoles).Scan(&count); err != nil {
		log.Err(err).Str("func", "roleRepository.CountRoles").Msg("error executing query for counting roles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CountPermissions returns the number of seeded permissions.
func (r *roleRepository) CountPermissions(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := r.db.QueryRowContext(ctx, countPermissions).Scan(&count); err != nil {
		log.Err(err).Str("func", "roleRepository.CountPermissions").Msg("error executing query for counting permissions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
