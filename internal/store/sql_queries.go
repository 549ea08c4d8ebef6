package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// psql is the shared squirrel builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// nullID adapts an optional foreign key argument: a zero identifier is
// stored as NULL.
func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

// ── users ──

const (
	createUser = `INSERT INTO users (
			email, mobile_number, emergency_contact,
			first_name, middle_name, last_name,
			gender, category, user_type, address, city,
			is_active, is_staff, date_joined,
			order_types, skills, target_percent, qc_required,
			created_by, password_hash
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, employee_id, email, mobile_number, emergency_contact,
			first_name, middle_name, last_name, gender, category, user_type,
			address, city, is_active, is_staff, date_joined, last_working_day,
			order_types, skills, target_percent, qc_required, created_by,
			password_hash, created_at, updated_at;`

	findUserByID = `SELECT id, employee_id, email, mobile_number, emergency_contact,
			first_name, middle_name, last_name, gender, category, user_type,
			address, city, is_active, is_staff, date_joined, last_working_day,
			order_types, skills, target_percent, qc_required, created_by,
			password_hash, created_at, updated_at
		FROM users
		WHERE id = $1;`

	findUserByIdentifier = `SELECT id, employee_id, email, mobile_number, emergency_contact,
			first_name, middle_name, last_name, gender, category, user_type,
			address, city, is_active, is_staff, date_joined, last_working_day,
			order_types, skills, target_percent, qc_required, created_by,
			password_hash, created_at, updated_at
		FROM users
		WHERE email = $1 OR mobile_number = $1;`

	updateUserProfile = `UPDATE users
		SET first_name = $2, middle_name = $3, last_name = $4,
			emergency_contact = $5, gender = $6, address = $7, city = $8,
			order_types = $9, skills = $10, updated_at = now()
		WHERE id = $1
		RETURNING id, employee_id, email, mobile_number, emergency_contact,
			first_name, middle_name, last_name, gender, category, user_type,
			address, city, is_active, is_staff, date_joined, last_working_day,
			order_types, skills, target_percent, qc_required, created_by,
			password_hash, created_at, updated_at;`

	updateUserPassword = `UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1;`

	setUserEmployeeID = `UPDATE users
		SET employee_id = $2, updated_at = now()
		WHERE id = $1;`

	setUserActive = `UPDATE users
		SET is_active = $2, updated_at = now()
		WHERE id = $1;`

	countUsersByEmployeeIDPrefix = `SELECT COUNT(*)
		FROM users
		WHERE employee_id LIKE $1;`
)

// userColumns lists every users column, prefixed for joined listings, in the
// canonical scan order shared by all user queries.
var userColumns = []string{
	"u.id", "u.employee_id", "u.email", "u.mobile_number", "u.emergency_contact",
	"u.first_name", "u.middle_name", "u.last_name", "u.gender", "u.category",
	"u.user_type", "u.address", "u.city", "u.is_active", "u.is_staff",
	"u.date_joined", "u.last_working_day", "u.order_types", "u.skills",
	"u.target_percent", "u.qc_required", "u.created_by", "u.password_hash",
	"u.created_at", "u.updated_at",
}

// buildListUsersQuery builds the paginated account listing for the given
// filter. An OwnerID constraint joins the hierarchy table so the listing only
// covers accounts inside that owner's organization.
func buildListUsersQuery(ctx context.Context, filter models.UserFilter, page models.PageQuery) (string, []any, error) {
	b := applyUserFilter(psql.Select(userColumns...).From("users u"), filter).
		OrderBy("u.id").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountUsersQuery builds the matching COUNT query for
// [buildListUsersQuery].
func buildCountUsersQuery(ctx context.Context, filter models.UserFilter) (string, []any, error) {
	return applyUserFilter(psql.Select("COUNT(*)").From("users u"), filter).ToSql()
}

func applyUserFilter(b sq.SelectBuilder, f models.UserFilter) sq.SelectBuilder {
	if f.OwnerID != 0 {
		b = b.Join("user_hierarchy h ON h.user_id = u.id").
			Where(sq.Eq{"h.owner_id": f.OwnerID})
	}
	if f.ParentID != 0 {
		b = b.Join("user_hierarchy hp ON hp.user_id = u.id").
			Where(sq.Eq{"hp.parent_id": f.ParentID})
	}
	if len(f.Types) > 0 {
		types := make([]string, 0, len(f.Types))
		for _, t := range f.Types {
			types = append(types, string(t))
		}
		b = b.Where(sq.Eq{"u.user_type": types})
	}
	if f.ActiveOnly {
		b = b.Where(sq.Eq{"u.is_active": true})
	}
	if f.City != "" {
		b = b.Where(sq.Eq{"u.city": f.City})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"u.first_name": pattern},
			sq.ILike{"u.last_name": pattern},
			sq.ILike{"u.email": pattern},
			sq.ILike{"u.mobile_number": pattern},
			sq.ILike{"u.employee_id": pattern},
		})
	}

	return b
}

// ── user_hierarchy ──

const (
	createHierarchy = `INSERT INTO user_hierarchy (user_id, parent_id, owner_id, department, band, level)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, parent_id, owner_id, department, band, level, created_at, updated_at;`

	getHierarchyByUserID = `SELECT id, user_id, parent_id, owner_id, department, band, level, created_at, updated_at
		FROM user_hierarchy
		WHERE user_id = $1;`

	listHierarchyByOwner = `SELECT id, user_id, parent_id, owner_id, department, band, level, created_at, updated_at
		FROM user_hierarchy
		WHERE owner_id = $1
		ORDER BY level, user_id;`

	countHierarchyUsersByType = `SELECT COUNT(*)
		FROM user_hierarchy h
		JOIN users u ON u.id = h.user_id
		WHERE h.owner_id = $1 AND u.user_type = ANY($2);`
)

// ── permissions / roles ──

const (
	upsertPermission = `INSERT INTO permissions (codename, action, resource)
		VALUES ($1, $2, $3)
		ON CONFLICT (codename) DO UPDATE SET action = EXCLUDED.action, resource = EXCLUDED.resource
		RETURNING id;`

	upsertRole = `INSERT INTO roles (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id;`

	grantPermission = `INSERT INTO role_permissions (role_id, permission_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;`

	getRoleByName = `SELECT id, name
		FROM roles
		WHERE name = $1;`

	listRolePermissions = `SELECT p.id, p.codename, p.action, p.resource
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.codename;`

	countRoles = `SELECT COUNT(*) FROM roles;`

	countPermissions = `SELECT COUNT(*) FROM permissions;`
)

// ── refresh_tokens ──

const (
	saveRefreshToken = `INSERT INTO refresh_tokens (jti, user_id, issued_at, expires_at)
		VALUES ($1, $2, $3, $4);`

	getRefreshToken = `SELECT jti, user_id, issued_at, expires_at, revoked_at
		FROM refresh_tokens
		WHERE jti = $1;`

	revokeRefreshToken = `UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE jti = $1 AND revoked_at IS NULL;`

	revokeAllUserRefreshTokens = `UPDATE refresh_tokens
		SET revoked_at = now()
		WHERE user_id = $1 AND revoked_at IS NULL;`

	deleteExpiredRefreshTokens = `DELETE FROM refresh_tokens
		WHERE expires_at < $1;`
)

// ── pricing_plans / user_plans ──

const (
	createPricingPlan = `INSERT INTO pricing_plans (
			name, plan_type, description, price, billing_cycle_days,
			max_venues, max_services, max_resources, max_staff, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, name, plan_type, description, price, billing_cycle_days,
			max_venues, max_services, max_resources, max_staff, is_active,
			created_at, updated_at;`

	getPricingPlanByID = `SELECT id, name, plan_type, description, price, billing_cycle_days,
			max_venues, max_services, max_resources, max_staff, is_active,
			created_at, updated_at
		FROM pricing_plans
		WHERE id = $1;`

	getPricingPlanByName = `SELECT id, name, plan_type, description, price, billing_cycle_days,
			max_venues, max_services, max_resources, max_staff, is_active,
			created_at, updated_at
		FROM pricing_plans
		WHERE name = $1;`

	listPricingPlans = `SELECT id, name, plan_type, description, price, billing_cycle_days,
			max_venues, max_services, max_resources, max_staff, is_active,
			created_at, updated_at
		FROM pricing_plans
		ORDER BY id;`

	updatePricingPlan = `UPDATE pricing_plans
		SET name = $2, plan_type = $3, description = $4, price = $5,
			billing_cycle_days = $6, max_venues = $7, max_services = $8,
			max_resources = $9, max_staff = $10, is_active = $11, updated_at = now()
		WHERE id = $1
		RETURNING id, name, plan_type, description, price, billing_cycle_days,
			max_venues, max_services, max_resources, max_staff, is_active,
			created_at, updated_at;`

	deactivateUserPlans = `UPDATE user_plans
		SET is_active = FALSE, updated_at = now()
		WHERE user_id = $1 AND is_active;`

	createUserPlan = `INSERT INTO user_plans (user_id, plan_id, start_date, end_date, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, plan_id, start_date, end_date, is_active, created_at, updated_at;`

	getActiveUserPlan = `SELECT up.id, up.user_id, up.plan_id, up.start_date, up.end_date,
			up.is_active, up.created_at, up.updated_at,
			p.id, p.name, p.plan_type, p.description, p.price, p.billing_cycle_days,
			p.max_venues, p.max_services, p.max_resources, p.max_staff, p.is_active,
			p.created_at, p.updated_at
		FROM user_plans up
		JOIN pricing_plans p ON p.id = up.plan_id
		WHERE up.user_id = $1 AND up.is_active
		LIMIT 1;`

	listUserPlans = `SELECT id, user_id, plan_id, start_date, end_date, is_active, created_at, updated_at
		FROM user_plans
		WHERE user_id = $1
		ORDER BY start_date DESC;`
)

// ── venues ──

const (
	createVenue = `INSERT INTO venues (
			owner_id, manager_id, staff_ids, name, description, address, city,
			pincode, contact_email, contact_phone, website, capacity, rooms,
			floors, price_per_hour, amenities, tags, seating, parking
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, owner_id, manager_id, staff_ids, name, description, address,
			city, pincode, contact_email, contact_phone, website, capacity, rooms,
			floors, price_per_hour, amenities, tags, seating, parking, is_active,
			deleted_at, created_at, updated_at;`

	getVenueByID = `SELECT id, owner_id, manager_id, staff_ids, name, description, address,
			city, pincode, contact_email, contact_phone, website, capacity, rooms,
			floors, price_per_hour, amenities, tags, seating, parking, is_active,
			deleted_at, created_at, updated_at
		FROM venues
		WHERE id = $1;`

	updateVenue = `UPDATE venues
		SET manager_id = $2, staff_ids = $3, name = $4, description = $5,
			address = $6, city = $7, pincode = $8, contact_email = $9,
			contact_phone = $10, website = $11, capacity = $12, rooms = $13,
			floors = $14, price_per_hour = $15, amenities = $16, tags = $17,
			seating = $18, parking = $19, is_active = $20, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, manager_id, staff_ids, name, description, address,
			city, pincode, contact_email, contact_phone, website, capacity, rooms,
			floors, price_per_hour, amenities, tags, seating, parking, is_active,
			deleted_at, created_at, updated_at;`

	softDeleteVenue = `UPDATE venues
		SET is_active = FALSE, deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL;`

	countVenuesByOwner = `SELECT COUNT(*)
		FROM venues
		WHERE owner_id = $1 AND deleted_at IS NULL;`
)

var venueColumns = []string{
	"id", "owner_id", "manager_id", "staff_ids", "name", "description",
	"address", "city", "pincode", "contact_email", "contact_phone", "website",
	"capacity", "rooms", "floors", "price_per_hour", "amenities", "tags",
	"seating", "parking", "is_active", "deleted_at", "created_at", "updated_at",
}

// buildListVenuesQuery builds the paginated venue listing for the given
// filter. Soft-deleted venues are excluded unless the filter opts in.
func buildListVenuesQuery(ctx context.Context, filter models.VenueFilter, page models.PageQuery) (string, []any, error) {
	b := applyVenueFilter(psql.Select(venueColumns...).From("venues"), filter).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountVenuesQuery builds the matching COUNT query for
// [buildListVenuesQuery].
func buildCountVenuesQuery(ctx context.Context, filter models.VenueFilter) (string, []any, error) {
	return applyVenueFilter(psql.Select("COUNT(*)").From("venues"), filter).ToSql()
}

func applyVenueFilter(b sq.SelectBuilder, f models.VenueFilter) sq.SelectBuilder {
	if !f.IncludeDeleted {
		b = b.Where(sq.Eq{"deleted_at": nil})
	}
	if f.OwnerID != 0 {
		b = b.Where(sq.Eq{"owner_id": f.OwnerID})
	}
	if f.ManagerID != 0 {
		b = b.Where(sq.Eq{"manager_id": f.ManagerID})
	}
	if f.City != "" {
		b = b.Where(sq.Eq{"city": f.City})
	}
	if f.MinCapacity > 0 {
		b = b.Where(sq.GtOrEq{"capacity": f.MinCapacity})
	}
	if f.MaxCapacity > 0 {
		b = b.Where(sq.LtOrEq{"capacity": f.MaxCapacity})
	}
	if f.MinPrice != nil {
		b = b.Where(sq.GtOrEq{"price_per_hour": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(sq.LtOrEq{"price_per_hour": *f.MaxPrice})
	}
	if len(f.Tags) > 0 {
		// JSONB containment: every requested tag must be present
		b = b.Where(sq.Expr("tags @> ?", models.StringList(f.Tags)))
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	return b
}

// ── services ──

const (
	createService = `INSERT INTO services (
			venue_id, owner_id, name, description, category, price,
			duration_minutes, staff_ids
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, venue_id, owner_id, name, description, category, price,
			duration_minutes, staff_ids, is_active, created_at, updated_at;`

	getServiceByID = `SELECT id, venue_id, owner_id, name, description, category, price,
			duration_minutes, staff_ids, is_active, created_at, updated_at
		FROM services
		WHERE id = $1;`

	updateService = `UPDATE services
		SET name = $2, description = $3, category = $4, price = $5,
			duration_minutes = $6, staff_ids = $7, is_active = $8, updated_at = now()
		WHERE id = $1
		RETURNING id, venue_id, owner_id, name, description, category, price,
			duration_minutes, staff_ids, is_active, created_at, updated_at;`

	deleteService = `DELETE FROM services
		WHERE id = $1;`

	countServicesByOwner = `SELECT COUNT(*)
		FROM services
		WHERE owner_id = $1;`
)

var serviceColumns = []string{
	"id", "venue_id", "owner_id", "name", "description", "category", "price",
	"duration_minutes", "staff_ids", "is_active", "created_at", "updated_at",
}

// buildListServicesQuery builds the paginated service listing for the given
// filter.
func buildListServicesQuery(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) (string, []any, error) {
	b := applyServiceFilter(psql.Select(serviceColumns...).From("services"), filter).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountServicesQuery builds the matching COUNT query for
// [buildListServicesQuery].
func buildCountServicesQuery(ctx context.Context, filter models.ServiceFilter) (string, []any, error) {
	return applyServiceFilter(psql.Select("COUNT(*)").From("services"), filter).ToSql()
}

func applyServiceFilter(b sq.SelectBuilder, f models.ServiceFilter) sq.SelectBuilder {
	if f.VenueID != 0 {
		b = b.Where(sq.Eq{"venue_id": f.VenueID})
	}
	if f.OwnerID != 0 {
		b = b.Where(sq.Eq{"owner_id": f.OwnerID})
	}
	if f.Category != "" {
		b = b.Where(sq.Eq{"category": f.Category})
	}
	if f.MinPrice != nil {
		b = b.Where(sq.GtOrEq{"price": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(sq.LtOrEq{"price": *f.MaxPrice})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	return b
}

// ── resources ──

const (
	createResource = `INSERT INTO resources (
			venue_id, owner_id, name, description, category, quantity, price_per_unit
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, venue_id, owner_id, name, description, category, quantity,
			price_per_unit, is_active, created_at, updated_at;`

	getResourceByID = `SELECT id, venue_id, owner_id, name, description, category, quantity,
			price_per_unit, is_active, created_at, updated_at
		FROM resources
		WHERE id = $1;`

	updateResource = `UPDATE resources
		SET name = $2, description = $3, category = $4, quantity = $5,
			price_per_unit = $6, is_active = $7, updated_at = now()
		WHERE id = $1
		RETURNING id, venue_id, owner_id, name, description, category, quantity,
			price_per_unit, is_active, created_at, updated_at;`

	deleteResource = `DELETE FROM resources
		WHERE id = $1;`

	countResourcesByOwner = `SELECT COUNT(*)
		FROM resources
		WHERE owner_id = $1;`
)

var resourceColumns = []string{
	"id", "venue_id", "owner_id", "name", "description", "category",
	"quantity", "price_per_unit", "is_active", "created_at", "updated_at",
}

// buildListResourcesQuery builds the paginated resource listing for the
// given filter.
func buildListResourcesQuery(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) (string, []any, error) {
	b := applyResourceFilter(psql.Select(resourceColumns...).From("resources"), filter).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountResourcesQuery builds the matching COUNT query for
// [buildListResourcesQuery].
func buildCountResourcesQuery(ctx context.Context, filter models.ResourceFilter) (string, []any, error) {
	return applyResourceFilter(psql.Select("COUNT(*)").From("resources"), filter).ToSql()
}

func applyResourceFilter(b sq.SelectBuilder, f models.ResourceFilter) sq.SelectBuilder {
	if f.VenueID != 0 {
		b = b.Where(sq.Eq{"venue_id": f.VenueID})
	}
	if f.OwnerID != 0 {
		b = b.Where(sq.Eq{"owner_id": f.OwnerID})
	}
	if f.Category != "" {
		b = b.Where(sq.Eq{"category": f.Category})
	}
	if f.MinQuantity > 0 {
		b = b.Where(sq.GtOrEq{"quantity": f.MinQuantity})
	}
	if f.MinPrice != nil {
		b = b.Where(sq.GtOrEq{"price_per_unit": *f.MinPrice})
	}
	if f.MaxPrice != nil {
		b = b.Where(sq.LtOrEq{"price_per_unit": *f.MaxPrice})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	return b
}

// ── photos ──

const (
	savePhoto = `INSERT INTO photos (
			entity_type, entity_id, storage_key, url, caption, is_primary, uploaded_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, entity_type, entity_id, storage_key, url, caption,
			is_primary, uploaded_by, uploaded_at;`

	getPhotoByID = `SELECT id, entity_type, entity_id, storage_key, url, caption,
			is_primary, uploaded_by, uploaded_at
		FROM photos
		WHERE id = $1;`

	listPhotosByEntity = `SELECT id, entity_type, entity_id, storage_key, url, caption,
			is_primary, uploaded_by, uploaded_at
		FROM photos
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY is_primary DESC, uploaded_at;`

	demotePrimaryPhotos = `UPDATE photos
		SET is_primary = FALSE
		WHERE entity_type = $1 AND entity_id = $2 AND is_primary;`

	deletePhoto = `DELETE FROM photos
		WHERE id = $1;`
)

// ── patients ──

const (
	createPatient = `INSERT INTO patients (
			customer_id, venue_id, service_id, first_name, last_name, gender,
			age, mobile_number, alternate_number, email, address, city,
			aadhar_number, pan_number, occupation, medical_history,
			appointment_at, registration_fee, advance_amount, payment_mode, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id, customer_id, venue_id, service_id, first_name, last_name,
			gender, age, mobile_number, alternate_number, email, address, city,
			aadhar_number, pan_number, occupation, medical_history,
			appointment_at, registration_fee, advance_amount, payment_mode,
			notes, created_at, updated_at;`

	getPatientByID = `SELECT id, customer_id, venue_id, service_id, first_name, last_name,
			gender, age, mobile_number, alternate_number, email, address, city,
			aadhar_number, pan_number, occupation, medical_history,
			appointment_at, registration_fee, advance_amount, payment_mode,
			notes, created_at, updated_at
		FROM patients
		WHERE id = $1;`

	updatePatient = `UPDATE patients
		SET service_id = $2, first_name = $3, last_name = $4, gender = $5,
			age = $6, mobile_number = $7, alternate_number = $8, email = $9,
			address = $10, city = $11, aadhar_number = $12, pan_number = $13,
			occupation = $14, medical_history = $15, appointment_at = $16,
			registration_fee = $17, advance_amount = $18, payment_mode = $19,
			notes = $20, updated_at = now()
		WHERE id = $1
		RETURNING id, customer_id, venue_id, service_id, first_name, last_name,
			gender, age, mobile_number, alternate_number, email, address, city,
			aadhar_number, pan_number, occupation, medical_history,
			appointment_at, registration_fee, advance_amount, payment_mode,
			notes, created_at, updated_at;`
)

var patientColumns = []string{
	"id", "customer_id", "venue_id", "service_id", "first_name", "last_name",
	"gender", "age", "mobile_number", "alternate_number", "email", "address",
	"city", "aadhar_number", "pan_number", "occupation", "medical_history",
	"appointment_at", "registration_fee", "advance_amount", "payment_mode",
	"notes", "created_at", "updated_at",
}

// buildListPatientsQuery builds the paginated booking listing for the given
// filter.
func buildListPatientsQuery(ctx context.Context, filter models.PatientFilter, page models.PageQuery) (string, []any, error) {
	b := applyPatientFilter(psql.Select(patientColumns...).From("patients"), filter).
		OrderBy("appointment_at DESC", "id DESC").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountPatientsQuery builds the matching COUNT query for
// [buildListPatientsQuery].
func buildCountPatientsQuery(ctx context.Context, filter models.PatientFilter) (string, []any, error) {
	return applyPatientFilter(psql.Select("COUNT(*)").From("patients"), filter).ToSql()
}

func applyPatientFilter(b sq.SelectBuilder, f models.PatientFilter) sq.SelectBuilder {
	if f.CustomerID != 0 {
		b = b.Where(sq.Eq{"customer_id": f.CustomerID})
	}
	if f.VenueID != 0 {
		b = b.Where(sq.Eq{"venue_id": f.VenueID})
	}
	if f.City != "" {
		b = b.Where(sq.Eq{"city": f.City})
	}
	if !f.From.IsZero() {
		b = b.Where(sq.GtOrEq{"appointment_at": f.From})
	}
	if !f.To.IsZero() {
		b = b.Where(sq.LtOrEq{"appointment_at": f.To})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
			sq.ILike{"mobile_number": pattern},
		})
	}

	return b
}

// ── attendance ──

const (
	upsertAttendanceStatus = `INSERT INTO attendance_statuses (code, label, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (code) DO UPDATE SET label = EXCLUDED.label, is_active = EXCLUDED.is_active
		RETURNING id;`

	listAttendanceStatuses = `SELECT id, code, label, is_active
		FROM attendance_statuses
		ORDER BY id;`

	getAttendanceStatusByCode = `SELECT id, code, label, is_active
		FROM attendance_statuses
		WHERE code = $1;`

	countAttendanceStatuses = `SELECT COUNT(*) FROM attendance_statuses;`

	upsertAttendance = `INSERT INTO attendance (user_id, date, status_id, marked_by, reason)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO UPDATE
			SET status_id = EXCLUDED.status_id, marked_by = EXCLUDED.marked_by,
				reason = EXCLUDED.reason, updated_at = now()
		RETURNING id, user_id, date, status_id, marked_by, reason, created_at, updated_at;`

	attendanceSummaryByCode = `SELECT s.code, COUNT(*)
		FROM attendance a
		JOIN attendance_statuses s ON s.id = a.status_id
		WHERE a.user_id = $1 AND a.date >= $2 AND a.date <= $3
		GROUP BY s.code;`

	listUnmarkedUserIDs = `SELECT u.id
		FROM users u
		WHERE u.is_active
			AND u.user_type = ANY($1)
			AND NOT EXISTS (
				SELECT 1 FROM attendance a WHERE a.user_id = u.id AND a.date = $2
			)
		ORDER BY u.id;`
)

// attendanceColumns lists the attendance columns joined with the status code,
// in the scan order shared by the listing queries.
var attendanceColumns = []string{
	"a.id", "a.user_id", "a.date", "a.status_id", "s.code",
	"a.marked_by", "a.reason", "a.created_at", "a.updated_at",
}

// buildListAttendanceQuery builds the paginated attendance listing for the
// given filter. An OwnerID constraint joins the hierarchy table so the
// listing only covers one organization.
func buildListAttendanceQuery(ctx context.Context, filter models.AttendanceFilter, page models.PageQuery) (string, []any, error) {
	b := applyAttendanceFilter(
		psql.Select(attendanceColumns...).
			From("attendance a").
			Join("attendance_statuses s ON s.id = a.status_id"),
		filter,
	).
		OrderBy("a.date DESC", "a.user_id").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountAttendanceQuery builds the matching COUNT query for
// [buildListAttendanceQuery].
func buildCountAttendanceQuery(ctx context.Context, filter models.AttendanceFilter) (string, []any, error) {
	return applyAttendanceFilter(
		psql.Select("COUNT(*)").
			From("attendance a").
			Join("attendance_statuses s ON s.id = a.status_id"),
		filter,
	).ToSql()
}

func applyAttendanceFilter(b sq.SelectBuilder, f models.AttendanceFilter) sq.SelectBuilder {
	if f.OwnerID != 0 {
		b = b.Join("user_hierarchy h ON h.user_id = a.user_id").
			Where(sq.Eq{"h.owner_id": f.OwnerID})
	}
	if f.UserID != 0 {
		b = b.Where(sq.Eq{"a.user_id": f.UserID})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"s.code": f.Status})
	}
	if !f.From.IsZero() {
		b = b.Where(sq.GtOrEq{"a.date": f.From})
	}
	if !f.To.IsZero() {
		b = b.Where(sq.LtOrEq{"a.date": f.To})
	}

	return b
}

// ── salary_structures / payroll_payments ──

const (
	deactivateSalaryStructures = `UPDATE salary_structures
		SET is_active = FALSE, updated_at = now()
		WHERE user_id = $1 AND is_active;`

	createSalaryStructure = `INSERT INTO salary_structures (user_id, salary_type, base_amount, advance_amount, effective_from)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, salary_type, base_amount, advance_amount,
			effective_from, is_active, created_at, updated_at;`

	getActiveSalaryStructure = `SELECT id, user_id, salary_type, base_amount, advance_amount,
			effective_from, is_active, created_at, updated_at
		FROM salary_structures
		WHERE user_id = $1 AND is_active
		LIMIT 1;`

	listSalaryStructures = `SELECT id, user_id, salary_type, base_amount, advance_amount,
			effective_from, is_active, created_at, updated_at
		FROM salary_structures
		WHERE user_id = $1
		ORDER BY effective_from DESC;`

	createPayrollPayment = `INSERT INTO payroll_payments (owner_id, user_id, salary_month, payable_days, amount, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, user_id, salary_month, payable_days, amount,
			status, paid_at, created_at, updated_at;`

	getPayrollPaymentByID = `SELECT id, owner_id, user_id, salary_month, payable_days, amount,
			status, paid_at, created_at, updated_at
		FROM payroll_payments
		WHERE id = $1;`

	updatePayrollPaymentStatus = `UPDATE payroll_payments
		SET status = $2, paid_at = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, user_id, salary_month, payable_days, amount,
			status, paid_at, created_at, updated_at;`
)

var paymentColumns = []string{
	"id", "owner_id", "user_id", "salary_month", "payable_days", "amount",
	"status", "paid_at", "created_at", "updated_at",
}

// buildListPaymentsQuery builds the paginated payroll payment listing for
// the given filter.
func buildListPaymentsQuery(ctx context.Context, filter models.PaymentFilter, page models.PageQuery) (string, []any, error) {
	b := applyPaymentFilter(psql.Select(paymentColumns...).From("payroll_payments"), filter).
		OrderBy("salary_month DESC", "id DESC").
		Limit(uint64(page.PageSize)).
		Offset(uint64(page.Offset()))

	return b.ToSql()
}

// buildCountPaymentsQuery builds the matching COUNT query for
// [buildListPaymentsQuery].
func buildCountPaymentsQuery(ctx context.Context, filter models.PaymentFilter) (string, []any, error) {
	return applyPaymentFilter(psql.Select("COUNT(*)").From("payroll_payments"), filter).ToSql()
}

func applyPaymentFilter(b sq.SelectBuilder, f models.PaymentFilter) sq.SelectBuilder {
	if f.OwnerID != 0 {
		b = b.Where(sq.Eq{"owner_id": f.OwnerID})
	}
	if f.UserID != 0 {
		b = b.Where(sq.Eq{"user_id": f.UserID})
	}
	if f.Status != "" {
		b = b.Where(sq.Eq{"status": f.Status})
	}
	if !f.Month.IsZero() {
		b = b.Where(sq.Eq{"salary_month": f.Month})
	}

	return b
}
