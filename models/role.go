package models

// Permission actions applicable to a resource kind.
const (
	PermissionView   = "view"
	PermissionAdd    = "add"
	PermissionChange = "change"
	PermissionDelete = "delete"
)

// Permission is a single grantable capability: an action on a resource kind,
// e.g. "change" on "venue". The full set is seeded at startup as the cross
// product of actions and resource kinds.
type Permission struct {
	ID int64 `json:"id"`

	// Codename uniquely identifies the permission, formatted
	// "<action>_<resource>" (e.g. "add_booking").
	Codename string `json:"codename"`

	// Action is one of the Permission* constants.
	Action string `json:"action"`

	// Resource is the entity kind the action applies to.
	Resource string `json:"resource"`
}

// TableName returns the name of the database table associated with the
// Permission model.
func (p Permission) TableName() string {
	return "permissions"
}

// Role is a named permission group. One role is seeded per user type and
// accounts inherit the grants of the role matching their type.
type Role struct {
	ID int64 `json:"id"`

	// Name matches a UserType value.
	Name string `json:"name"`

	// Permissions is the resolved grant list. Populated on detail reads,
	// empty on listings.
	Permissions []Permission `json:"permissions,omitempty"`
}

// TableName returns the name of the database table associated with the Role
// model.
func (r Role) TableName() string {
	return "roles"
}

// Allows reports whether the role carries the permission identified by
// action and resource.
func (r Role) Allows(action, resource string) bool {
	for _, p := range r.Permissions {
		if p.Action == action && p.Resource == resource {
			return true
		}
	}
	return false
}
