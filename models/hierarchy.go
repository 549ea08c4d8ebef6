package models

import "time"

// Hierarchy places a user inside an organization reporting tree. Every
// managed account (manager, line manager, staff) has exactly one node; owners
// form the roots of their trees.
type Hierarchy struct {
	ID int64 `json:"id"`

	// UserID is the account this node describes.
	UserID int64 `json:"user_id"`

	// ParentID is the direct superior, zero for root nodes.
	ParentID int64 `json:"parent_id,omitempty"`

	// OwnerID is the root owner of the tree the node belongs to. Owners
	// reference themselves.
	OwnerID int64 `json:"owner_id"`

	// Department and Band are organizational labels carried for reporting.
	Department string `json:"department,omitempty"`
	Band       string `json:"band,omitempty"`

	// Level is the depth in the tree: 0 for roots, parent level + 1
	// otherwise. Maintained by the service, never accepted from clients.
	Level int `json:"level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with the
// Hierarchy model.
func (h Hierarchy) TableName() string {
	return "user_hierarchy"
}

// HierarchyNode is a single entry of the subordinate listing: the hierarchy
// row joined with the profile of the user it points at.
type HierarchyNode struct {
	Hierarchy
	User User `json:"user"`
}

// OwnerSummary is one entry of the master-admin owner listing: the owner
// profile plus headcounts of the accounts under them.
type OwnerSummary struct {
	Owner        User `json:"owner"`
	ManagerCount int  `json:"manager_count"`
	StaffCount   int  `json:"staff_count"`
}
