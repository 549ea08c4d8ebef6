package models

import "time"

// Photo entity kinds a photo can be attached to.
const (
	PhotoEntityVenue    = "venue"
	PhotoEntityService  = "service"
	PhotoEntityResource = "resource"
)

// Photo is an uploaded image attached to a catalog entity. The generic
// EntityType/EntityID pair lets one table serve venues, services and
// resources alike.
type Photo struct {
	ID int64 `json:"id"`

	// EntityType is one of the PhotoEntity* constants.
	EntityType string `json:"entity_type"`

	// EntityID is the attached entity's identifier.
	EntityID int64 `json:"entity_id"`

	// StorageKey is the backend-relative object key the bytes live under.
	// Never serialized; clients consume URL.
	StorageKey string `json:"-"`

	// URL is the public address the stored image is served from.
	URL string `json:"url"`

	Caption string `json:"caption,omitempty"`

	// IsPrimary marks the cover photo of the entity. At most one per
	// entity; attaching a new primary demotes the previous one.
	IsPrimary bool `json:"is_primary"`

	// UploadedBy is the account that performed the upload.
	UploadedBy int64 `json:"uploaded_by"`

	UploadedAt time.Time `json:"uploaded_at"`
}

// TableName returns the name of the database table associated with the Photo
// model.
func (p Photo) TableName() string {
	return "photos"
}

// ValidPhotoEntity reports whether kind is an attachable entity type.
func ValidPhotoEntity(kind string) bool {
	return kind == PhotoEntityVenue || kind == PhotoEntityService || kind == PhotoEntityResource
}
