package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pankajshindecodes-stack/Eventroop/internal/adapter"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/store"
	"github.com/pankajshindecodes-stack/Eventroop/models"
)

// catalogService is the concrete implementation of CatalogService. It manages
// venues with their services and rentable resources, enforces the owner's
// plan limits on creation, and attaches photos through the media store.
type catalogService struct {
	venueRepository    store.VenueRepository
	serviceRepository  store.ServiceRepository
	resourceRepository store.ResourceRepository
	photoRepository    store.PhotoRepository
	planRepository     store.PlanRepository

	// media stores uploaded photo bytes; the repository keeps only the key
	// and public URL.
	media adapter.MediaStore

	logger *logger.Logger
}

// NewCatalogService constructs a CatalogService over the catalog repositories
// and the media store.
func NewCatalogService(storages *store.Storages, media adapter.MediaStore, logger *logger.Logger) CatalogService {
	return &catalogService{
		venueRepository:    storages.VenueRepository,
		serviceRepository:  storages.ServiceRepository,
		resourceRepository: storages.ResourceRepository,
		photoRepository:    storages.PhotoRepository,
		planRepository:     storages.PlanRepository,
		media:              media,
		logger:             logger,
	}
}

// ── Venues ──────────────────────────────────────────────────────────────────

// CreateVenue persists a new venue for its owner. Creation is capped by the
// MaxVenues limit of the owner's effective plan.
func (c *catalogService) CreateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	log := logger.FromContext(ctx)

	if venue.OwnerID <= 0 || venue.Name == "" || venue.Address == "" || venue.City == "" {
		log.Error().Str("name", venue.Name).Msg("invalid venue data provided")
		return models.Venue{}, ErrInvalidDataProvided
	}

	plan, err := effectivePlan(ctx, c.planRepository, venue.OwnerID)
	if err != nil {
		return models.Venue{}, err
	}
	if plan.MaxVenues > 0 {
		count, err := c.venueRepository.CountByOwner(ctx, venue.OwnerID)
		if err != nil {
			log.Err(err).Int64("owner_id", venue.OwnerID).Msg("venue count failed")
			return models.Venue{}, fmt.Errorf("venue count failed: %w", err)
		}
		if count >= plan.MaxVenues {
			log.Warn().
				Int64("owner_id", venue.OwnerID).
				Int("count", count).
				Int("max_venues", plan.MaxVenues).
				Msg("plan venue limit reached")
			return models.Venue{}, ErrPlanLimitReached
		}
	}

	venue.IsActive = true

	created, err := c.venueRepository.CreateVenue(ctx, venue)
	if err != nil {
		log.Err(err).Str("name", venue.Name).Msg("venue creation failed")
		return models.Venue{}, fmt.Errorf("venue creation failed: %w", err)
	}

	return created, nil
}

// GetVenue returns one venue by identifier, soft-deleted ones included.
func (c *catalogService) GetVenue(ctx context.Context, venueID int64) (models.Venue, error) {
	log := logger.FromContext(ctx)

	venue, err := c.venueRepository.GetVenueByID(ctx, venueID)
	if err != nil {
		log.Err(err).Int64("venue_id", venueID).Msg("venue lookup failed")
		return models.Venue{}, fmt.Errorf("venue lookup failed: %w", err)
	}

	return venue, nil
}

// UpdateVenue stores the new state of an existing venue.
func (c *catalogService) UpdateVenue(ctx context.Context, venue models.Venue) (models.Venue, error) {
	log := logger.FromContext(ctx)

	if venue.ID <= 0 || venue.Name == "" {
		return models.Venue{}, ErrInvalidDataProvided
	}

	updated, err := c.venueRepository.UpdateVenue(ctx, venue)
	if err != nil {
		log.Err(err).Int64("venue_id", venue.ID).Msg("venue update failed")
		return models.Venue{}, fmt.Errorf("venue update failed: %w", err)
	}

	return updated, nil
}

// DeleteVenue soft-deletes a venue: the record survives for history but
// disappears from default listings.
func (c *catalogService) DeleteVenue(ctx context.Context, venueID int64) error {
	log := logger.FromContext(ctx)

	if err := c.venueRepository.SoftDeleteVenue(ctx, venueID); err != nil {
		log.Err(err).Int64("venue_id", venueID).Msg("venue delete failed")
		return fmt.Errorf("venue delete failed: %w", err)
	}

	return nil
}

// ListVenues returns one page of venues matching the filter.
func (c *catalogService) ListVenues(ctx context.Context, filter models.VenueFilter, page models.PageQuery) ([]models.Venue, int64, error) {
	log := logger.FromContext(ctx)

	venues, total, err := c.venueRepository.ListVenues(ctx, filter, page)
	if err != nil {
		log.Err(err).Msg("venue listing failed")
		return nil, 0, fmt.Errorf("venue listing failed: %w", err)
	}

	return venues, total, nil
}

// ── Services ────────────────────────────────────────────────────────────────

// CreateService persists a service offering on a venue. The owner is always
// taken from the venue, never from the payload, and creation is capped by the
// MaxServices limit of the owner's effective plan.
func (c *catalogService) CreateService(ctx context.Context, service models.Service) (models.Service, error) {
	log := logger.FromContext(ctx)

	if service.VenueID <= 0 || service.Name == "" || service.Price.IsNegative() {
		log.Error().Str("name", service.Name).Msg("invalid service data provided")
		return models.Service{}, ErrInvalidDataProvided
	}

	venue, err := c.venueRepository.GetVenueByID(ctx, service.VenueID)
	if err != nil {
		log.Err(err).Int64("venue_id", service.VenueID).Msg("venue lookup failed")
		return models.Service{}, fmt.Errorf("venue lookup failed: %w", err)
	}
	if venue.Deleted() {
		return models.Service{}, fmt.Errorf("venue lookup failed: %w", store.ErrVenueNotFound)
	}
	service.OwnerID = venue.OwnerID

	plan, err := effectivePlan(ctx, c.planRepository, venue.OwnerID)
	if err != nil {
		return models.Service{}, err
	}
	if plan.MaxServices > 0 {
		count, err := c.serviceRepository.CountByOwner(ctx, venue.OwnerID)
		if err != nil {
			log.Err(err).Int64("owner_id", venue.OwnerID).Msg("service count failed")
			return models.Service{}, fmt.Errorf("service count failed: %w", err)
		}
		if count >= plan.MaxServices {
			return models.Service{}, ErrPlanLimitReached
		}
	}

	service.IsActive = true

	created, err := c.serviceRepository.CreateService(ctx, service)
	if err != nil {
		log.Err(err).Str("name", service.Name).Msg("service creation failed")
		return models.Service{}, fmt.Errorf("service creation failed: %w", err)
	}

	return created, nil
}

// GetService returns one service offering by identifier.
func (c *catalogService) GetService(ctx context.Context, serviceID int64) (models.Service, error) {
	log := logger.FromContext(ctx)

	service, err := c.serviceRepository.GetServiceByID(ctx, serviceID)
	if err != nil {
		log.Err(err).Int64("service_id", serviceID).Msg("service lookup failed")
		return models.Service{}, fmt.Errorf("service lookup failed: %w", err)
	}

	return service, nil
}

// UpdateService stores the new state of an existing service offering.
func (c *catalogService) UpdateService(ctx context.Context, service models.Service) (models.Service, error) {
	log := logger.FromContext(ctx)

	if service.ID <= 0 || service.Name == "" || service.Price.IsNegative() {
		return models.Service{}, ErrInvalidDataProvided
	}

	updated, err := c.serviceRepository.UpdateService(ctx, service)
	if err != nil {
		log.Err(err).Int64("service_id", service.ID).Msg("service update failed")
		return models.Service{}, fmt.Errorf("service update failed: %w", err)
	}

	return updated, nil
}

// DeleteService removes a service offering.
func (c *catalogService) DeleteService(ctx context.Context, serviceID int64) error {
	log := logger.FromContext(ctx)

	if err := c.serviceRepository.DeleteService(ctx, serviceID); err != nil {
		log.Err(err).Int64("service_id", serviceID).Msg("service delete failed")
		return fmt.Errorf("service delete failed: %w", err)
	}

	return nil
}

// ListServices returns one page of service offerings matching the filter.
func (c *catalogService) ListServices(ctx context.Context, filter models.ServiceFilter, page models.PageQuery) ([]models.Service, int64, error) {
	log := logger.FromContext(ctx)

	services, total, err := c.serviceRepository.ListServices(ctx, filter, page)
	if err != nil {
		log.Err(err).Msg("service listing failed")
		return nil, 0, fmt.Errorf("service listing failed: %w", err)
	}

	return services, total, nil
}

// ── Resources ───────────────────────────────────────────────────────────────

// CreateResource persists rentable inventory on a venue. The owner is taken
// from the venue and creation is capped by the MaxResources limit of the
// owner's effective plan.
func (c *catalogService) CreateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	if resource.VenueID <= 0 || resource.Name == "" || resource.Quantity < 0 || resource.PricePerUnit.IsNegative() {
		log.Error().Str("name", resource.Name).Msg("invalid resource data provided")
		return models.Resource{}, ErrInvalidDataProvided
	}

	venue, err := c.venueRepository.GetVenueByID(ctx, resource.VenueID)
	if err != nil {
		log.Err(err).Int64("venue_id", resource.VenueID).Msg("venue lookup failed")
		return models.Resource{}, fmt.Errorf("venue lookup failed: %w", err)
	}
	if venue.Deleted() {
		return models.Resource{}, fmt.Errorf("venue lookup failed: %w", store.ErrVenueNotFound)
	}
	resource.OwnerID = venue.OwnerID

	plan, err := effectivePlan(ctx, c.planRepository, venue.OwnerID)
	if err != nil {
		return models.Resource{}, err
	}
	if plan.MaxResources > 0 {
		count, err := c.resourceRepository.CountByOwner(ctx, venue.OwnerID)
		if err != nil {
			log.Err(err).Int64("owner_id", venue.OwnerID).Msg("resource count failed")
			return models.Resource{}, fmt.Errorf("resource count failed: %w", err)
		}
		if count >= plan.MaxResources {
			return models.Resource{}, ErrPlanLimitReached
		}
	}

	resource.IsActive = true

	created, err := c.resourceRepository.CreateResource(ctx, resource)
	if err != nil {
		log.Err(err).Str("name", resource.Name).Msg("resource creation failed")
		return models.Resource{}, fmt.Errorf("resource creation failed: %w", err)
	}

	return created, nil
}

// GetResource returns one resource by identifier.
func (c *catalogService) GetResource(ctx context.Context, resourceID int64) (models.Resource, error) {
	log := logger.FromContext(ctx)

	resource, err := c.resourceRepository.GetResourceByID(ctx, resourceID)
	if err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("resource lookup failed")
		return models.Resource{}, fmt.Errorf("resource lookup failed: %w", err)
	}

	return resource, nil
}

// UpdateResource stores the new state of an existing resource.
func (c *catalogService) UpdateResource(ctx context.Context, resource models.Resource) (models.Resource, error) {
	log := logger.FromContext(ctx)

	if resource.ID <= 0 || resource.Name == "" || resource.Quantity < 0 || resource.PricePerUnit.IsNegative() {
		return models.Resource{}, ErrInvalidDataProvided
	}

	updated, err := c.resourceRepository.UpdateResource(ctx, resource)
	if err != nil {
		log.Err(err).Int64("resource_id", resource.ID).Msg("resource update failed")
		return models.Resource{}, fmt.Errorf("resource update failed: %w", err)
	}

	return updated, nil
}

// DeleteResource removes a resource.
func (c *catalogService) DeleteResource(ctx context.Context, resourceID int64) error {
	log := logger.FromContext(ctx)

	if err := c.resourceRepository.DeleteResource(ctx, resourceID); err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("resource delete failed")
		return fmt.Errorf("resource delete failed: %w", err)
	}

	return nil
}

// ListResources returns one page of resources matching the filter.
func (c *catalogService) ListResources(ctx context.Context, filter models.ResourceFilter, page models.PageQuery) ([]models.Resource, int64, error) {
	log := logger.FromContext(ctx)

	resources, total, err := c.resourceRepository.ListResources(ctx, filter, page)
	if err != nil {
		log.Err(err).Msg("resource listing failed")
		return nil, 0, fmt.Errorf("resource listing failed: %w", err)
	}

	return resources, total, nil
}

// ── Photos ──────────────────────────────────────────────────────────────────

// AttachPhoto uploads the photo bytes to the media store and records the
// attachment. When the new photo is marked primary, the entity's previous
// cover photo is demoted first. A failed database write removes the uploaded
// object again so the media store does not accumulate orphans.
func (c *catalogService) AttachPhoto(ctx context.Context, photo models.Photo, filename string, content io.Reader) (models.Photo, error) {
	log := logger.FromContext(ctx)

	if !models.ValidPhotoEntity(photo.EntityType) || photo.EntityID <= 0 {
		log.Error().
			Str("entity_type", photo.EntityType).
			Int64("entity_id", photo.EntityID).
			Msg("invalid photo attachment target")
		return models.Photo{}, ErrInvalidDataProvided
	}

	if err := c.checkEntityExists(ctx, photo.EntityType, photo.EntityID); err != nil {
		return models.Photo{}, err
	}

	stored, err := c.media.Upload(ctx, filename, content)
	if err != nil {
		log.Err(err).Str("filename", filename).Msg("photo upload failed")
		return models.Photo{}, fmt.Errorf("photo upload failed: %w", err)
	}
	photo.StorageKey = stored.Key
	photo.URL = stored.URL

	if photo.IsPrimary {
		if err := c.photoRepository.DemotePrimary(ctx, photo.EntityType, photo.EntityID); err != nil {
			c.discardUpload(ctx, stored.Key)
			log.Err(err).
				Str("entity_type", photo.EntityType).
				Int64("entity_id", photo.EntityID).
				Msg("demoting previous cover photo failed")
			return models.Photo{}, fmt.Errorf("demoting previous cover photo failed: %w", err)
		}
	}

	saved, err := c.photoRepository.SavePhoto(ctx, photo)
	if err != nil {
		c.discardUpload(ctx, stored.Key)
		log.Err(err).Str("key", stored.Key).Msg("saving photo record failed")
		return models.Photo{}, fmt.Errorf("saving photo record failed: %w", err)
	}

	log.Info().
		Int64("photo_id", saved.ID).
		Str("entity_type", saved.EntityType).
		Int64("entity_id", saved.EntityID).
		Bool("is_primary", saved.IsPrimary).
		Msg("photo attached")

	return saved, nil
}

// ListPhotos returns the photos attached to one catalog entity.
func (c *catalogService) ListPhotos(ctx context.Context, entityType string, entityID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	if !models.ValidPhotoEntity(entityType) || entityID <= 0 {
		return nil, ErrInvalidDataProvided
	}

	photos, err := c.photoRepository.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		log.Err(err).
			Str("entity_type", entityType).
			Int64("entity_id", entityID).
			Msg("photo listing failed")
		return nil, fmt.Errorf("photo listing failed: %w", err)
	}

	return photos, nil
}

// RemovePhoto deletes the attachment record and the stored object. A missing
// object in the media store does not block removing the record.
func (c *catalogService) RemovePhoto(ctx context.Context, photoID int64) error {
	log := logger.FromContext(ctx)

	photo, err := c.photoRepository.GetPhotoByID(ctx, photoID)
	if err != nil {
		log.Err(err).Int64("photo_id", photoID).Msg("photo lookup failed")
		return fmt.Errorf("photo lookup failed: %w", err)
	}

	if err := c.media.Delete(ctx, photo.StorageKey); err != nil {
		if !errors.Is(err, adapter.ErrMediaNotFound) {
			log.Err(err).Str("key", photo.StorageKey).Msg("deleting stored photo failed")
			return fmt.Errorf("deleting stored photo failed: %w", err)
		}
		log.Warn().Str("key", photo.StorageKey).Msg("stored photo already gone")
	}

	if err := c.photoRepository.DeletePhoto(ctx, photoID); err != nil {
		log.Err(err).Int64("photo_id", photoID).Msg("deleting photo record failed")
		return fmt.Errorf("deleting photo record failed: %w", err)
	}

	return nil
}

// checkEntityExists verifies the attachment target is a live catalog entity.
func (c *catalogService) checkEntityExists(ctx context.Context, entityType string, entityID int64) error {
	log := logger.FromContext(ctx)

	var err error
	switch entityType {
	case models.PhotoEntityVenue:
		var venue models.Venue
		venue, err = c.venueRepository.GetVenueByID(ctx, entityID)
		if err == nil && venue.Deleted() {
			err = store.ErrVenueNotFound
		}
	case models.PhotoEntityService:
		_, err = c.serviceRepository.GetServiceByID(ctx, entityID)
	case models.PhotoEntityResource:
		_, err = c.resourceRepository.GetResourceByID(ctx, entityID)
	}

	if err != nil {
		log.Err(err).
			Str("entity_type", entityType).
			Int64("entity_id", entityID).
			Msg("photo attachment target lookup failed")
		return fmt.Errorf("photo attachment target lookup failed: %w", err)
	}

	return nil
}

// discardUpload best-effort removes an uploaded object after the surrounding
// operation failed.
func (c *catalogService) discardUpload(ctx context.Context, key string) {
	if err := c.media.Delete(ctx, key); err != nil {
		c.logger.Err(err).Str("key", key).Msg("discarding uploaded photo failed")
	}
}
