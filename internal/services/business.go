package services

//go:generate mockgen -source=business.go -destination=mock_business.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/townlink/internal/logger"
	"github.com/sbilibin2017/townlink/internal/models"
)

// BusinessReader defines read-only operations for businesses.
type BusinessReader interface {
	List(ctx context.Context) ([]models.BusinessDB, error)
	GetByID(ctx context.Context, businessID int64) (*models.BusinessDB, error)
}

// BusinessWriter defines write operations for businesses.
type BusinessWriter interface {
	Save(ctx context.Context, business *models.BusinessDB) (int64, error)
}

// BusinessCache caches single businesses.
type BusinessCache interface {
	Get(ctx context.Context, businessID int64) (*models.BusinessDB, error)
	Set(ctx context.Context, business *models.BusinessDB) error
	Delete(ctx context.Context, businessID int64) error
}

// BusinessService serves the business catalog.
type BusinessService struct {
	reader BusinessReader
	writer BusinessWriter
	cache  BusinessCache
}

// NewBusinessService creates a new BusinessService. cache may be nil.
func NewBusinessService(reader BusinessReader, writer BusinessWriter, cache BusinessCache) *BusinessService {
	return &BusinessService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns all businesses.
func (svc *BusinessService) List(ctx context.Context) ([]models.BusinessDB, error) {
	businesses, err := svc.reader.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list businesses", "err", err)
		return nil, err
	}
	if businesses == nil {
		businesses = []models.BusinessDB{}
	}
	return businesses, nil
}

// Get returns one business, consulting the cache first.
func (svc *BusinessService) Get(ctx context.Context, businessID int64) (*models.BusinessDB, error) {
	log := logger.FromContext(ctx)

	if svc.cache != nil {
		if business, err := svc.cache.Get(ctx, businessID); err == nil {
			return business, nil
		}
	}

	business, err := svc.reader.GetByID(ctx, businessID)
	if err != nil {
		log.Errorw("failed to get business", "business_id", businessID, "err", err)
		return nil, err
	}
	if business == nil {
		return nil, ErrNotFound
	}

	// A rating recompute that evicts between the read above and this Set leaves a
	// stale entry; it lives at most until the cache TTL expires.
	if svc.cache != nil {
		if err := svc.cache.Set(ctx, business); err != nil {
			log.Warnw("failed to cache business", "business_id", businessID, "err", err)
		}
	}

	return business, nil
}

// Create stores a new business owned by ownerID and returns its id.
// Required fields are checked after trimming; the image falls back to a placeholder
// and coordinates are kept only when both are present.
func (svc *BusinessService) Create(ctx context.Context, ownerID int64, input models.BusinessInput) (int64, error) {
	log := logger.FromContext(ctx)

	input = normalizeBusinessInput(input)
	if err := validateStruct(input); err != nil {
		log.Warnw("invalid business input", "err", err)
		return 0, err
	}

	business := &models.BusinessDB{
		UserID:      &ownerID,
		Name:        input.Name,
		Category:    input.Category,
		Location:    input.Location,
		Description: input.Description,
		Phone:       input.Phone,
		Email:       input.Email,
		Website:     input.Website,
		Hours:       input.Hours,
		Image:       input.Image,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	businessID, err := svc.writer.Save(ctx, business)
	if err != nil {
		log.Errorw("failed to save business", "err", err)
		return 0, err
	}

	log.Infow("business created", "business_id", businessID, "owner_id", ownerID)
	return businessID, nil
}

func normalizeBusinessInput(input models.BusinessInput) models.BusinessInput {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Location = strings.TrimSpace(input.Location)
	input.Description = strings.TrimSpace(input.Description)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Website = strings.TrimSpace(input.Website)
	input.Hours = strings.TrimSpace(input.Hours)
	input.Image = strings.TrimSpace(input.Image)

	if input.Image == "" {
		input.Image = models.DefaultBusinessImage
	}
	if input.Latitude == nil || input.Longitude == nil {
		input.Latitude, input.Longitude = nil, nil
	}
	return input
}
