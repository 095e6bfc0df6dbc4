package vendorrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVendorRepository implements VendorRepository using GORM.
type GormVendorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(code kernel.Code, aggregate any)
}

// NewGormVendorRepository creates a new GORM vendor repository.
func NewGormVendorRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRepository {
	return &GormVendorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor to the database.
func (r *GormVendorRepository) Add(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Update saves an existing vendor to the database, including recomputed
// metrics.
func (r *GormVendorRepository) Update(ctx context.Context, aggregate *vendor.Vendor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VendorDTO{}).Where("code = ?", dto.Code).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Code(), aggregate)
	return nil
}

// Get retrieves a vendor by code.
func (r *GormVendorRepository) Get(ctx context.Context, code kernel.Code) (*vendor.Vendor, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every vendor, ordered by code for deterministic iteration.
func (r *GormVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	var dtos []VendorDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vendors := make([]*vendor.Vendor, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vendors = append(vendors, v)
	}

	return vendors, nil
}
