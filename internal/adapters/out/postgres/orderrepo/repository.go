package orderrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(code kernel.Code, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.PONumber(), aggregate)
	return nil
}

// Update saves an existing purchase order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("po_number = ?", dto.PONumber).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.PONumber(), aggregate)
	return nil
}

// Get retrieves a purchase order by PO number.
func (r *GormOrderRepository) Get(ctx context.Context, poNumber kernel.Code) (*order.PurchaseOrder, error) {
	return r.get(ctx, poNumber, false)
}

// GetForUpdate retrieves a purchase order and takes a row lock on it.
// Concurrent transitions on the same order serialize on this lock for the
// rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(
	ctx context.Context,
	poNumber kernel.Code,
) (*order.PurchaseOrder, error) {
	return r.get(ctx, poNumber, true)
}

func (r *GormOrderRepository) get(
	ctx context.Context,
	poNumber kernel.Code,
	forUpdate bool,
) (*order.PurchaseOrder, error) {
	if err := poNumber.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := tx.First(&dto, "po_number = ?", poNumber.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", poNumber.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVendor retrieves every order issued to the given vendor.
// The metrics recomputation scans this population inside the transition's
// transaction.
func (r *GormOrderRepository) GetAllByVendor(
	ctx context.Context,
	vendorCode kernel.Code,
) ([]*order.PurchaseOrder, error) {
	if err := vendorCode.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "vendor_code = ?", vendorCode.String()).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.PurchaseOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
