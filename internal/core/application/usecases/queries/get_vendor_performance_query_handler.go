package queries

import (
	"context"

	"procurement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorPerformanceQueryHandler reads one vendor's current metrics.
type GetVendorPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorPerformanceQueryHandler creates a handler for single-vendor
// performance lookups.
func NewGetVendorPerformanceQueryHandler(db *gorm.DB) GetVendorPerformanceQueryHandler {
	return GetVendorPerformanceQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ObjectNotFoundError when no vendor
// with the requested code exists.
func (h GetVendorPerformanceQueryHandler) Handle(
	ctx context.Context,
	query GetVendorPerformanceQuery,
) (VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return VendorResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			contact_details,
			address,
			on_time_delivery_rate,
			quality_rating_avg,
			average_response_time,
			fulfillment_rate
		FROM vendors
		WHERE code = ?
	`, query.VendorCode().String()).Rows()
	if err != nil {
		return VendorResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return VendorResponse{}, err
		}
		return VendorResponse{}, errs.NewObjectNotFoundError("vendorCode", query.VendorCode().String())
	}

	v, err := scanVendorRow(rows)
	if err != nil {
		return VendorResponse{}, err
	}

	return v, rows.Err()
}
