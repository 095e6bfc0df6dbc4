package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllVendorsQueryHandler retrieves all vendor information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllVendorsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllVendorsQueryHandler creates a handler for vendor retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllVendorsQueryHandler(db *gorm.DB) GetAllVendorsQueryHandler {
	return GetAllVendorsQueryHandler{db: db}
}

// Handle executes the query to retrieve all vendors.
// Returns a slice of vendor read models sorted by name.
func (h GetAllVendorsQueryHandler) Handle(
	ctx context.Context,
	query GetAllVendorsQuery,
) ([]VendorResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors := make([]VendorResponse, 0)

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
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		v, scanErr := scanVendorRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		vendors = append(vendors, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vendors, nil
}

func scanVendorRow(rows *sql.Rows) (VendorResponse, error) {
	var v VendorResponse
	var code string
	var onTime, quality, response, fulfillment sql.NullFloat64

	if err := rows.Scan(
		&code,
		&v.Name,
		&v.ContactDetails,
		&v.Address,
		&onTime,
		&quality,
		&response,
		&fulfillment,
	); err != nil {
		return VendorResponse{}, err
	}

	vendorCode, err := kernel.CodeFromString(code)
	if err != nil {
		return VendorResponse{}, err
	}
	v.Code = vendorCode
	v.OnTimeDeliveryRate = nullableFloat(onTime)
	v.QualityRatingAvg = nullableFloat(quality)
	v.AverageResponseTime = nullableFloat(response)
	v.FulfillmentRate = nullableFloat(fulfillment)

	return v, nil
}

func nullableFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}
