// Package vendorrepo provides data transfer objects and mapping functions for
// vendor persistence. Implements the repository pattern for the vendor domain
// aggregate, handling the conversion between domain entities and database
// representations.
package vendorrepo

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
// Metric columns are nullable: NULL means the metric has never been computed.
type VendorDTO struct {
	Code                string `gorm:"type:varchar(10);primaryKey"`
	Name                string `gorm:"index"`
	ContactDetails      string
	Address             string
	OnTimeDeliveryRate  *float64
	QualityRatingAvg    *float64
	AverageResponseTime *float64
	FulfillmentRate     *float64
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor domain aggregate to its database representation.
func fromDomain(v *vendor.Vendor) VendorDTO {
	metrics := v.Metrics()
	return VendorDTO{
		Code:                v.Code().String(),
		Name:                v.Name(),
		ContactDetails:      v.ContactDetails(),
		Address:             v.Address(),
		OnTimeDeliveryRate:  metrics.OnTimeDeliveryRate,
		QualityRatingAvg:    metrics.QualityRatingAvg,
		AverageResponseTime: metrics.AverageResponseTime,
		FulfillmentRate:     metrics.FulfillmentRate,
	}
}

// toDomain converts a database DTO to a vendor domain aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	code, err := kernel.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(
		code,
		dto.Name,
		dto.ContactDetails,
		dto.Address,
		vendor.Metrics{
			OnTimeDeliveryRate:  dto.OnTimeDeliveryRate,
			QualityRatingAvg:    dto.QualityRatingAvg,
			AverageResponseTime: dto.AverageResponseTime,
			FulfillmentRate:     dto.FulfillmentRate,
		},
	)
}
