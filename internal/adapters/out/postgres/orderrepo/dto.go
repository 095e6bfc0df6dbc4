// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. Implements the repository pattern for the order
// domain aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting purchase order
// aggregates. Items are stored as a JSON document; the other columns are
// indexed for the status scans the progression job and the metrics
// recomputation run.
type OrderDTO struct {
	PONumber             string  `gorm:"type:varchar(10);primaryKey"`
	VendorCode           *string `gorm:"type:varchar(10);index"`
	Status               int     `gorm:"index"`
	OrderDate            time.Time
	ExpectedDeliveryDate time.Time
	ActualDeliveryDate   *time.Time
	IssueDate            *time.Time
	AcknowledgmentDate   *time.Time
	Items                datatypes.JSON
	Quantity             int
	QualityRating        *int
}

// TableName specifies the database table name for purchase order entities.
func (OrderDTO) TableName() string {
	return "purchase_orders"
}

// itemDTO is the JSON shape of one order line inside the items column.
type itemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.PurchaseOrder) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{Name: item.Name(), Quantity: item.Quantity()})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}

	var vendorCode *string
	if vc := aggregate.VendorCode(); vc != nil {
		s := vc.String()
		vendorCode = &s
	}

	return OrderDTO{
		PONumber:             aggregate.PONumber().String(),
		VendorCode:           vendorCode,
		Status:               int(aggregate.Status()),
		OrderDate:            aggregate.OrderDate(),
		ExpectedDeliveryDate: aggregate.ExpectedDeliveryDate(),
		ActualDeliveryDate:   aggregate.ActualDeliveryDate(),
		IssueDate:            aggregate.IssueDate(),
		AcknowledgmentDate:   aggregate.AcknowledgmentDate(),
		Items:                datatypes.JSON(rawItems),
		Quantity:             aggregate.Quantity(),
		QualityRating:        aggregate.QualityRating(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle timestamps using
// RestorePurchaseOrder.
func toDomain(dto OrderDTO) (*order.PurchaseOrder, error) {
	poNumber, err := kernel.CodeFromString(dto.PONumber)
	if err != nil {
		return nil, err
	}

	var vendorCode *kernel.Code
	if dto.VendorCode != nil {
		vc, vcErr := kernel.CodeFromString(*dto.VendorCode)
		if vcErr != nil {
			return nil, vcErr
		}
		vendorCode = &vc
	}

	var rawItems []itemDTO
	if len(dto.Items) > 0 {
		if err = json.Unmarshal(dto.Items, &rawItems); err != nil {
			return nil, err
		}
	}

	items := make([]order.Item, 0, len(rawItems))
	for _, raw := range rawItems {
		item, itemErr := order.NewItem(raw.Name, raw.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestorePurchaseOrder(
		poNumber,
		vendorCode,
		dto.OrderDate,
		dto.ExpectedDeliveryDate,
		dto.ActualDeliveryDate,
		dto.IssueDate,
		dto.AcknowledgmentDate,
		items,
		dto.Quantity,
		order.Status(dto.Status),
		dto.QualityRating,
	)
}
