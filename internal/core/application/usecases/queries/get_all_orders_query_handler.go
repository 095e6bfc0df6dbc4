package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const orderSelectColumns = `
	po_number,
	vendor_code,
	status,
	order_date,
	expected_delivery_date,
	actual_delivery_date,
	issue_date,
	acknowledgment_date,
	items,
	quantity,
	quality_rating`

// GetAllOrdersQueryHandler retrieves all purchase orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all purchase orders.
// Returns a slice of order read models, newest orders first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT` + orderSelectColumns + `
		FROM purchase_orders
		ORDER BY order_date DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrderRows(rows)
}

func collectOrderRows(rows *sql.Rows) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)
	for rows.Next() {
		o, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var o OrderResponse
	var poNumber string
	var vendorCode sql.NullString
	var status int
	var actualDelivery, issue, acknowledgment sql.NullTime
	var items []byte
	var qualityRating sql.NullInt64

	if err := rows.Scan(
		&poNumber,
		&vendorCode,
		&status,
		&o.OrderDate,
		&o.ExpectedDeliveryDate,
		&actualDelivery,
		&issue,
		&acknowledgment,
		&items,
		&o.Quantity,
		&qualityRating,
	); err != nil {
		return OrderResponse{}, err
	}

	po, err := kernel.CodeFromString(poNumber)
	if err != nil {
		return OrderResponse{}, err
	}
	o.PONumber = po

	if vendorCode.Valid {
		vc, vcErr := kernel.CodeFromString(vendorCode.String)
		if vcErr != nil {
			return OrderResponse{}, vcErr
		}
		o.VendorCode = &vc
	}

	o.Status = order.Status(status)
	if err = o.Status.Validate(); err != nil {
		return OrderResponse{}, err
	}

	if len(items) > 0 {
		if err = json.Unmarshal(items, &o.Items); err != nil {
			return OrderResponse{}, err
		}
	}

	o.ActualDeliveryDate = nullableTime(actualDelivery)
	o.IssueDate = nullableTime(issue)
	o.AcknowledgmentDate = nullableTime(acknowledgment)
	if qualityRating.Valid {
		rating := int(qualityRating.Int64)
		o.QualityRating = &rating
	}

	return o, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}
