// Package http exposes the procurement use cases over a REST API.
// It coordinates between HTTP handlers and application use cases, translating
// domain errors into status codes: unknown objects map to 404, rejected
// transitions and invalid input map to 400.
package http

import (
	"errors"
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the REST API for vendors and purchase orders.
type Server struct {
	// Command handlers
	createVendorHandler commands.CreateVendorCommandHandler
	createOrderHandler  commands.CreatePurchaseOrderCommandHandler
	issueHandler        commands.IssueOrderCommandHandler
	acknowledgeHandler  commands.AcknowledgeOrderCommandHandler
	deliverHandler      commands.DeliverOrderCommandHandler
	cancelHandler       commands.CancelOrderCommandHandler
	rateHandler         commands.RateOrderQualityCommandHandler

	// Query handlers
	getAllVendorsHandler         queries.GetAllVendorsQueryHandler
	getVendorPerformanceHandler  queries.GetVendorPerformanceQueryHandler
	getPerformanceHistoryHandler queries.GetPerformanceHistoryQueryHandler
	getAllOrdersHandler          queries.GetAllOrdersQueryHandler
	getOrderHandler              queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createVendorHandler commands.CreateVendorCommandHandler,
	createOrderHandler commands.CreatePurchaseOrderCommandHandler,
	issueHandler commands.IssueOrderCommandHandler,
	acknowledgeHandler commands.AcknowledgeOrderCommandHandler,
	deliverHandler commands.DeliverOrderCommandHandler,
	cancelHandler commands.CancelOrderCommandHandler,
	rateHandler commands.RateOrderQualityCommandHandler,
	getAllVendorsHandler queries.GetAllVendorsQueryHandler,
	getVendorPerformanceHandler queries.GetVendorPerformanceQueryHandler,
	getPerformanceHistoryHandler queries.GetPerformanceHistoryQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createVendorHandler:          createVendorHandler,
		createOrderHandler:           createOrderHandler,
		issueHandler:                 issueHandler,
		acknowledgeHandler:           acknowledgeHandler,
		deliverHandler:               deliverHandler,
		cancelHandler:                cancelHandler,
		rateHandler:                  rateHandler,
		getAllVendorsHandler:         getAllVendorsHandler,
		getVendorPerformanceHandler:  getVendorPerformanceHandler,
		getPerformanceHistoryHandler: getPerformanceHistoryHandler,
		getAllOrdersHandler:          getAllOrdersHandler,
		getOrderHandler:              getOrderHandler,
	}
}

// RegisterRoutes binds every API route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/vendors", s.CreateVendor)
	api.GET("/vendors", s.GetVendors)
	api.GET("/vendors/:code/performance", s.GetVendorPerformance)
	api.GET("/vendors/:code/performance/history", s.GetPerformanceHistory)

	api.POST("/purchase-orders", s.CreatePurchaseOrder)
	api.GET("/purchase-orders", s.GetPurchaseOrders)
	api.GET("/purchase-orders/:po_number", s.GetPurchaseOrder)
	api.POST("/purchase-orders/:po_number/issue", s.IssueOrder)
	api.POST("/purchase-orders/:po_number/acknowledge", s.AcknowledgeOrder)
	api.POST("/purchase-orders/:po_number/deliver", s.DeliverOrder)
	api.POST("/purchase-orders/:po_number/cancel", s.CancelOrder)
	api.POST("/purchase-orders/:po_number/rate", s.RateOrderQuality)
}

// ErrorResponse is the JSON error envelope of every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// VendorPayload is the request body for vendor creation.
type VendorPayload struct {
	Name           string `json:"name"`
	ContactDetails string `json:"contact_details"`
	Address        string `json:"address"`
}

// VendorResponse is the JSON representation of a vendor with its metrics.
type VendorResponse struct {
	Code                string   `json:"code"`
	Name                string   `json:"name"`
	ContactDetails      string   `json:"contact_details"`
	Address             string   `json:"address"`
	OnTimeDeliveryRate  *float64 `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64 `json:"quality_rating_avg"`
	AverageResponseTime *float64 `json:"average_response_time"`
	FulfillmentRate     *float64 `json:"fulfillment_rate"`
}

// ItemPayload is one order line in requests and responses.
type ItemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderPayload is the request body for purchase order creation. PONumber is
// optional; a fresh code is generated when it is empty.
type OrderPayload struct {
	PONumber             string        `json:"po_number"`
	OrderDate            *time.Time    `json:"order_date"`
	ExpectedDeliveryDate *time.Time    `json:"expected_delivery_date"`
	Items                []ItemPayload `json:"items"`
}

// OrderResponse is the JSON representation of a purchase order.
type OrderResponse struct {
	PONumber             string        `json:"po_number"`
	VendorCode           *string       `json:"vendor_code"`
	Status               string        `json:"status"`
	OrderDate            time.Time     `json:"order_date"`
	ExpectedDeliveryDate time.Time     `json:"expected_delivery_date"`
	ActualDeliveryDate   *time.Time    `json:"actual_delivery_date"`
	IssueDate            *time.Time    `json:"issue_date"`
	AcknowledgmentDate   *time.Time    `json:"acknowledgment_date"`
	Items                []ItemPayload `json:"items"`
	Quantity             int           `json:"quantity"`
	QualityRating        *int          `json:"quality_rating"`
}

// TransitionPayload is the request body for the issue, acknowledge, deliver
// and cancel operations. Timestamp is optional; the server clock is used when
// it is absent.
type TransitionPayload struct {
	VendorCode string     `json:"vendor_code"`
	Timestamp  *time.Time `json:"timestamp"`
}

// RatingPayload is the request body for the rate operation.
type RatingPayload struct {
	Rating int `json:"rating"`
}

// SnapshotResponse is one historical metrics observation.
type SnapshotResponse struct {
	TakenAt             time.Time `json:"taken_at"`
	OnTimeDeliveryRate  *float64  `json:"on_time_delivery_rate"`
	QualityRatingAvg    *float64  `json:"quality_rating_avg"`
	AverageResponseTime *float64  `json:"average_response_time"`
	FulfillmentRate     *float64  `json:"fulfillment_rate"`
}

// CreateVendor handles POST /api/v1/vendors.
func (s *Server) CreateVendor(ctx echo.Context) error {
	var payload VendorPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateVendorCommand(
		kernel.NewCode(),
		payload.Name,
		payload.ContactDetails,
		payload.Address,
	)
	if err != nil {
		return badRequest(ctx, "Invalid vendor data: "+err.Error())
	}

	v, err := s.createVendorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, VendorResponse{
		Code:           v.Code().String(),
		Name:           v.Name(),
		ContactDetails: v.ContactDetails(),
		Address:        v.Address(),
	})
}

// GetVendors handles GET /api/v1/vendors.
func (s *Server) GetVendors(ctx echo.Context) error {
	vendors, err := s.getAllVendorsHandler.Handle(ctx.Request().Context(), queries.NewGetAllVendorsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]VendorResponse, len(vendors))
	for i, v := range vendors {
		response[i] = VendorResponse{
			Code:                v.Code.String(),
			Name:                v.Name,
			ContactDetails:      v.ContactDetails,
			Address:             v.Address,
			OnTimeDeliveryRate:  v.OnTimeDeliveryRate,
			QualityRatingAvg:    v.QualityRatingAvg,
			AverageResponseTime: v.AverageResponseTime,
			FulfillmentRate:     v.FulfillmentRate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetVendorPerformance handles GET /api/v1/vendors/:code/performance.
func (s *Server) GetVendorPerformance(ctx echo.Context) error {
	code, err := kernel.CodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid vendor code")
	}

	query, err := queries.NewGetVendorPerformanceQuery(code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	v, err := s.getVendorPerformanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VendorResponse{
		Code:                v.Code.String(),
		Name:                v.Name,
		ContactDetails:      v.ContactDetails,
		Address:             v.Address,
		OnTimeDeliveryRate:  v.OnTimeDeliveryRate,
		QualityRatingAvg:    v.QualityRatingAvg,
		AverageResponseTime: v.AverageResponseTime,
		FulfillmentRate:     v.FulfillmentRate,
	})
}

// GetPerformanceHistory handles GET /api/v1/vendors/:code/performance/history.
func (s *Server) GetPerformanceHistory(ctx echo.Context) error {
	code, err := kernel.CodeFromString(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid vendor code")
	}

	query, err := queries.NewGetPerformanceHistoryQuery(code)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	snapshots, err := s.getPerformanceHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]SnapshotResponse, len(snapshots))
	for i, snapshot := range snapshots {
		response[i] = SnapshotResponse{
			TakenAt:             snapshot.TakenAt,
			OnTimeDeliveryRate:  snapshot.OnTimeDeliveryRate,
			QualityRatingAvg:    snapshot.QualityRatingAvg,
			AverageResponseTime: snapshot.AverageResponseTime,
			FulfillmentRate:     snapshot.FulfillmentRate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreatePurchaseOrder handles POST /api/v1/purchase-orders.
func (s *Server) CreatePurchaseOrder(ctx echo.Context) error {
	var payload OrderPayload
	if err := ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]order.Item, 0, len(payload.Items))
	for _, raw := range payload.Items {
		item, err := order.NewItem(raw.Name, raw.Quantity)
		if err != nil {
			return badRequest(ctx, "Invalid order item: "+err.Error())
		}
		items = append(items, item)
	}

	poNumber := kernel.NewCode()
	if payload.PONumber != "" {
		parsed, err := kernel.CodeFromString(payload.PONumber)
		if err != nil {
			return badRequest(ctx, "Invalid PO number")
		}
		poNumber = parsed
	}

	orderDate := time.Now().UTC()
	if payload.OrderDate != nil {
		orderDate = *payload.OrderDate
	}

	cmd, err := commands.NewCreatePurchaseOrderCommand(
		poNumber,
		orderDate,
		payload.ExpectedDeliveryDate,
		items,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// GetPurchaseOrders handles GET /api/v1/purchase-orders.
func (s *Server) GetPurchaseOrders(ctx echo.Context) error {
	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderReadModelToResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPurchaseOrder handles GET /api/v1/purchase-orders/:po_number.
func (s *Server) GetPurchaseOrder(ctx echo.Context) error {
	poNumber, err := kernel.CodeFromString(ctx.Param("po_number"))
	if err != nil {
		return badRequest(ctx, "Invalid PO number")
	}

	query, err := queries.NewGetOrderQuery(poNumber)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(o))
}

// IssueOrder handles POST /api/v1/purchase-orders/:po_number/issue.
func (s *Server) IssueOrder(ctx echo.Context) error {
	poNumber, vendorCode, at, err := bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewIssueOrderCommand(poNumber, vendorCode, at)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.issueHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AcknowledgeOrder handles POST /api/v1/purchase-orders/:po_number/acknowledge.
func (s *Server) AcknowledgeOrder(ctx echo.Context) error {
	poNumber, vendorCode, at, err := bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewAcknowledgeOrderCommand(poNumber, vendorCode, at)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.acknowledgeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeliverOrder handles POST /api/v1/purchase-orders/:po_number/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	poNumber, vendorCode, at, err := bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewDeliverOrderCommand(poNumber, vendorCode, at)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.deliverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles POST /api/v1/purchase-orders/:po_number/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	poNumber, vendorCode, _, err := bindTransition(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(poNumber, vendorCode)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.cancelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// RateOrderQuality handles POST /api/v1/purchase-orders/:po_number/rate.
func (s *Server) RateOrderQuality(ctx echo.Context) error {
	poNumber, err := kernel.CodeFromString(ctx.Param("po_number"))
	if err != nil {
		return badRequest(ctx, "Invalid PO number")
	}

	var payload RatingPayload
	if err = ctx.Bind(&payload); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateOrderQualityCommand(poNumber, payload.Rating)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	updated, err := s.rateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func bindTransition(ctx echo.Context) (kernel.Code, kernel.Code, time.Time, error) {
	poNumber, err := kernel.CodeFromString(ctx.Param("po_number"))
	if err != nil {
		return kernel.Code{}, kernel.Code{}, time.Time{}, err
	}

	var payload TransitionPayload
	if err = ctx.Bind(&payload); err != nil {
		return kernel.Code{}, kernel.Code{}, time.Time{}, err
	}

	vendorCode, err := kernel.CodeFromString(payload.VendorCode)
	if err != nil {
		return kernel.Code{}, kernel.Code{}, time.Time{}, err
	}

	at := time.Now().UTC()
	if payload.Timestamp != nil {
		at = *payload.Timestamp
	}

	return poNumber, vendorCode, at, nil
}

func orderToResponse(o *order.PurchaseOrder) OrderResponse {
	items := make([]ItemPayload, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ItemPayload{Name: item.Name(), Quantity: item.Quantity()})
	}

	var vendorCode *string
	if vc := o.VendorCode(); vc != nil {
		s := vc.String()
		vendorCode = &s
	}

	return OrderResponse{
		PONumber:             o.PONumber().String(),
		VendorCode:           vendorCode,
		Status:               o.Status().String(),
		OrderDate:            o.OrderDate(),
		ExpectedDeliveryDate: o.ExpectedDeliveryDate(),
		ActualDeliveryDate:   o.ActualDeliveryDate(),
		IssueDate:            o.IssueDate(),
		AcknowledgmentDate:   o.AcknowledgmentDate(),
		Items:                items,
		Quantity:             o.Quantity(),
		QualityRating:        o.QualityRating(),
	}
}

func orderReadModelToResponse(o queries.OrderResponse) OrderResponse {
	items := make([]ItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, ItemPayload{Name: item.Name, Quantity: item.Quantity})
	}

	var vendorCode *string
	if o.VendorCode != nil {
		s := o.VendorCode.String()
		vendorCode = &s
	}

	return OrderResponse{
		PONumber:             o.PONumber.String(),
		VendorCode:           vendorCode,
		Status:               o.Status.String(),
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		ActualDeliveryDate:   o.ActualDeliveryDate,
		IssueDate:            o.IssueDate,
		AcknowledgmentDate:   o.AcknowledgmentDate,
		Items:                items,
		Quantity:             o.Quantity,
		QualityRating:        o.QualityRating,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError translates application errors into the API's status codes.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, order.ErrAlreadyProcessed),
		errors.Is(err, order.ErrNotYetIssued),
		errors.Is(err, order.ErrNotYetAcknowledged),
		errors.Is(err, order.ErrNotYetDelivered),
		errors.Is(err, order.ErrAlreadyCancelled),
		errors.Is(err, order.ErrAlreadyRated),
		errors.Is(err, order.ErrVendorMismatch),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
