package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_PendingOrderSkipsVendor(t *testing.T) {
	ctx := t.Context()
	testOrder := newPendingOrder(t, time.Now())

	cmd, err := commands.NewCancelOrderCommand(testOrder.PONumber(), kernel.NewCode())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.PONumber()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.PurchaseOrder")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Cancelled, updated.Status())

	// A pending order has no vendor, so no vendor row is read or written.
	uow.AssertNotCalled(t, "VendorRepository")
	vendorRepo.AssertNotCalled(t, "Get", ctx, mock.Anything)
	vendorRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_IssuedOrderRecomputesMetrics(t *testing.T) {
	ctx := t.Context()
	orderDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testVendor, err := vendor.NewVendor(kernel.NewCode(), "Acme Metals", "", "")
	require.NoError(t, err)
	testOrder := newPendingOrder(t, orderDate)
	require.NoError(t, testOrder.Issue(testVendor.Code(), orderDate.AddDate(0, 0, 1)))

	cmd, err := commands.NewCancelOrderCommand(testOrder.PONumber(), testVendor.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	vendorRepo := new(MockVendorRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("VendorRepository").Return(vendorRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.PONumber()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.PurchaseOrder")).Return(nil).Once(),
		vendorRepo.On("Get", ctx, testVendor.Code()).Return(testVendor, nil).Once(),
		orderRepo.On("GetAllByVendor", ctx, testVendor.Code()).
			Return([]*order.PurchaseOrder{testOrder}, nil).
			Once(),
		vendorRepo.On("Update", ctx, mock.AnythingOfType("*vendor.Vendor")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Cancelled, updated.Status())

	// The cancelled order keeps its issue date, so it still counts in the
	// fulfillment denominator and the rate drops to 0.
	require.NotNil(t, testVendor.FulfillmentRate())
	assert.InDelta(t, 0.0, *testVendor.FulfillmentRate(), 0.00001)

	orderRepo.AssertExpectations(t)
	vendorRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderFails(t *testing.T) {
	ctx := t.Context()
	orderDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testVendor, err := vendor.NewVendor(kernel.NewCode(), "Acme Metals", "", "")
	require.NoError(t, err)
	testOrder := newAcknowledgedOrder(t, testVendor.Code(), orderDate)
	require.NoError(t, testOrder.Deliver(testVendor.Code(), orderDate.AddDate(0, 0, 10)))

	cmd, err := commands.NewCancelOrderCommand(testOrder.PONumber(), testVendor.Code())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetForUpdate", ctx, testOrder.PONumber()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrAlreadyProcessed)
	assert.Nil(t, updated)
	assert.Equal(t, order.Delivered, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
