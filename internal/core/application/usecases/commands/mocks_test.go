package commands_test

import (
	"context"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/vendor"
	"procurement/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the command handler tests.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.PurchaseOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, poNumber kernel.Code) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, poNumber kernel.Code) (*order.PurchaseOrder, error) {
	args := m.Called(ctx, poNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.PurchaseOrder), args.Error(1)
}

func (m *MockOrderRepository) GetAllByVendor(
	ctx context.Context,
	vendorCode kernel.Code,
) ([]*order.PurchaseOrder, error) {
	args := m.Called(ctx, vendorCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.PurchaseOrder), args.Error(1)
}

type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, v *vendor.Vendor) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, code kernel.Code) (*vendor.Vendor, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vendor.Vendor), args.Error(1)
}

func (m *MockVendorRepository) GetAll(ctx context.Context) ([]*vendor.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vendor.Vendor), args.Error(1)
}

type MockSnapshotRepository struct{ mock.Mock }

func (m *MockSnapshotRepository) Add(ctx context.Context, s *vendor.PerformanceSnapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// MockUoW satisfies every commands UoW flavor; a test wires up only the
// repositories its handler touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) VendorRepository() ports.VendorRepository {
	args := m.Called()
	return args.Get(0).(ports.VendorRepository)
}

func (m *MockUoW) PerformanceSnapshotRepository() ports.PerformanceSnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.PerformanceSnapshotRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockVendorUoWFactory struct{ mock.Mock }

func (m *MockVendorUoWFactory) Create() commands.VendorUoW {
	args := m.Called()
	return args.Get(0).(commands.VendorUoW)
}

type MockSnapshotUoWFactory struct{ mock.Mock }

func (m *MockSnapshotUoWFactory) Create() commands.SnapshotUoW {
	args := m.Called()
	return args.Get(0).(commands.SnapshotUoW)
}
