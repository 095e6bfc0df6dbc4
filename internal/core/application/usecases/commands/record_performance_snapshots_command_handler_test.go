package commands_test

import (
	"errors"
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/vendor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPerformanceSnapshotsCommandHandler_Handle_SkipsVendorsWithoutMetrics(t *testing.T) {
	ctx := t.Context()
	takenAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	rate := 87.5
	ratedVendor, err := vendor.RestoreVendor(
		kernel.NewCode(), "Acme Metals", "", "",
		vendor.Metrics{OnTimeDeliveryRate: &rate},
	)
	require.NoError(t, err)
	freshVendor, err := vendor.NewVendor(kernel.NewCode(), "Globex Supply", "", "")
	require.NoError(t, err)

	cmd, err := commands.NewRecordPerformanceSnapshotsCommand(takenAt)
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	snapshotRepo := new(MockSnapshotRepository)
	uow := new(MockUoW)
	uow.On("VendorRepository").Return(vendorRepo)
	uow.On("PerformanceSnapshotRepository").Return(snapshotRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		vendorRepo.On("GetAll", ctx).Return([]*vendor.Vendor{ratedVendor, freshVendor}, nil).Once(),
		snapshotRepo.On("Add", ctx, mock.AnythingOfType("*vendor.PerformanceSnapshot")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPerformanceSnapshotsCommandHandler(factory)
	snapshots, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.True(t, ratedVendor.Code().IsEqual(snapshots[0].VendorCode()))
	assert.True(t, takenAt.Equal(snapshots[0].TakenAt()))
	require.NotNil(t, snapshots[0].Metrics().OnTimeDeliveryRate)
	assert.InDelta(t, 87.5, *snapshots[0].Metrics().OnTimeDeliveryRate, 0.00001)

	vendorRepo.AssertExpectations(t)
	snapshotRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRecordPerformanceSnapshotsCommandHandler_Handle_NoVendors(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRecordPerformanceSnapshotsCommand(time.Now())
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	snapshotRepo := new(MockSnapshotRepository)
	uow := new(MockUoW)
	uow.On("VendorRepository").Return(vendorRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		vendorRepo.On("GetAll", ctx).Return([]*vendor.Vendor{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPerformanceSnapshotsCommandHandler(factory)
	snapshots, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, snapshots)
	snapshotRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestRecordPerformanceSnapshotsCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()

	rate := 50.0
	ratedVendor, err := vendor.RestoreVendor(
		kernel.NewCode(), "Acme Metals", "", "",
		vendor.Metrics{FulfillmentRate: &rate},
	)
	require.NoError(t, err)

	cmd, err := commands.NewRecordPerformanceSnapshotsCommand(time.Now())
	require.NoError(t, err)

	vendorRepo := new(MockVendorRepository)
	snapshotRepo := new(MockSnapshotRepository)
	uow := new(MockUoW)
	uow.On("VendorRepository").Return(vendorRepo)
	uow.On("PerformanceSnapshotRepository").Return(snapshotRepo)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		vendorRepo.On("GetAll", ctx).Return([]*vendor.Vendor{ratedVendor}, nil).Once(),
		snapshotRepo.On("Add", ctx, mock.AnythingOfType("*vendor.PerformanceSnapshot")).
			Return(errors.New("insert error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRecordPerformanceSnapshotsCommandHandler(factory)
	snapshots, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "insert error")
	assert.Nil(t, snapshots)
	uow.AssertNotCalled(t, "Commit", ctx)
}
