package commands_test

import (
	"testing"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePurchaseOrderCommand_ValidInput(t *testing.T) {
	poNumber := kernel.NewCode()
	orderDate := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	expected := orderDate.AddDate(0, 0, 14)

	itemA, err := order.NewItem("steel sheet", 40)
	require.NoError(t, err)
	itemB, err := order.NewItem("rivets", 500)
	require.NoError(t, err)

	cmd, err := commands.NewCreatePurchaseOrderCommand(poNumber, orderDate, &expected, []order.Item{itemA, itemB})

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, poNumber, cmd.PONumber())
	assert.True(t, orderDate.Equal(cmd.OrderDate()))
	require.NotNil(t, cmd.ExpectedDeliveryDate())
	assert.True(t, expected.Equal(*cmd.ExpectedDeliveryDate()))
	assert.Len(t, cmd.Items(), 2)
}

func TestNewCreatePurchaseOrderCommand_NilExpectedDeliveryDate(t *testing.T) {
	item, err := order.NewItem("steel sheet", 40)
	require.NoError(t, err)

	cmd, err := commands.NewCreatePurchaseOrderCommand(kernel.NewCode(), time.Now(), nil, []order.Item{item})

	require.NoError(t, err)
	assert.Nil(t, cmd.ExpectedDeliveryDate())
}

func TestNewCreatePurchaseOrderCommand_ZeroOrderDate(t *testing.T) {
	item, err := order.NewItem("steel sheet", 40)
	require.NoError(t, err)

	_, err = commands.NewCreatePurchaseOrderCommand(kernel.NewCode(), time.Time{}, nil, []order.Item{item})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreatePurchaseOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreatePurchaseOrderCommand(kernel.NewCode(), time.Now(), nil, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreatePurchaseOrderCommand_ValidateNotConstructed(t *testing.T) {
	var cmd commands.CreatePurchaseOrderCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreatePurchaseOrderCommandIsNotConstructed)
}
