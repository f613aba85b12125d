package parcel_test

import (
	"testing"

	"waypoint/internal/core/domain/model/kernel"
	"waypoint/internal/core/domain/model/parcel"
	"waypoint/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcel(t *testing.T) {
	id, orderID := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should create parcel", func(t *testing.T) {
		p, err := parcel.NewParcel(id, orderID, "books", decimal.RequireFromString("2.5"), parcel.Pending)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, "books", p.Description())
		assert.True(t, p.Weight().Equal(decimal.RequireFromString("2.50")))
		assert.Equal(t, parcel.Pending, p.Status())
	})

	t.Run("should require order and status", func(t *testing.T) {
		_, err := parcel.NewParcel(id, kernel.UUID{}, "", decimal.Zero, "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := parcel.NewParcel(id, orderID, "", decimal.NewFromInt(-1), parcel.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestParcel_Revise(t *testing.T) {
	orderID := kernel.NewUUID()
	p, err := parcel.NewParcel(kernel.NewUUID(), orderID, "books", decimal.NewFromInt(1), parcel.Pending)
	require.NoError(t, err)
	id := p.ID()

	require.NoError(t, p.Revise("", decimal.NewFromInt(3), parcel.Status("DAMAGED")))
	assert.Empty(t, p.Description())
	assert.True(t, p.Weight().Equal(decimal.NewFromInt(3)))
	assert.Equal(t, parcel.Status("DAMAGED"), p.Status())
	assert.True(t, p.ID().IsEqual(id))
	assert.True(t, p.OrderID().IsEqual(orderID))

	err = p.Revise("other", decimal.NewFromInt(-2), parcel.Delivered)
	require.Error(t, err)
	assert.Empty(t, p.Description(), "failed revise must not apply partially")
	assert.Equal(t, parcel.Status("DAMAGED"), p.Status())
}
