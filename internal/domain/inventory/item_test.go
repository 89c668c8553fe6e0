package inventory

import (
	"testing"

	"github.com/pocketpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates item from valid input", func(t *testing.T) {
		item, err := NewItem("Mug", "5.00", "3")

		require.NoError(t, err)
		assert.Equal(t, "Mug", item.Name)
		assert.Equal(t, "5", item.Price.String())
		assert.Equal(t, 3, item.Qty)
	})

	t.Run("trims the name", func(t *testing.T) {
		item, err := NewItem("  Mug  ", "1", "1")

		require.NoError(t, err)
		assert.Equal(t, "Mug", item.Name)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewItem("   ", "5.00", "3")

		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("coerces unparseable price and qty to zero", func(t *testing.T) {
		item, err := NewItem("Mug", "cheap", "many")

		require.NoError(t, err)
		assert.True(t, item.Price.IsZero())
		assert.Equal(t, 0, item.Qty)
	})

	t.Run("clamps negative price to zero", func(t *testing.T) {
		item, err := NewItem("Mug", "-2.00", "1")

		require.NoError(t, err)
		assert.True(t, item.Price.IsZero())
	})

	t.Run("accepts currency-formatted price", func(t *testing.T) {
		item, err := NewItem("Mug", "$2.50", "1")

		require.NoError(t, err)
		assert.Equal(t, "2.5", item.Price.String())
	})
}

func TestItem_Normalize(t *testing.T) {
	item := Item{Name: "Mug", Price: decimal.RequireFromString("-1"), Qty: -5}

	normalized := item.Normalize()

	assert.True(t, normalized.Price.IsZero())
	assert.Equal(t, 0, normalized.Qty)
}

func TestItem_InStock(t *testing.T) {
	assert.True(t, Item{Name: "Mug", Qty: 1}.InStock())
	assert.False(t, Item{Name: "Mug", Qty: 0}.InStock())
}
