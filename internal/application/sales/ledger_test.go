package sales

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pocketpos/backend/internal/domain/sales"
	"github.com/pocketpos/backend/internal/domain/shared"
	"github.com/pocketpos/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSalesLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales_log.json")
	ledger := NewLedger(persistence.NewResource[[]sales.Record](path, zap.NewNop()), zap.NewNop())
	ledger.LoadAll()
	return ledger, path
}

func makeRecord(t *testing.T, total string) sales.Record {
	t.Helper()
	amount := decimal.RequireFromString(total)
	record, err := sales.NewRecord("cash",
		[]sales.Line{{Name: "Mug", Price: amount, Qty: 1}}, amount, time.Now())
	require.NoError(t, err)
	return record
}

func TestSalesLedger_LoadAll(t *testing.T) {
	t.Run("missing document yields empty ledger", func(t *testing.T) {
		ledger, _ := newSalesLedger(t)

		assert.Empty(t, ledger.Records())
		assert.Equal(t, 0, ledger.Len())
	})

	t.Run("corrupt document yields empty ledger", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sales_log.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
		ledger := NewLedger(persistence.NewResource[[]sales.Record](path, zap.NewNop()), zap.NewNop())

		assert.Empty(t, ledger.LoadAll())
	})
}

func TestSalesLedger_Append(t *testing.T) {
	ledger, path := newSalesLedger(t)

	require.NoError(t, ledger.Append(makeRecord(t, "5")))
	require.NoError(t, ledger.Append(makeRecord(t, "7")))

	// Append order is preserved, newest last.
	records := ledger.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "5", records[0].Total.String())
	assert.Equal(t, "7", records[1].Total.String())

	// Indices stay stable across a reload.
	reloaded := NewLedger(persistence.NewResource[[]sales.Record](path, zap.NewNop()), zap.NewNop())
	reloaded.LoadAll()
	first, err := reloaded.At(0)
	require.NoError(t, err)
	assert.Equal(t, "5", first.Total.String())
}

func TestSalesLedger_At(t *testing.T) {
	ledger, _ := newSalesLedger(t)
	require.NoError(t, ledger.Append(makeRecord(t, "5")))

	t.Run("valid index", func(t *testing.T) {
		record, err := ledger.At(0)

		require.NoError(t, err)
		assert.Equal(t, "5", record.Total.String())
	})

	t.Run("out of range", func(t *testing.T) {
		for _, index := range []int{-1, 1} {
			_, err := ledger.At(index)
			assert.ErrorIs(t, err, shared.ErrInvalidSaleIndex)
		}
	})
}
