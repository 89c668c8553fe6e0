package sales

import (
	"errors"

	appinventory "github.com/pocketpos/backend/internal/application/inventory"
	"github.com/pocketpos/backend/internal/domain/sales"
	"go.uber.org/zap"
)

// RefundProcessor reverses a completed sale: every line is restocked into
// inventory and the record is marked refunded in place. Refunds are
// idempotent by construction, a second attempt on the same index is
// rejected before any restock happens.
type RefundProcessor struct {
	inv *appinventory.Ledger
	log *zap.Logger
}

// NewRefundProcessor creates a refund processor over the inventory ledger.
func NewRefundProcessor(inv *appinventory.Ledger, log *zap.Logger) *RefundProcessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &RefundProcessor{inv: inv, log: log}
}

// Refund refunds the sale at the given stable index in the ledger. It fails
// with ErrInvalidSaleIndex when the index is out of range and with
// ErrAlreadyRefunded when the record's flag is already set; neither failure
// mutates anything. On success each line is restocked (synthesizing items
// no longer in inventory) and both documents are persisted.
//
// Like checkout, the two persists are not atomic; save failures are joined
// into the returned error while the refund itself stands in memory.
func (p *RefundProcessor) Refund(ledger *Ledger, index int) (sales.Record, error) {
	record, err := ledger.At(index)
	if err != nil {
		return sales.Record{}, err
	}
	if err := record.MarkRefunded(); err != nil {
		return sales.Record{}, err
	}

	for _, line := range record.Lines {
		p.inv.AdjustQty(line.Name, line.Qty, line.Price)
	}
	invErr := p.inv.Save()
	salesErr := ledger.Save()

	p.log.Info("sale refunded",
		zap.Int("index", index),
		zap.String("total", record.Total.String()))
	return *record, errors.Join(invErr, salesErr)
}
