package sales

import (
	"errors"
	"time"

	appinventory "github.com/pocketpos/backend/internal/application/inventory"
	"github.com/pocketpos/backend/internal/domain/inventory"
	"github.com/pocketpos/backend/internal/domain/sales"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CartSession is the in-memory staging area for one sale in progress. The
// subtotal is maintained incrementally as lines are added; rounding happens
// only at checkout.
type CartSession struct {
	inv      *appinventory.Ledger
	ledger   *Ledger
	lines    []sales.Line
	subtotal decimal.Decimal
	log      *zap.Logger
	now      func() time.Time
}

// NewCartSession creates an empty cart over the given inventory and sales
// ledgers.
func NewCartSession(inv *appinventory.Ledger, ledger *Ledger, log *zap.Logger) *CartSession {
	if log == nil {
		log = zap.NewNop()
	}
	return &CartSession{
		inv:      inv,
		ledger:   ledger,
		subtotal: decimal.Zero,
		log:      log,
		now:      time.Now,
	}
}

// AddLine stages a quantity of the given item. The requested quantity is
// clamped to at least 1, and when the item has stock, to at most the
// quantity on hand. An item with zero stock still sells at the minimum
// clamp of 1 (see design notes on zero-stock sales). The line snapshots the
// item's current price, so later price edits do not affect it.
func (c *CartSession) AddLine(item inventory.Item, requestedQty int) sales.Line {
	qty := requestedQty
	if qty < 1 {
		qty = 1
	}
	if item.Qty > 0 && qty > item.Qty {
		qty = item.Qty
	}

	line := sales.Line{Name: item.Name, Price: item.Price, Qty: qty}
	c.lines = append(c.lines, line)
	c.subtotal = c.subtotal.Add(line.Total())
	return line
}

// Clear empties the cart and resets the subtotal.
func (c *CartSession) Clear() {
	c.lines = nil
	c.subtotal = decimal.Zero
}

// Subtotal returns the running total, unrounded.
func (c *CartSession) Subtotal() decimal.Decimal {
	return c.subtotal
}

// Lines returns a copy of the staged lines.
func (c *CartSession) Lines() []sales.Line {
	out := make([]sales.Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *CartSession) IsEmpty() bool {
	return len(c.lines) == 0
}

// ItemCount returns the total number of units staged.
func (c *CartSession) ItemCount() int {
	count := 0
	for _, l := range c.lines {
		count += l.Qty
	}
	return count
}

// Checkout converts the cart into a persisted sale record and decrements
// inventory per line, then clears the cart. An empty cart fails with
// ErrEmptyCart before anything mutates.
//
// Inventory and the sales log are two independent resources with no
// transaction across them. When the sale itself completes but one of the
// writes fails, the record is returned together with the joined save
// errors, so the caller can detect the partial failure; in-memory state
// stays authoritative for the session.
func (c *CartSession) Checkout(payment string) (sales.Record, error) {
	record, err := sales.NewRecord(payment, c.lines, c.subtotal, c.now())
	if err != nil {
		return sales.Record{}, err
	}

	for _, line := range c.lines {
		c.inv.AdjustQty(line.Name, -line.Qty, line.Price)
	}
	invErr := c.inv.Save()

	salesErr := c.ledger.Append(record)

	c.Clear()
	c.log.Info("checkout complete",
		zap.String("payment", record.Payment),
		zap.String("total", record.Total.String()),
		zap.Int("lines", len(record.Lines)))
	return record, errors.Join(invErr, salesErr)
}
