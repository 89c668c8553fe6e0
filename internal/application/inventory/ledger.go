package inventory

import (
	"github.com/pocketpos/backend/internal/domain/inventory"
	"github.com/pocketpos/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger owns the ordered sequence of stocked items. Items are appended by
// manual entry, replaced wholesale by import, and mutated in quantity by
// sales and refunds; they are never deleted individually.
type Ledger struct {
	res   *persistence.Resource[[]inventory.Item]
	items []inventory.Item
	log   *zap.Logger
}

// NewLedger creates a ledger over the given document resource. Call LoadAll
// before first use.
func NewLedger(res *persistence.Resource[[]inventory.Item], log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{res: res, log: log}
}

// LoadAll reloads the item sequence from the store, substituting an empty
// sequence for a missing or corrupt document and repairing any item that
// violates the at-rest invariants.
func (l *Ledger) LoadAll() []inventory.Item {
	loaded := l.res.Load([]inventory.Item{})
	l.items = make([]inventory.Item, 0, len(loaded))
	for _, item := range loaded {
		l.items = append(l.items, item.Normalize())
	}
	return l.Items()
}

// Items returns a copy of the current item sequence.
func (l *Ledger) Items() []inventory.Item {
	out := make([]inventory.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Count returns the number of stocked items.
func (l *Ledger) Count() int {
	return len(l.items)
}

// Find returns the first item with the exact given name.
func (l *Ledger) Find(name string) (inventory.Item, bool) {
	if idx := l.indexOf(name); idx >= 0 {
		return l.items[idx], true
	}
	return inventory.Item{}, false
}

func (l *Ledger) indexOf(name string) int {
	for i := range l.items {
		if l.items[i].Name == name {
			return i
		}
	}
	return -1
}

// Add appends a manually entered item and persists. An empty trimmed name
// rejects the whole entry; unparseable numeric fields coerce to zero.
func (l *Ledger) Add(name, priceText, qtyText string) (inventory.Item, error) {
	item, err := inventory.NewItem(name, priceText, qtyText)
	if err != nil {
		return inventory.Item{}, err
	}

	l.items = append(l.items, item)
	l.log.Info("inventory item added",
		zap.String("name", item.Name),
		zap.String("price", item.Price.String()),
		zap.Int("qty", item.Qty))
	return item, l.Save()
}

// ReplaceAll swaps in an already-validated item sequence (bulk import) and
// persists it.
func (l *Ledger) ReplaceAll(items []inventory.Item) error {
	l.items = make([]inventory.Item, 0, len(items))
	for _, item := range items {
		l.items = append(l.items, item.Normalize())
	}
	l.log.Info("inventory replaced", zap.Int("count", len(l.items)))
	return l.Save()
}

// ClearAll empties the ledger and persists.
func (l *Ledger) ClearAll() error {
	l.items = []inventory.Item{}
	l.log.Info("inventory cleared")
	return l.Save()
}

// AdjustQty changes the on-hand quantity of the first item matching name by
// delta, clamping at zero. When the name is no longer stocked and delta is
// positive (a refund restocking a vanished item), a new item is synthesized
// at the given price; a missing name with a non-positive delta is a no-op.
// AdjustQty does not persist; checkout and refund save the document once
// per operation.
func (l *Ledger) AdjustQty(name string, delta int, price decimal.Decimal) {
	idx := l.indexOf(name)
	if idx < 0 {
		if delta > 0 {
			l.items = append(l.items, inventory.Item{Name: name, Price: price, Qty: delta})
		}
		return
	}

	qty := l.items[idx].Qty + delta
	if qty < 0 {
		qty = 0
	}
	l.items[idx].Qty = qty
}

// Save persists the current item sequence. Failure is logged by the store
// and returned so the shell can surface a warning; in-memory state stays
// authoritative either way.
func (l *Ledger) Save() error {
	return l.res.Save(l.items)
}
