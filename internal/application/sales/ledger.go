package sales

import (
	"github.com/pocketpos/backend/internal/domain/sales"
	"github.com/pocketpos/backend/internal/domain/shared"
	"github.com/pocketpos/backend/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// Ledger is the append-only log of completed sales. Entries are stored in
// append order, newest last; consumers wanting newest-first reverse at
// presentation time while the true index stays stable, because refunds
// address records by that index.
type Ledger struct {
	res     *persistence.Resource[[]sales.Record]
	records []sales.Record
	log     *zap.Logger
}

// NewLedger creates a sales ledger over the given document resource. Call
// LoadAll before first use.
func NewLedger(res *persistence.Resource[[]sales.Record], log *zap.Logger) *Ledger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Ledger{res: res, log: log}
}

// LoadAll reloads the record sequence from the store, substituting an empty
// sequence for a missing or corrupt document.
func (l *Ledger) LoadAll() []sales.Record {
	l.records = l.res.Load([]sales.Record{})
	return l.Records()
}

// Records returns a copy of the record sequence in append order.
func (l *Ledger) Records() []sales.Record {
	out := make([]sales.Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of recorded sales.
func (l *Ledger) Len() int {
	return len(l.records)
}

// At returns a pointer to the record at the given stable index, or
// ErrInvalidSaleIndex when out of range. The pointer addresses ledger
// state, so mutations through it (the refund flag) stick.
func (l *Ledger) At(index int) (*sales.Record, error) {
	if index < 0 || index >= len(l.records) {
		return nil, shared.ErrInvalidSaleIndex
	}
	return &l.records[index], nil
}

// Append adds a completed sale and persists. Existing entries are never
// mutated by this path.
func (l *Ledger) Append(record sales.Record) error {
	l.records = append(l.records, record)
	l.log.Info("sale recorded",
		zap.Int("index", len(l.records)-1),
		zap.String("payment", record.Payment),
		zap.String("total", record.Total.String()))
	return l.Save()
}

// Save persists the current record sequence.
func (l *Ledger) Save() error {
	return l.res.Save(l.records)
}
