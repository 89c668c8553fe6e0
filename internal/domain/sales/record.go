package sales

import (
	"time"

	"github.com/pocketpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the wire format for sale timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// PaymentCash is the only payment method available without the payments
// upgrade.
const PaymentCash = "cash"

// Line is a snapshot of one cart line. Price is captured at the time the
// line is added, so later inventory price edits do not affect it.
type Line struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
}

// Total returns price multiplied by quantity, unrounded.
func (l Line) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Record is one completed sale. Records are append-only; the only permitted
// mutation after creation is flipping Refunded from false to true. Identity
// is the record's position in the sales ledger.
type Record struct {
	Timestamp string          `json:"timestamp"`
	Payment   string          `json:"payment"`
	Total     decimal.Decimal `json:"total"`
	Lines     []Line          `json:"lines"`
	Refunded  bool            `json:"refunded"`
}

// NewRecord builds a sale record from the lines of a checked-out cart.
// The total is the running subtotal rounded to two decimal places.
func NewRecord(payment string, lines []Line, subtotal decimal.Decimal, at time.Time) (Record, error) {
	if len(lines) == 0 {
		return Record{}, shared.ErrEmptyCart
	}
	if payment == "" {
		payment = PaymentCash
	}

	snapshot := make([]Line, len(lines))
	copy(snapshot, lines)

	return Record{
		Timestamp: at.Format(TimestampLayout),
		Payment:   payment,
		Total:     shared.RoundMoney(subtotal),
		Lines:     snapshot,
		Refunded:  false,
	}, nil
}

// MarkRefunded flips the refund flag. It fails if the record is already
// refunded, so a second refund attempt is rejected before any restock.
func (r *Record) MarkRefunded() error {
	if r.Refunded {
		return shared.ErrAlreadyRefunded
	}
	r.Refunded = true
	return nil
}

// ItemCount returns the total number of units across all lines.
func (r Record) ItemCount() int {
	count := 0
	for _, l := range r.Lines {
		count += l.Qty
	}
	return count
}

// LinesTotal recomputes the sum of line totals, unrounded. Used to verify
// the stored total against its lines.
func (r Record) LinesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range r.Lines {
		sum = sum.Add(l.Total())
	}
	return sum
}
