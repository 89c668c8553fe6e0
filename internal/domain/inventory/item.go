package inventory

import (
	"strings"

	"github.com/pocketpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Item represents one stocked product. The trimmed name acts as the natural
// key for sale and refund matching, though uniqueness is not enforced at the
// store level.
type Item struct {
	Name    string          `json:"name"`
	Price   decimal.Decimal `json:"price"`
	Qty     int             `json:"qty"`
	Barcode string          `json:"barcode,omitempty"`
}

// NewItem builds an item from raw user input, applying the manual-entry
// coercion rules: the name must be non-empty after trimming, unparseable
// price or quantity text coerces to zero, and negative values clamp to zero.
func NewItem(name, priceText, qtyText string) (Item, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Item{}, shared.ErrInvalidInput
	}

	price := shared.ParseMoney(priceText)
	if price.IsNegative() {
		price = decimal.Zero
	}

	return Item{
		Name:  trimmed,
		Price: price,
		Qty:   shared.ParseQuantity(qtyText),
	}, nil
}

// Normalize repairs an item loaded from an externally edited document so the
// at-rest invariants hold: negative quantities and prices clamp to zero.
func (i Item) Normalize() Item {
	if i.Qty < 0 {
		i.Qty = 0
	}
	if i.Price.IsNegative() {
		i.Price = decimal.Zero
	}
	return i
}

// InStock reports whether any quantity remains on hand.
func (i Item) InStock() bool {
	return i.Qty > 0
}
