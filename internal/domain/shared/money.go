package shared

import (
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Persisted documents carry prices and totals as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseMoney converts free-form user text into a monetary amount.
// Currency symbols, thousands separators, and surrounding whitespace are
// stripped. Anything that still fails to parse coerces to zero so that a bad
// field never blocks the operator mid-sale.
func ParseMoney(text string) decimal.Decimal {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseQuantity converts free-form user text into a non-negative count.
// It accepts fractional input by truncating toward zero, matching the manual
// entry behavior for quantities; unparseable text coerces to zero.
func ParseQuantity(text string) int {
	d := ParseMoney(text)
	q := int(d.IntPart())
	if q < 0 {
		return 0
	}
	return q
}

// RoundMoney rounds a monetary amount to two decimal places. Rounding is
// applied only at checkout or display time, never per accumulation step.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}
