package csvimport

import (
	"fmt"
	"io"
	"strings"

	"github.com/pocketpos/backend/internal/domain/inventory"
)

// RequiredInventoryHeaders is the minimum column set an inventory import
// file must expose.
var RequiredInventoryHeaders = []string{"name", "price", "qty", "barcode"}

// ReadInventory parses and validates an inventory import file, producing
// the item sequence the ledger accepts wholesale. Numeric fields follow the
// same coercion rules as manual entry (unparseable values become zero);
// rows with an empty name are rejected with a RowError and skipped.
func ReadInventory(r io.Reader) ([]inventory.Item, *Result, error) {
	parser, err := NewParser(r)
	if err != nil {
		return nil, nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, nil, err
	}
	if missing := parser.MissingHeaders(RequiredInventoryHeaders); len(missing) > 0 {
		return nil, nil, fmt.Errorf("%w: missing columns %s",
			ErrMissingHeader, strings.Join(missing, ", "))
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, nil, err
	}

	result := &Result{TotalRows: len(rows)}
	items := make([]inventory.Item, 0, len(rows))
	for _, row := range rows {
		item, err := inventory.NewItem(row.Get("name"), row.Get("price"), row.Get("qty"))
		if err != nil {
			result.Errors = append(result.Errors,
				NewRowError(row.LineNumber, "name", ErrCodeImportRequiredField, "field 'name' is required"))
			continue
		}
		item.Barcode = row.Get("barcode")
		items = append(items, item)
		result.ValidRows++
	}

	return items, result, nil
}
