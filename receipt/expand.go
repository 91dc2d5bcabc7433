package receipt

import "github.com/oklog/ulid/v2"

// ExpandItems replaces every multi-quantity item with quantity unit items, each
// with a fresh identity, the same unit price and an empty assignment set.
// Single-quantity items pass through unchanged, and relative order is
// preserved, so the expanded units sit contiguously where the source item was.
func ExpandItems(items []ReceiptItem) []ReceiptItem {
	out := make([]ReceiptItem, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 1 {
			out = append(out, it)
			continue
		}
		for n := 0; n < it.Quantity; n++ {
			out = append(out, ReceiptItem{
				ID:        ulid.Make().String(),
				Name:      it.Name,
				UnitPrice: it.UnitPrice,
				Quantity:  1,
			})
		}
	}
	return out
}
