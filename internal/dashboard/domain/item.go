package domain

import "context"

// ItemKind distinguishes bundled products from single units.
type ItemKind string

const (
	KindSingle ItemKind = "Single"
	KindBundle ItemKind = "Bundle"
)

// Status labels shown in the table's status column.
const (
	StatusLowStock = "Low Stock"
	StatusInStock  = "In Stock"
)

// InventoryItem represents one product held by the store. Name may contain
// non-Latin script and is treated as opaque text. Price is kept as the
// display string it was entered with (decimal-grouped, no currency symbol).
type InventoryItem struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Kind        ItemKind `json:"kind"`
	Category    string   `json:"category"`
	StockLevel  int      `json:"stock_level"`
	MinLevel    int      `json:"min_level"`
	Price       string   `json:"price"`
	LastUpdated string   `json:"last_updated"`
}

// LowStock reports whether the on-hand quantity is strictly below the
// reorder threshold. Stock equal to the minimum is not low.
func (i InventoryItem) LowStock() bool {
	return i.StockLevel < i.MinLevel
}

// StatusLabel returns the table status text for the item.
func (i InventoryItem) StatusLabel() string {
	if i.LowStock() {
		return StatusLowStock
	}
	return StatusInStock
}

// TableRow is an inventory item annotated with its derived stock status,
// ready for rendering.
type TableRow struct {
	InventoryItem
	IsLowStock bool   `json:"is_low_stock"`
	Status     string `json:"status"`
}

// ItemRepository defines the contract for the session's item store. The
// store holds an ordered sequence: newly appended items follow all existing
// ones. Validation happens before Append is invoked, so Append itself
// cannot fail.
type ItemRepository interface {
	List(ctx context.Context) []InventoryItem
	Append(ctx context.Context, item InventoryItem)
	HasCode(ctx context.Context, code string) bool
}

// RouteRepository exposes the fixed route balance reference data.
type RouteRepository interface {
	List(ctx context.Context) []RouteBalance
}
