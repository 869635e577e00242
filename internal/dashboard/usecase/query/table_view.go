package query

import (
	"context"
	"strings"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

// TableViewQuery represents the query for the searchable item table.
type TableViewQuery struct {
	Search string
}

// TableViewHandler projects the item sequence into annotated table rows.
type TableViewHandler struct {
	items domain.ItemRepository
}

// NewTableViewHandler creates a new table view handler.
func NewTableViewHandler(items domain.ItemRepository) *TableViewHandler {
	return &TableViewHandler{items: items}
}

// Handle returns the ordered subsequence of items whose name or code
// contains the search text as a case-insensitive substring. An empty
// search returns every item. The result is recomputed from the current
// store contents on every call.
func (h *TableViewHandler) Handle(ctx context.Context, q TableViewQuery) []domain.TableRow {
	items := h.items.List(ctx)
	needle := strings.ToLower(q.Search)

	rows := make([]domain.TableRow, 0, len(items))
	for _, item := range items {
		if needle != "" &&
			!strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Code), needle) {
			continue
		}
		rows = append(rows, domain.TableRow{
			InventoryItem: item,
			IsLowStock:    item.LowStock(),
			Status:        item.StatusLabel(),
		})
	}
	return rows
}
