package query

import (
	"context"
	"fmt"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

// LowStockAlertsHandler builds the banner labels for items running low.
type LowStockAlertsHandler struct {
	items domain.ItemRepository
}

// NewLowStockAlertsHandler creates a new low stock alerts handler.
func NewLowStockAlertsHandler(items domain.ItemRepository) *LowStockAlertsHandler {
	return &LowStockAlertsHandler{items: items}
}

// Handle returns one "<name> (<stock> Left)" label per low-stock item, in
// store order.
func (h *LowStockAlertsHandler) Handle(ctx context.Context) []string {
	items := h.items.List(ctx)

	labels := make([]string, 0, len(items))
	for _, item := range items {
		if item.LowStock() {
			labels = append(labels, fmt.Sprintf("%s (%d Left)", item.Name, item.StockLevel))
		}
	}
	return labels
}
