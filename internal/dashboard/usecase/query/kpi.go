package query

import (
	"context"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

// KPISet carries the values for the dashboard's KPI tiles and insight
// bars. Item counts derive from the store; the ratio figures are the fixed
// demo percentages the dashboard has always shown, pending real sales and
// delivery feeds.
type KPISet struct {
	TotalItems          int    `json:"total_items"`
	DistinctProducts    int    `json:"distinct_products"`
	LowStockItems       int    `json:"low_stock_items"`
	InventoryValue      string `json:"inventory_value"`
	FastMovingPct       int    `json:"fast_moving_pct"`
	SlowMovingPct       int    `json:"slow_moving_pct"`
	SalesCashPct        int    `json:"sales_cash_pct"`
	SalesSeedduPct      int    `json:"sales_seeddu_pct"`
	DeliverySoldPct     int    `json:"delivery_sold_pct"`
	DeliveryReturnedPct int    `json:"delivery_returned_pct"`
	DamagedPct          int    `json:"damaged_pct"`
	RepairedPct         int    `json:"repaired_pct"`
}

// KPIHandler computes the KPI tile values from the current store.
type KPIHandler struct {
	items domain.ItemRepository
}

// NewKPIHandler creates a new KPI handler.
func NewKPIHandler(items domain.ItemRepository) *KPIHandler {
	return &KPIHandler{items: items}
}

// Handle returns the current KPI set.
func (h *KPIHandler) Handle(ctx context.Context) KPISet {
	items := h.items.List(ctx)

	total := 0
	lowStock := 0
	for _, item := range items {
		total += item.StockLevel
		if item.LowStock() {
			lowStock++
		}
	}

	return KPISet{
		TotalItems:          total,
		DistinctProducts:    len(items),
		LowStockItems:       lowStock,
		InventoryValue:      "587.3M",
		FastMovingPct:       87,
		SlowMovingPct:       13,
		SalesCashPct:        68,
		SalesSeedduPct:      32,
		DeliverySoldPct:     88,
		DeliveryReturnedPct: 12,
		DamagedPct:          15,
		RepairedPct:         10,
	}
}
