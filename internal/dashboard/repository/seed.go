package repository

import "github.com/charakka/opsboard/internal/dashboard/domain"

// SeedItems returns the fixed demo inventory a session starts with.
func SeedItems() []domain.InventoryItem {
	return []domain.InventoryItem{
		{
			Code:        "9600A1",
			Name:        "කළු 2 සෙට් ලිපි බෑග්",
			Kind:        domain.KindBundle,
			Category:    "Electronics",
			StockLevel:  8,
			MinLevel:    10,
			Price:       "9,600",
			LastUpdated: "Jul 14",
		},
		{
			Code:        "9600A5",
			Name:        "කැබින් බෑග්",
			Kind:        domain.KindBundle,
			Category:    "Furniture",
			StockLevel:  12,
			MinLevel:    15,
			Price:       "9,600",
			LastUpdated: "Aug 17",
		},
		{
			Code:        "9600A11",
			Name:        "පිපීර ෆයිල් (3)",
			Kind:        domain.KindSingle,
			Category:    "Stationery",
			StockLevel:  54,
			MinLevel:    20,
			Price:       "960",
			LastUpdated: "Sep 20",
		},
	}
}

// SeedRoutes returns the fixed route balance reference data.
func SeedRoutes() []domain.RouteBalance {
	return []domain.RouteBalance{
		{Route: "R1", Balance: 10, Returned: 3},
		{Route: "R2", Balance: 4, Returned: 1},
		{Route: "R3", Balance: 18, Returned: 5},
		{Route: "R4", Balance: 7, Returned: 2},
		{Route: "R5", Balance: 2, Returned: 0},
	}
}
