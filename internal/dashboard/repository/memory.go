package repository

import (
	"context"
	"sync"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

// MemoryItemRepository holds the session's inventory items in insertion
// order. Reads return a copy so callers cannot mutate internal state.
type MemoryItemRepository struct {
	mu    sync.RWMutex
	items []domain.InventoryItem
}

// NewMemoryItemRepository creates a store pre-populated with the given
// seed items.
func NewMemoryItemRepository(seed []domain.InventoryItem) *MemoryItemRepository {
	items := make([]domain.InventoryItem, len(seed))
	copy(items, seed)
	return &MemoryItemRepository{items: items}
}

// List returns the current ordered item sequence.
func (r *MemoryItemRepository) List(_ context.Context) []domain.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.InventoryItem, len(r.items))
	copy(out, r.items)
	return out
}

// Append adds the item after all existing ones.
func (r *MemoryItemRepository) Append(_ context.Context, item domain.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
}

// HasCode reports whether an item with the given code is already stored.
func (r *MemoryItemRepository) HasCode(_ context.Context, code string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Code == code {
			return true
		}
	}
	return false
}

// MemoryRouteRepository serves the fixed route balance records.
type MemoryRouteRepository struct {
	routes []domain.RouteBalance
}

// NewMemoryRouteRepository creates a route store over the given records.
func NewMemoryRouteRepository(routes []domain.RouteBalance) *MemoryRouteRepository {
	out := make([]domain.RouteBalance, len(routes))
	copy(out, routes)
	return &MemoryRouteRepository{routes: out}
}

// List returns the route balance sequence.
func (r *MemoryRouteRepository) List(_ context.Context) []domain.RouteBalance {
	out := make([]domain.RouteBalance, len(r.routes))
	copy(out, r.routes)
	return out
}
