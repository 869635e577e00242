package repository

import (
	"context"
	"testing"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

func TestMemoryItemRepositoryPreservesOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository(SeedItems())

	repo.Append(ctx, domain.InventoryItem{Code: "X1", Name: "New Item"})

	items := repo.List(ctx)
	if len(items) != 4 {
		t.Fatalf("List() returned %d items, want 4", len(items))
	}
	if items[len(items)-1].Code != "X1" {
		t.Errorf("appended item is %q, want it last", items[len(items)-1].Code)
	}
	if items[0].Code != "9600A1" {
		t.Errorf("first item is %q, want seed order preserved", items[0].Code)
	}
}

func TestMemoryItemRepositoryListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository(SeedItems())

	items := repo.List(ctx)
	items[0].Code = "mutated"

	if repo.List(ctx)[0].Code != "9600A1" {
		t.Error("mutating a List() result leaked into the store")
	}
}

func TestMemoryItemRepositoryHasCode(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository(SeedItems())

	if !repo.HasCode(ctx, "9600A5") {
		t.Error("HasCode(9600A5) = false, want true")
	}
	if repo.HasCode(ctx, "missing") {
		t.Error("HasCode(missing) = true, want false")
	}

	repo.Append(ctx, domain.InventoryItem{Code: "X1"})
	if !repo.HasCode(ctx, "X1") {
		t.Error("HasCode(X1) = false after append, want true")
	}
}

func TestMemoryItemRepositoryEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryItemRepository(nil)

	if items := repo.List(ctx); len(items) != 0 {
		t.Errorf("List() on empty store returned %d items", len(items))
	}
}

func TestMemoryRouteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRouteRepository(SeedRoutes())

	routes := repo.List(ctx)
	if len(routes) != 5 {
		t.Fatalf("List() returned %d routes, want 5", len(routes))
	}
	if routes[0].Route != "R1" || routes[4].Route != "R5" {
		t.Errorf("route order = %q..%q, want R1..R5", routes[0].Route, routes[4].Route)
	}

	routes[0].Balance = 999
	if repo.List(ctx)[0].Balance != 10 {
		t.Error("mutating a List() result leaked into the store")
	}
}

func TestSeedItemsCodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, item := range SeedItems() {
		if seen[item.Code] {
			t.Errorf("duplicate seed code %q", item.Code)
		}
		seen[item.Code] = true
	}
}

func TestTracedItemRepositoryDelegates(t *testing.T) {
	ctx := context.Background()
	repo := NewTracedItemRepository(NewMemoryItemRepository(SeedItems()))

	if got := len(repo.List(ctx)); got != 3 {
		t.Fatalf("List() returned %d items, want 3", got)
	}

	repo.Append(ctx, domain.InventoryItem{Code: "T1"})
	if !repo.HasCode(ctx, "T1") {
		t.Error("HasCode(T1) = false after append through decorator")
	}
}
