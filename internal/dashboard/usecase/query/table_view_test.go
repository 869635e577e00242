package query

import (
	"context"
	"testing"

	"github.com/charakka/opsboard/internal/dashboard/domain"
	"github.com/charakka/opsboard/internal/dashboard/repository"
)

func newItemRepo(items ...domain.InventoryItem) domain.ItemRepository {
	return repository.NewMemoryItemRepository(items)
}

func TestTableViewSearch(t *testing.T) {
	ctx := context.Background()
	repo := newItemRepo(
		domain.InventoryItem{Code: "A1", Name: "Red Bag", StockLevel: 8, MinLevel: 10},
		domain.InventoryItem{Code: "B2", Name: "Blue Bag", StockLevel: 20, MinLevel: 10},
		domain.InventoryItem{Code: "C3", Name: "Box", StockLevel: 5, MinLevel: 1},
	)
	handler := NewTableViewHandler(repo)

	t.Run("matches name case-insensitively", func(t *testing.T) {
		rows := handler.Handle(ctx, TableViewQuery{Search: "bag"})
		if len(rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(rows))
		}
		if rows[0].Code != "A1" || rows[1].Code != "B2" {
			t.Errorf("row order = %q, %q; want A1, B2", rows[0].Code, rows[1].Code)
		}
		if !rows[0].IsLowStock {
			t.Error("A1 with stock 8 of min 10 should be low stock")
		}
		if rows[1].IsLowStock {
			t.Error("B2 with stock 20 of min 10 should not be low stock")
		}
	})

	t.Run("matches code", func(t *testing.T) {
		rows := handler.Handle(ctx, TableViewQuery{Search: "c3"})
		if len(rows) != 1 || rows[0].Name != "Box" {
			t.Fatalf("search by code returned %d rows", len(rows))
		}
	})

	t.Run("empty search returns everything in order", func(t *testing.T) {
		rows := handler.Handle(ctx, TableViewQuery{})
		if len(rows) != 3 {
			t.Fatalf("got %d rows, want 3", len(rows))
		}
		for i, code := range []string{"A1", "B2", "C3"} {
			if rows[i].Code != code {
				t.Errorf("rows[%d].Code = %q, want %q", i, rows[i].Code, code)
			}
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		rows := handler.Handle(ctx, TableViewQuery{Search: "zzz"})
		if len(rows) != 0 {
			t.Errorf("got %d rows, want 0", len(rows))
		}
	})

	t.Run("status labels follow stock level", func(t *testing.T) {
		rows := handler.Handle(ctx, TableViewQuery{})
		if rows[0].Status != domain.StatusLowStock {
			t.Errorf("rows[0].Status = %q, want %q", rows[0].Status, domain.StatusLowStock)
		}
		if rows[1].Status != domain.StatusInStock {
			t.Errorf("rows[1].Status = %q, want %q", rows[1].Status, domain.StatusInStock)
		}
	})
}

func TestTableViewNonLatinNames(t *testing.T) {
	ctx := context.Background()
	handler := NewTableViewHandler(newItemRepo(repository.SeedItems()...))

	rows := handler.Handle(ctx, TableViewQuery{Search: "බෑග්"})
	if len(rows) != 2 {
		t.Fatalf("Sinhala substring search returned %d rows, want 2", len(rows))
	}
}

func TestTableViewEmptyStore(t *testing.T) {
	ctx := context.Background()
	handler := NewTableViewHandler(newItemRepo())

	if rows := handler.Handle(ctx, TableViewQuery{Search: "anything"}); len(rows) != 0 {
		t.Errorf("empty store returned %d rows", len(rows))
	}
}

func TestTableViewIsDeterministic(t *testing.T) {
	ctx := context.Background()
	handler := NewTableViewHandler(newItemRepo(repository.SeedItems()...))

	first := handler.Handle(ctx, TableViewQuery{Search: "9600"})
	second := handler.Handle(ctx, TableViewQuery{Search: "9600"})
	if len(first) != len(second) {
		t.Fatalf("repeat query returned %d then %d rows", len(first), len(second))
	}
	for i := range first {
		if first[i].Code != second[i].Code {
			t.Errorf("row %d differs across identical queries", i)
		}
	}
}
