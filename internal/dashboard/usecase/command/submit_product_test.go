package command

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/charakka/opsboard/internal/dashboard/domain"
	"github.com/charakka/opsboard/internal/dashboard/repository"
)

func fixedClock() time.Time {
	return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
}

func newHandler(strictPrice bool, seed ...domain.InventoryItem) (*SubmitProductHandler, *repository.MemoryItemRepository) {
	repo := repository.NewMemoryItemRepository(seed)
	h := NewSubmitProductHandler(repo, strictPrice)
	h.now = fixedClock
	return h, repo
}

func TestSubmitProductSuccess(t *testing.T) {
	ctx := context.Background()
	h, repo := newHandler(false, repository.SeedItems()...)

	before := len(repo.List(ctx))
	item, err := h.Handle(ctx, SubmitProductCommand{
		Code:     "NEW1",
		Name:     "Travel Bag",
		Category: "Luggage",
		Price:    "4,500",
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}

	items := repo.List(ctx)
	if len(items) != before+1 {
		t.Fatalf("store grew by %d, want 1", len(items)-before)
	}
	if items[len(items)-1].Code != "NEW1" {
		t.Error("new item is not the last element")
	}
	if item.Kind != domain.KindSingle {
		t.Errorf("Kind = %q, want default %q", item.Kind, domain.KindSingle)
	}
	if item.StockLevel != 0 || item.MinLevel != 0 {
		t.Errorf("stock/min = %d/%d, want 0/0", item.StockLevel, item.MinLevel)
	}
	if item.LastUpdated != "Sep 1" {
		t.Errorf("LastUpdated = %q, want %q", item.LastUpdated, "Sep 1")
	}
}

func TestSubmitProductKeepsExplicitFields(t *testing.T) {
	ctx := context.Background()
	h, _ := newHandler(false)

	item, err := h.Handle(ctx, SubmitProductCommand{
		Code:       "NEW2",
		Name:       "Crate",
		Kind:       domain.KindBundle,
		Category:   "Storage",
		StockLevel: 7,
		MinLevel:   3,
		Price:      "120",
	})
	if err != nil {
		t.Fatalf("Handle() returned error: %v", err)
	}
	if item.Kind != domain.KindBundle || item.StockLevel != 7 || item.MinLevel != 3 {
		t.Errorf("explicit fields were not kept: %+v", item)
	}
}

func TestSubmitProductMissingFields(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cmd     SubmitProductCommand
		missing []string
	}{
		{
			"empty code",
			SubmitProductCommand{Name: "X", Category: "Y", Price: "100"},
			[]string{"code"},
		},
		{
			"empty name",
			SubmitProductCommand{Code: "C", Category: "Y", Price: "100"},
			[]string{"name"},
		},
		{
			"empty category",
			SubmitProductCommand{Code: "C", Name: "X", Price: "100"},
			[]string{"category"},
		},
		{
			"empty price",
			SubmitProductCommand{Code: "C", Name: "X", Category: "Y"},
			[]string{"price"},
		},
		{
			"everything empty",
			SubmitProductCommand{},
			[]string{"code", "name", "category", "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, repo := newHandler(false, repository.SeedItems()...)
			before := len(repo.List(ctx))

			_, err := h.Handle(ctx, tt.cmd)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Handle() error = %v, want *ValidationError", err)
			}
			if !reflect.DeepEqual(verr.Missing, tt.missing) {
				t.Errorf("Missing = %v, want %v", verr.Missing, tt.missing)
			}
			if len(repo.List(ctx)) != before {
				t.Error("store changed on a rejected draft")
			}
		})
	}
}

func TestSubmitProductDuplicateCode(t *testing.T) {
	ctx := context.Background()
	h, repo := newHandler(false, repository.SeedItems()...)
	before := len(repo.List(ctx))

	_, err := h.Handle(ctx, SubmitProductCommand{
		Code:     "9600A1",
		Name:     "Copy",
		Category: "Electronics",
		Price:    "9,600",
	})

	var derr *domain.DuplicateCodeError
	if !errors.As(err, &derr) {
		t.Fatalf("Handle() error = %v, want *DuplicateCodeError", err)
	}
	if derr.Code != "9600A1" {
		t.Errorf("duplicate code = %q, want 9600A1", derr.Code)
	}
	if len(repo.List(ctx)) != before {
		t.Error("store changed on a duplicate code")
	}
}

func TestSubmitProductNegativeLevels(t *testing.T) {
	ctx := context.Background()
	h, repo := newHandler(false)

	_, err := h.Handle(ctx, SubmitProductCommand{
		Code: "N1", Name: "X", Category: "Y", Price: "10",
		StockLevel: -1, MinLevel: -2,
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Handle() error = %v, want *ValidationError", err)
	}
	if !reflect.DeepEqual(verr.Invalid, []string{"stock_level", "min_level"}) {
		t.Errorf("Invalid = %v", verr.Invalid)
	}
	if len(repo.List(ctx)) != 0 {
		t.Error("store changed on negative levels")
	}
}

func TestSubmitProductPriceValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("lenient mode accepts any non-empty price", func(t *testing.T) {
		h, _ := newHandler(false)
		if _, err := h.Handle(ctx, SubmitProductCommand{
			Code: "P1", Name: "X", Category: "Y", Price: "not-a-number",
		}); err != nil {
			t.Errorf("lenient mode rejected price: %v", err)
		}
	})

	t.Run("strict mode rejects malformed prices", func(t *testing.T) {
		h, repo := newHandler(true)
		_, err := h.Handle(ctx, SubmitProductCommand{
			Code: "P2", Name: "X", Category: "Y", Price: "12,34",
		})

		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("Handle() error = %v, want *ValidationError", err)
		}
		if !reflect.DeepEqual(verr.Invalid, []string{"price"}) {
			t.Errorf("Invalid = %v, want [price]", verr.Invalid)
		}
		if len(repo.List(ctx)) != 0 {
			t.Error("store changed on a malformed price")
		}
	})

	t.Run("strict mode accepts grouped and plain magnitudes", func(t *testing.T) {
		h, _ := newHandler(true)
		for i, price := range []string{"9,600", "960", "1,250.50", "0.99"} {
			code := "OK" + string(rune('0'+i))
			if _, err := h.Handle(ctx, SubmitProductCommand{
				Code: code, Name: "X", Category: "Y", Price: price,
			}); err != nil {
				t.Errorf("strict mode rejected %q: %v", price, err)
			}
		}
	})
}
