package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

var tracer = otel.Tracer("dashboard-repository")

// TracedItemRepository wraps an ItemRepository with tracing. With no
// tracer provider registered the spans are no-ops.
type TracedItemRepository struct {
	inner domain.ItemRepository
}

// NewTracedItemRepository creates a tracing decorator over the given
// store.
func NewTracedItemRepository(inner domain.ItemRepository) *TracedItemRepository {
	return &TracedItemRepository{inner: inner}
}

// List with tracing.
func (r *TracedItemRepository) List(ctx context.Context) []domain.InventoryItem {
	ctx, span := tracer.Start(ctx, "repository.List")
	defer span.End()

	items := r.inner.List(ctx)
	span.SetAttributes(attribute.Int("items.count", len(items)))
	return items
}

// Append with tracing.
func (r *TracedItemRepository) Append(ctx context.Context, item domain.InventoryItem) {
	ctx, span := tracer.Start(ctx, "repository.Append",
		trace.WithAttributes(
			attribute.String("item.code", item.Code),
			attribute.String("item.category", item.Category),
			attribute.Int("item.stock_level", item.StockLevel),
		),
	)
	defer span.End()

	r.inner.Append(ctx, item)
}

// HasCode with tracing.
func (r *TracedItemRepository) HasCode(ctx context.Context, code string) bool {
	ctx, span := tracer.Start(ctx, "repository.HasCode",
		trace.WithAttributes(attribute.String("item.code", code)),
	)
	defer span.End()

	found := r.inner.HasCode(ctx, code)
	span.SetAttributes(attribute.Bool("item.found", found))
	return found
}
