package query

import (
	"context"

	"github.com/charakka/opsboard/internal/dashboard/domain"
)

// ChartSeriesQuery represents the query for the route balance chart.
type ChartSeriesQuery struct {
	Mode domain.FilterMode
}

// ChartSeriesHandler selects the portion of the route series the chart
// shows for the active filter mode.
type ChartSeriesHandler struct {
	routes domain.RouteRepository
}

// NewChartSeriesHandler creates a new chart series handler.
func NewChartSeriesHandler(routes domain.RouteRepository) *ChartSeriesHandler {
	return &ChartSeriesHandler{routes: routes}
}

// Handle returns the sliced route balance series. The mode-to-slice
// mapping is positional and carried over unchanged from the dashboard it
// replaces: "route" keeps the first three records, "customer" drops the
// first, "seeddu" drops the first two, and everything else (including
// "date") returns the full series. No record attribute is inspected.
func (h *ChartSeriesHandler) Handle(ctx context.Context, q ChartSeriesQuery) []domain.RouteBalance {
	series := h.routes.List(ctx)

	switch q.Mode {
	case domain.FilterRoute:
		if len(series) > 3 {
			series = series[:3]
		}
	case domain.FilterCustomer:
		if len(series) <= 1 {
			series = series[:0]
		} else {
			series = series[1:]
		}
	case domain.FilterSeeddu:
		if len(series) <= 2 {
			series = series[:0]
		} else {
			series = series[2:]
		}
	}
	return series
}
