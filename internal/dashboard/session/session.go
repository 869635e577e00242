// Package session holds the per-session UI state and dispatches user
// events to the dashboard's query and command handlers.
package session

import (
	"context"
	"sync"

	"github.com/charakka/opsboard/internal/dashboard/domain"
	"github.com/charakka/opsboard/internal/dashboard/usecase/command"
	"github.com/charakka/opsboard/internal/dashboard/usecase/query"
	"github.com/charakka/opsboard/internal/prefs"
	"github.com/charakka/opsboard/pkg/logger"
)

// RenderSnapshot is everything a rendering pass needs: the annotated
// table rows for the current search, the sliced chart series for the
// current filter mode, the low stock banner labels, the KPI tiles, and
// the selection state itself.
type RenderSnapshot struct {
	Rows      []domain.TableRow     `json:"rows"`
	Chart     []domain.RouteBalance `json:"chart"`
	Alerts    []string              `json:"alerts"`
	KPIs      query.KPISet          `json:"kpis"`
	Selection domain.SelectionState `json:"selection"`
}

// Session owns the selection state for one operator session and is the
// only writer to it. Projections are recomputed from the live inputs on
// every read; nothing is memoized, so a snapshot can never be stale.
type Session struct {
	mu        sync.Mutex
	selection domain.SelectionState

	tableView     *query.TableViewHandler
	chartSeries   *query.ChartSeriesHandler
	lowStock      *query.LowStockAlertsHandler
	kpis          *query.KPIHandler
	submitProduct *command.SubmitProductHandler

	prefs prefs.Store
}

// New creates a session with default selection state. The theme is
// initialized from the preference store; an absent, unreadable or
// unrecognized stored value falls back to light.
func New(ctx context.Context, items domain.ItemRepository, routes domain.RouteRepository, store prefs.Store, strictPrice bool) *Session {
	s := &Session{
		selection:     domain.DefaultSelectionState(),
		tableView:     query.NewTableViewHandler(items),
		chartSeries:   query.NewChartSeriesHandler(routes),
		lowStock:      query.NewLowStockAlertsHandler(items),
		kpis:          query.NewKPIHandler(items),
		submitProduct: command.NewSubmitProductHandler(items, strictPrice),
		prefs:         store,
	}

	stored, err := store.Theme(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Failed to read theme preference, using light")
	}
	s.selection.ThemeMode = domain.ParseThemeMode(stored)

	return s
}

// Selection returns a copy of the current selection state.
func (s *Session) Selection() domain.SelectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// SetSearchQuery updates the table search text.
func (s *Session) SetSearchQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.SearchQuery = q
}

// SetFilterMode updates the chart filter mode.
func (s *Session) SetFilterMode(mode domain.FilterMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.FilterMode = mode
}

// ToggleFilterMenu flips the filter dropdown and returns the new state.
// The dropdown and the add modal toggle independently.
func (s *Session) ToggleFilterMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.IsFilterMenuOpen = !s.selection.IsFilterMenuOpen
	return s.selection.IsFilterMenuOpen
}

// ToggleAddModal flips the product creation modal and returns the new
// state.
func (s *Session) ToggleAddModal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.IsAddModalOpen = !s.selection.IsAddModalOpen
	return s.selection.IsAddModalOpen
}

// ToggleSidebar flips the sidebar collapse flag and returns the new
// state. The flag is session-scoped and never persisted.
func (s *Session) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.IsSidebarCollapsed = !s.selection.IsSidebarCollapsed
	return s.selection.IsSidebarCollapsed
}

// SetTheme applies the theme to the session and synchronously hands it to
// the preference store. The in-memory state is updated even when the
// store write fails; the error is returned so the caller can surface it.
func (s *Session) SetTheme(ctx context.Context, mode domain.ThemeMode) error {
	mode = domain.ParseThemeMode(string(mode))

	s.mu.Lock()
	s.selection.ThemeMode = mode
	s.mu.Unlock()

	if err := s.prefs.SetTheme(ctx, string(mode)); err != nil {
		logger.Error(ctx).Err(err).Str("theme", string(mode)).Msg("Failed to persist theme preference")
		return err
	}
	return nil
}

// SubmitNewProduct runs the draft through the mutation gateway. On
// success the creation modal closes; on a validation or duplicate-code
// failure it stays open and the structured error goes back to the caller
// for display.
func (s *Session) SubmitNewProduct(ctx context.Context, cmd command.SubmitProductCommand) (*domain.InventoryItem, error) {
	item, err := s.submitProduct.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.selection.IsAddModalOpen = false
	s.mu.Unlock()

	logger.Info(ctx).
		Str("code", item.Code).
		Str("category", item.Category).
		Int("stock_level", item.StockLevel).
		Msg("Product added")
	return item, nil
}

// TableRows returns the table projection for the current search text.
func (s *Session) TableRows(ctx context.Context) []domain.TableRow {
	return s.tableView.Handle(ctx, query.TableViewQuery{Search: s.Selection().SearchQuery})
}

// ChartSeries returns the chart projection for the current filter mode.
func (s *Session) ChartSeries(ctx context.Context) []domain.RouteBalance {
	return s.chartSeries.Handle(ctx, query.ChartSeriesQuery{Mode: s.Selection().FilterMode})
}

// Alerts returns the low stock banner labels.
func (s *Session) Alerts(ctx context.Context) []string {
	return s.lowStock.Handle(ctx)
}

// KPIs returns the KPI tile values.
func (s *Session) KPIs(ctx context.Context) query.KPISet {
	return s.kpis.Handle(ctx)
}

// Snapshot assembles the full rendering payload from the current inputs.
func (s *Session) Snapshot(ctx context.Context) RenderSnapshot {
	selection := s.Selection()
	return RenderSnapshot{
		Rows:      s.tableView.Handle(ctx, query.TableViewQuery{Search: selection.SearchQuery}),
		Chart:     s.chartSeries.Handle(ctx, query.ChartSeriesQuery{Mode: selection.FilterMode}),
		Alerts:    s.lowStock.Handle(ctx),
		KPIs:      s.kpis.Handle(ctx),
		Selection: selection,
	}
}
