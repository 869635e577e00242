package domain

// FilterMode selects which portion of the route balance series the chart
// shows.
type FilterMode string

const (
	FilterAll      FilterMode = "all"
	FilterDate     FilterMode = "date"
	FilterRoute    FilterMode = "route"
	FilterCustomer FilterMode = "customer"
	FilterSeeddu   FilterMode = "seeddu"
)

// ParseFilterMode maps a raw string to a filter mode. Unknown values fall
// back to FilterAll, matching the chart's full-series fallback.
func ParseFilterMode(s string) FilterMode {
	switch FilterMode(s) {
	case FilterDate, FilterRoute, FilterCustomer, FilterSeeddu:
		return FilterMode(s)
	default:
		return FilterAll
	}
}

// ThemeMode is the two-valued display theme.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode normalizes a stored or submitted theme value. Anything
// that is not exactly "dark" or "light" (including absent values) becomes
// light.
func ParseThemeMode(s string) ThemeMode {
	if ThemeMode(s) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// SelectionState is the session-scoped UI state every view must respect.
// The boolean flags are independent toggles, not a mutually exclusive
// group: the add modal and the filter menu can be open at the same time.
type SelectionState struct {
	SearchQuery        string     `json:"search_query"`
	FilterMode         FilterMode `json:"filter_mode"`
	IsFilterMenuOpen   bool       `json:"is_filter_menu_open"`
	IsAddModalOpen     bool       `json:"is_add_modal_open"`
	IsSidebarCollapsed bool       `json:"is_sidebar_collapsed"`
	ThemeMode          ThemeMode  `json:"theme_mode"`
}

// DefaultSelectionState returns the state a fresh session starts with.
// The theme is filled in separately from the preference store.
func DefaultSelectionState() SelectionState {
	return SelectionState{
		FilterMode: FilterAll,
		ThemeMode:  ThemeLight,
	}
}
