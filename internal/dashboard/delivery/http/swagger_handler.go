package http

import (
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// RegisterSwaggerDocs serves the Swagger UI for the dashboard API.
func RegisterSwaggerDocs(router *mux.Router) {
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
}

// GetSnapshot godoc
// @Summary Full render snapshot
// @Description Table rows, chart series, low stock alerts, KPIs and selection state in one payload
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetSnapshotDoc() {}

// GetTable godoc
// @Summary Table rows for the current search
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/dashboard/table [get]
func (h *DashboardHandler) GetTableDoc() {}

// GetChart godoc
// @Summary Chart series for the current filter mode
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/dashboard/chart [get]
func (h *DashboardHandler) GetChartDoc() {}

// GetAlerts godoc
// @Summary Low stock alert labels
// @Tags Dashboard
// @Produce json
// @Success 200 {object} object{success=bool,data=array}
// @Router /api/dashboard/alerts [get]
func (h *DashboardHandler) GetAlertsDoc() {}

// SetSearch godoc
// @Summary Update the table search text
// @Tags Events
// @Accept json
// @Produce json
// @Param request body object{query=string} true "Search text"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/dashboard/search [post]
func (h *DashboardHandler) SetSearchDoc() {}

// SetFilter godoc
// @Summary Update the chart filter mode
// @Tags Events
// @Accept json
// @Produce json
// @Param request body object{mode=string} true "Filter mode: all, date, route, customer or seeddu"
// @Success 200 {object} object{success=bool,data=array}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/dashboard/filter [post]
func (h *DashboardHandler) SetFilterDoc() {}

// SetTheme godoc
// @Summary Switch between light and dark theme
// @Description The theme is applied to the session and persisted to the preference store
// @Tags Events
// @Accept json
// @Produce json
// @Param request body object{theme=string} true "light or dark"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/dashboard/theme [post]
func (h *DashboardHandler) SetThemeDoc() {}

// Toggle godoc
// @Summary Flip an independent UI flag
// @Tags Events
// @Produce json
// @Param flag path string true "filter-menu, add-modal or sidebar"
// @Success 200 {object} object{success=bool,data=object{open=bool}}
// @Failure 400 {object} object{success=bool,error=string}
// @Router /api/dashboard/toggle/{flag} [post]
func (h *DashboardHandler) ToggleDoc() {}

// SubmitProduct godoc
// @Summary Submit a new product draft
// @Description Appends the product when code, name, category and price are present; otherwise reports the missing fields
// @Tags Products
// @Accept json
// @Produce json
// @Param request body object{code=string,name=string,kind=string,category=string,stock_level=int,min_level=int,price=string} true "Product draft"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 409 {object} object{success=bool,error=string}
// @Failure 422 {object} object{success=bool,error=string,fields=object}
// @Router /api/products [post]
func (h *DashboardHandler) SubmitProductDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Router /health [get]
func (h *DashboardHandler) HealthCheckDoc() {}
