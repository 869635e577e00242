package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/charakka/opsboard/internal/dashboard/domain"
	"github.com/charakka/opsboard/internal/dashboard/session"
	"github.com/charakka/opsboard/internal/dashboard/usecase/command"
	"github.com/charakka/opsboard/pkg/logger"
)

// DashboardHandler exposes the session's projections and accepts the user
// events the rendering layer is allowed to send: search text, filter mode,
// the three flag toggles, theme changes, and product submissions.
type DashboardHandler struct {
	session *session.Session

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	lowStockItems  prometheus.Gauge
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(sess *session.Session) *DashboardHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of requests to the dashboard",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_request_duration_seconds",
			Help:    "Duration of dashboard requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	lowStockItems := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_low_stock_items",
			Help: "Number of items currently below their reorder threshold",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(lowStockItems)

	return &DashboardHandler{
		session:        sess,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		lowStockItems:  lowStockItems,
	}
}

// Response is the JSON envelope for every dashboard endpoint.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Fields  interface{} `json:"fields,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with the request counter and latency
// histogram.
func (h *DashboardHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// GetSnapshot handles GET /api/dashboard
func (h *DashboardHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.session.Snapshot(r.Context())
	h.lowStockItems.Set(float64(snap.KPIs.LowStockItems))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    snap,
	})
}

// GetTable handles GET /api/dashboard/table
func (h *DashboardHandler) GetTable(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.session.TableRows(r.Context()),
	})
}

// GetChart handles GET /api/dashboard/chart
func (h *DashboardHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.session.ChartSeries(r.Context()),
	})
}

// GetAlerts handles GET /api/dashboard/alerts
func (h *DashboardHandler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.session.Alerts(r.Context()),
	})
}

// SetSearch handles POST /api/dashboard/search
func (h *DashboardHandler) SetSearch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.session.SetSearchQuery(req.Query)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.session.TableRows(r.Context()),
	})
}

// SetFilter handles POST /api/dashboard/filter
func (h *DashboardHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.session.SetFilterMode(domain.ParseFilterMode(req.Mode))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.session.ChartSeries(r.Context()),
	})
}

// SetTheme handles POST /api/dashboard/theme
func (h *DashboardHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	mode := domain.ParseThemeMode(req.Theme)
	if err := h.session.SetTheme(r.Context(), mode); err != nil {
		// The session already applied the theme; only persistence failed.
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Theme applied but not persisted",
			Data:    h.session.Selection(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    h.session.Selection(),
	})
}

// Toggle handles POST /api/dashboard/toggle/{flag}
func (h *DashboardHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var open bool
	switch mux.Vars(r)["flag"] {
	case "filter-menu":
		open = h.session.ToggleFilterMenu()
	case "add-modal":
		open = h.session.ToggleAddModal()
	case "sidebar":
		open = h.session.ToggleSidebar()
	default:
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Unknown toggle flag",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]bool{
			"open": open,
		},
	})
}

// SubmitProduct handles POST /api/products
func (h *DashboardHandler) SubmitProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code       string `json:"code"`
		Name       string `json:"name"`
		Kind       string `json:"kind"`
		Category   string `json:"category"`
		StockLevel int    `json:"stock_level"`
		MinLevel   int    `json:"min_level"`
		Price      string `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.SubmitProductCommand{
		Code:       req.Code,
		Name:       req.Name,
		Kind:       domain.ItemKind(req.Kind),
		Category:   req.Category,
		StockLevel: req.StockLevel,
		MinLevel:   req.MinLevel,
		Price:      req.Price,
	}

	item, err := h.session.SubmitNewProduct(r.Context(), cmd)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			respondJSON(w, http.StatusUnprocessableEntity, Response{
				Success: false,
				Error:   verr.Error(),
				Fields:  verr,
			})
			return
		}
		var derr *domain.DuplicateCodeError
		if errors.As(err, &derr) {
			respondJSON(w, http.StatusConflict, Response{
				Success: false,
				Error:   derr.Error(),
			})
			return
		}
		logger.Error(r.Context()).Err(err).Msg("Failed to submit product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to submit product",
		})
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product added successfully",
		Data:    item,
	})
}

// RegisterRoutes registers all dashboard routes.
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/dashboard", h.metricsMiddleware("/api/dashboard", h.GetSnapshot)).Methods("GET")
	router.HandleFunc("/api/dashboard/table", h.metricsMiddleware("/api/dashboard/table", h.GetTable)).Methods("GET")
	router.HandleFunc("/api/dashboard/chart", h.metricsMiddleware("/api/dashboard/chart", h.GetChart)).Methods("GET")
	router.HandleFunc("/api/dashboard/alerts", h.metricsMiddleware("/api/dashboard/alerts", h.GetAlerts)).Methods("GET")
	router.HandleFunc("/api/dashboard/search", h.metricsMiddleware("/api/dashboard/search", h.SetSearch)).Methods("POST")
	router.HandleFunc("/api/dashboard/filter", h.metricsMiddleware("/api/dashboard/filter", h.SetFilter)).Methods("POST")
	router.HandleFunc("/api/dashboard/theme", h.metricsMiddleware("/api/dashboard/theme", h.SetTheme)).Methods("POST")
	router.HandleFunc("/api/dashboard/toggle/{flag}", h.metricsMiddleware("/api/dashboard/toggle", h.Toggle)).Methods("POST")
	router.HandleFunc("/api/products", h.metricsMiddleware("/api/products", h.SubmitProduct)).Methods("POST")
}

// RegisterHealthCheck registers the health check endpoint.
func (h *DashboardHandler) RegisterHealthCheck(router *mux.Router) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Dashboard is healthy",
		})
	}).Methods("GET")
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
