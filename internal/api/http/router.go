package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"mobility-rental-backend/internal/errs"
	"mobility-rental-backend/internal/logger"
	"mobility-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// maxBodyBytes caps every JSON request body
const maxBodyBytes = 1 << 20

// Services bundles the engine operations the HTTP adapter exposes
type Services struct {
	Inventory service.InventoryService
	Stock     service.StockService
	Rentals   service.RentalService
}

// NewRouter builds the /api/v1 router over svcs
func NewRouter(svcs Services) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger)
	RegisterRoutes(router, svcs)
	return router
}

// RegisterRoutes registers the rental engine endpoints on router
func RegisterRoutes(router *mux.Router, svcs Services) {
	api := router.PathPrefix("/api/v1").Subrouter()

	items := NewItemHandler(svcs.Inventory, svcs.Stock)
	api.HandleFunc("/stock", items.HandleStock).Methods("GET")
	api.HandleFunc("/dashboard", items.HandleDashboard).Methods("GET")
	api.HandleFunc("/items", items.HandleListItems).Methods("GET")
	api.HandleFunc("/items", items.HandleCreateItem).Methods("POST")
	api.HandleFunc("/items/{id}", items.HandleAdjustItem).Methods("PATCH")
	api.HandleFunc("/items/{id}", items.HandleDeleteItem).Methods("DELETE")

	rentals := NewRentalHandler(svcs.Rentals)
	api.HandleFunc("/rentals", rentals.HandleCreateRental).Methods("POST")
	api.HandleFunc("/rentals", rentals.HandleListRentals).Methods("GET")
	api.HandleFunc("/rentals/{id}/return", rentals.HandleReturnRental).Methods("POST")
	api.HandleFunc("/rentals/{id}", rentals.HandleDeleteRental).Methods("DELETE")

	returns := NewReturnHandler(svcs.Rentals)
	api.HandleFunc("/returns/lookup", returns.HandleLookup).Methods("POST")
	api.HandleFunc("/returns/quick", returns.HandleQuickReturn).Methods("POST")
	api.HandleFunc("/history", returns.HandleClearHistory).Methods("DELETE")
	api.HandleFunc("/history/prune", returns.HandlePruneHistory).Methods("POST")
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps an engine error kind onto an HTTP status
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{Error: err.Error()}
	status := http.StatusInternalServerError

	switch {
	case errs.Is(err, errs.ErrValidation):
		status = http.StatusBadRequest
		resp.Field = errs.FieldOf(err)
	case errs.Is(err, errs.ErrNotFound):
		status = http.StatusNotFound
	case errs.Is(err, errs.ErrInvalidState), errs.Is(err, errs.ErrDuplicateKey):
		status = http.StatusConflict
	default:
		logger.ErrorContext(r.Context(), "Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		resp.Error = "internal error"
	}

	writeJSON(w, status, resp)
}

// decodeJSON reads a single JSON object from the request body. A malformed
// body is reported as a validation failure of field "body".
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errs.Validation("body", err.Error())
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// requestLogger logs every request with its status and latency
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start))
	})
}
