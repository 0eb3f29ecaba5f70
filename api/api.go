// Package api exposes a LedgerService over HTTP. It is a thin transport:
// every route maps onto one synchronous ledger operation, and callers must
// treat each request as independent (no transactional atomicity across
// requests).
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/etnz/gridledger"
	"github.com/gorilla/mux"
)

// Handler serves the ledger API over one LedgerService instance.
type Handler struct {
	ledger *gridledger.LedgerService
}

// NewHandler creates a Handler around the given ledger.
func NewHandler(ledger *gridledger.LedgerService) *Handler {
	return &Handler{ledger: ledger}
}

// Router builds the API routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", h.Health).Methods("GET")
	r.HandleFunc("/api/v1/devices", h.ListDevices).Methods("GET")
	r.HandleFunc("/api/v1/devices", h.AddDevice).Methods("POST")
	r.HandleFunc("/api/v1/devices/{address}", h.GetDevice).Methods("GET")
	r.HandleFunc("/api/v1/devices/{address}/status", h.SetDeviceStatus).Methods("PATCH")
	r.HandleFunc("/api/v1/payments", h.SendPayment).Methods("POST")
	r.HandleFunc("/api/v1/distributions", h.DistributeRevenue).Methods("POST")
	r.HandleFunc("/api/v1/transactions", h.ListTransactions).Methods("GET")
	r.HandleFunc("/api/v1/rates", h.GetRate).Methods("GET")
	r.HandleFunc("/api/v1/rates", h.SetRate).Methods("PUT")
	r.HandleFunc("/api/v1/summary", h.GetSummary).Methods("GET")
	r.HandleFunc("/api/v1/users", h.ListUsers).Methods("GET")
	return r
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// writeError maps a ledger error onto an HTTP status and a JSON body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, gridledger.ErrDeviceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gridledger.ErrDuplicateAddress):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
