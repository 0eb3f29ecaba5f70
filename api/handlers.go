package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/etnz/gridledger"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

// addDeviceRequest is the body of POST /api/v1/devices.
type addDeviceRequest struct {
	Address        string           `json:"address"`
	Name           string           `json:"name"`
	Type           string           `json:"type"`
	InitialBalance gridledger.Money `json:"initialBalance"`
	Owner          string           `json:"owner,omitempty"`
}

// AddDevice registers a new device.
func (h *Handler) AddDevice(w http.ResponseWriter, r *http.Request) {
	var req addDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	typ, err := gridledger.ParseDeviceType(req.Type)
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := h.ledger.AddDevice(req.Address, req.Name, typ, req.InitialBalance, req.Owner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

// ListDevices returns every registered device in insertion order.
func (h *Handler) ListDevices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Devices())
}

// GetDevice returns a single device by address.
func (h *Handler) GetDevice(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	d, ok := h.ledger.Device(address)
	if !ok {
		writeError(w, fmt.Errorf("%w: %s", gridledger.ErrDeviceNotFound, address))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// SetDeviceStatus toggles a device's status.
func (h *Handler) SetDeviceStatus(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	status, err := gridledger.ParseDeviceStatus(req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.ledger.SetDeviceStatus(address, status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"address": address, "status": req.Status})
}

// paymentRequest is the body of POST /api/v1/payments.
type paymentRequest struct {
	FromAddress  string            `json:"fromAddress"`
	ToAddress    string            `json:"toAddress"`
	Amount       gridledger.Money  `json:"amount"`
	Type         string            `json:"type,omitempty"`
	EnergyAmount gridledger.Energy `json:"energyAmount,omitempty"`
}

// SendPayment settles one transfer and returns the recorded transaction.
func (h *Handler) SendPayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	typ := gridledger.Payment
	if req.Type != "" {
		var err error
		if typ, err = gridledger.ParseTxType(req.Type); err != nil {
			writeError(w, err)
			return
		}
	}
	tx, err := h.ledger.Transfer(req.FromAddress, req.ToAddress, req.Amount, typ, req.EnergyAmount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// distributionRequest is the body of POST /api/v1/distributions.
type distributionRequest struct {
	FromAddress string            `json:"fromAddress"`
	ToAddresses []string          `json:"toAddresses"`
	TotalAmount gridledger.Money  `json:"totalAmount"`
	Mode        string            `json:"mode,omitempty"`
	Weights     []decimal.Decimal `json:"weights,omitempty"`
}

// DistributeRevenue settles a multi-recipient split. On a mid-sequence
// failure the already-settled transactions are returned along with the
// error: the distribution engine is best-effort, not all-or-nothing.
func (h *Handler) DistributeRevenue(w http.ResponseWriter, r *http.Request) {
	var req distributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	mode := gridledger.EqualSplit
	if req.Mode != "" {
		var err error
		if mode, err = gridledger.ParseDistributionMode(req.Mode); err != nil {
			writeError(w, err)
			return
		}
	}
	txs, err := h.ledger.Distribute(req.FromAddress, req.ToAddresses, req.TotalAmount, mode, req.Weights)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":        err.Error(),
			"transactions": txs,
		})
		return
	}
	writeJSON(w, http.StatusCreated, txs)
}

// ListTransactions returns transactions newest first, filtered by the
// optional address, type, from and to query parameters. Date bounds are
// inclusive RFC 3339 timestamps.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var filter gridledger.TxFilter
	q := r.URL.Query()
	filter.Address = q.Get("address")
	if s := q.Get("type"); s != "" {
		typ, err := gridledger.ParseTxType(s)
		if err != nil {
			writeError(w, err)
			return
		}
		filter.Type = typ
	}
	if s := q.Get("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, fmt.Errorf("invalid from date %q: %w", s, err))
			return
		}
		filter.From = t
	}
	if s := q.Get("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeError(w, fmt.Errorf("invalid to date %q: %w", s, err))
			return
		}
		filter.To = t
	}
	writeJSON(w, http.StatusOK, h.ledger.Transactions(filter))
}

// rateResponse is the body of rate endpoints.
type rateResponse struct {
	Peak bool             `json:"peak"`
	Rate gridledger.Money `json:"rate"`
}

// GetRate returns the current energy rate; ?peak=true selects the peak one.
func (h *Handler) GetRate(w http.ResponseWriter, r *http.Request) {
	peak, _ := strconv.ParseBool(r.URL.Query().Get("peak"))
	writeJSON(w, http.StatusOK, rateResponse{Peak: peak, Rate: h.ledger.Rate(peak)})
}

// SetRate updates an energy rate for future pricing.
func (h *Handler) SetRate(w http.ResponseWriter, r *http.Request) {
	var req rateResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := h.ledger.SetRate(req.Peak, req.Rate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}

// summaryResponse is the body of GET /api/v1/summary.
type summaryResponse struct {
	TotalDevices        int               `json:"totalDevices"`
	ActiveDevices       int               `json:"activeDevices"`
	TotalBalance        gridledger.Money  `json:"totalBalance"`
	TotalTransactions   int               `json:"totalTransactions"`
	TotalEnergyProduced gridledger.Energy `json:"totalEnergyProduced"`
	TotalEnergyConsumed gridledger.Energy `json:"totalEnergyConsumed"`
}

// GetSummary returns the aggregate registry and ledger totals.
func (h *Handler) GetSummary(w http.ResponseWriter, _ *http.Request) {
	s := h.ledger.Summary()
	writeJSON(w, http.StatusOK, summaryResponse{
		TotalDevices:        s.TotalDevices,
		ActiveDevices:       s.ActiveDevices,
		TotalBalance:        s.TotalBalance,
		TotalTransactions:   s.TotalTransactions,
		TotalEnergyProduced: s.TotalEnergyProduced,
		TotalEnergyConsumed: s.TotalEnergyConsumed,
	})
}

// ListUsers returns the user roster.
func (h *Handler) ListUsers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.ledger.Users())
}
