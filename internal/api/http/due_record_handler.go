package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/service"
)

type DueRecordHandler struct {
	ledger service.LedgerService
}

func NewDueRecordHandler(ledger service.LedgerService) *DueRecordHandler {
	return &DueRecordHandler{ledger: ledger}
}

func (h *DueRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recs, err := h.ledger.ListDueRecords(r.Context(), userID)
	if err != nil {
		logger.Error("Due records fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch due records")
		return
	}
	if recs == nil {
		recs = []domain.DueRecord{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"due_records": recs})
}

type createDueRecordRequest struct {
	CustomerName        string `json:"customer_name"`
	CustomerContact     string `json:"customer_contact"`
	CustomerCountryCode string `json:"customer_country_code"`
	ProductOrdered      string `json:"product_ordered"`
	Quantity            int32  `json:"quantity"`
	AmountDueCents      int64  `json:"amount_due_cents"`
	ExpectedPaymentDate string `json:"expected_payment_date"`
}

func (h *DueRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createDueRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CustomerName == "" || req.ProductOrdered == "" || req.AmountDueCents == 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	rec, err := h.ledger.CreateDueRecord(r.Context(), userID, &domain.DueRecord{
		CustomerName:        req.CustomerName,
		CustomerContact:     req.CustomerContact,
		CustomerCountryCode: req.CustomerCountryCode,
		ProductOrdered:      req.ProductOrdered,
		Quantity:            req.Quantity,
		AmountDueCents:      req.AmountDueCents,
		ExpectedPaymentDate: req.ExpectedPaymentDate,
	})
	if err != nil {
		logger.Error("Due record creation failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create due record")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"due_record": rec})
}

func (h *DueRecordHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid due record id")
		return
	}

	rec, tx, balance, err := h.ledger.SettleDueRecord(r.Context(), userID, int32(id))
	if errors.Is(err, service.ErrDueRecordNotFound) {
		respondError(w, http.StatusNotFound, "Due record not found")
		return
	}
	if errors.Is(err, service.ErrDueAlreadyPaid) {
		respondError(w, http.StatusBadRequest, "Due record already marked as paid")
		return
	}
	if err != nil {
		logger.Error("Mark paid failed", "user_id", userID, "due_record_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to mark as paid")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"due_record":  rec,
		"transaction": tx,
		"balance": map[string]int64{
			"account_balance_cents": balance.AccountBalanceCents,
			"total_due_cents":       balance.TotalDueCents,
		},
	})
}
