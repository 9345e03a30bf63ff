package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/service"
)

type TransactionHandler struct {
	ledger service.LedgerService
}

func NewTransactionHandler(ledger service.LedgerService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	txs, balance, err := h.ledger.ListTransactions(r.Context(), userID)
	if err != nil {
		logger.Error("Transactions fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if txs == nil {
		txs = []domain.Transaction{}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"transactions": txs,
		"balance":      balance,
	})
}

type createTransactionRequest struct {
	Particulars string `json:"particulars"`
	AmountCents int64  `json:"amount_cents"`
	Type        string `json:"type"`
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Particulars == "" || req.AmountCents == 0 || req.Type == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	tx, balance, err := h.ledger.RecordTransaction(r.Context(), userID, req.Particulars, req.AmountCents, domain.TransactionType(req.Type))
	if errors.Is(err, service.ErrInvalidTransactionType) {
		respondError(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}
	if err != nil {
		logger.Error("Transaction creation failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"transaction": tx,
		"balance":     balance,
	})
}
