package http

import (
	"net/http"

	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/service"
)

type BalanceHandler struct {
	ledger service.LedgerService
}

func NewBalanceHandler(ledger service.LedgerService) *BalanceHandler {
	return &BalanceHandler{ledger: ledger}
}

func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.ledger.GetBalance(r.Context(), userID)
	if err != nil {
		logger.Error("Balance fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to get balance")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"balance": balance})
}
