package http

import (
	"encoding/json"
	"net/http"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/service"
)

type ReceiptHandler struct {
	receipts service.ReceiptService
}

func NewReceiptHandler(receipts service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	receipts, err := h.receipts.ListReceipts(r.Context(), userID)
	if err != nil {
		logger.Error("Receipts fetch failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch receipts")
		return
	}
	if receipts == nil {
		receipts = []domain.Receipt{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"receipts": receipts})
}

func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var receipt domain.Receipt
	if err := json.NewDecoder(r.Body).Decode(&receipt); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if receipt.CustomerName == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	created, err := h.receipts.CreateReceipt(r.Context(), userID, &receipt)
	if err != nil {
		logger.Error("Receipt creation failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create receipt")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"receipt": created})
}
