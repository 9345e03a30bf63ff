package http

import (
	"encoding/json"
	"net/http"

	"shopbook-backend/internal/domain"
	"shopbook-backend/internal/logger"
	"shopbook-backend/internal/service"
)

// MigrationHandler exposes the one-shot legacy-data import. The route
// is unauthenticated: the batch is self-describing and the import runs
// before any of the imported users can hold a token.
type MigrationHandler struct {
	migration service.MigrationService
}

func NewMigrationHandler(migration service.MigrationService) *MigrationHandler {
	return &MigrationHandler{migration: migration}
}

func (h *MigrationHandler) Migrate(w http.ResponseWriter, r *http.Request) {
	var batch domain.MigrationBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.migration.Migrate(r.Context(), &batch)
	if err != nil {
		logger.Error("Migration failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, domain.MigrationResult{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, result)
}
