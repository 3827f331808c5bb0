package handlers

import (
	"net/http"
	"time"

	"cloudnexus-backend/database"
	"cloudnexus-backend/models"
)

// HealthHandler reporta o estado da API e testa a conectividade com o
// banco de dados. Sempre responde 200: banco indisponível resulta em
// status "degraded", não em erro HTTP.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	dbStatus := database.TestConnection(h.db)

	status := "healthy"
	if dbStatus.Status != "healthy" {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Database:  dbStatus,
		Version:   APIVersion,
	})
}
