package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"

	"cloudnexus-backend/database"
	"cloudnexus-backend/models"
	"cloudnexus-backend/storage"
	"cloudnexus-backend/utilities"
)

// APIVersion reportada pelo endpoint /health
const APIVersion = "1.0.0"

// ObjectStorage é a interface do object store consumida pelos handlers
type ObjectStorage interface {
	UploadFile(ctx context.Context, content []byte, originalFilename, contentType string) (*storage.UploadResult, error)
	CreateBackup(ctx context.Context, tasks []models.Task, tableName string) (*storage.BackupResult, error)
	ListBackups(ctx context.Context, maxItems int) ([]storage.BackupInfo, error)
}

// Handler agrupa as dependências compartilhadas pelos handlers HTTP
type Handler struct {
	repo    *database.TaskRepository
	db      *sql.DB
	storage ObjectStorage
	debug   bool
}

func NewHandler(db *sql.DB, store ObjectStorage, debug bool) *Handler {
	return &Handler{
		repo:    database.NewTaskRepository(db),
		db:      db,
		storage: store,
		debug:   debug,
	}
}

// writeJSON serializa o corpo da resposta com o status informado
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// internalError registra o erro e responde 500. A mensagem original só é
// exposta ao cliente em modo debug.
func (h *Handler) internalError(w http.ResponseWriter, err error, context string) {
	utilities.LogError(err, context)
	if h.debug {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, "Ocorreu um erro inesperado", http.StatusInternalServerError)
}
