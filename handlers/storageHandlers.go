package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"cloudnexus-backend/models"
	"cloudnexus-backend/storage"
	"cloudnexus-backend/utilities"
)

// UploadHandler recebe um arquivo via multipart/form-data e o envia para
// o object store
func (h *Handler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando upload de arquivo")

	file, header, err := r.FormFile("file")
	if err != nil {
		utilities.LogError(err, "Nenhum arquivo enviado no campo 'file'")
		http.Error(w, "Nenhum arquivo enviado", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Filename == "" {
		http.Error(w, "Nome do arquivo não fornecido", http.StatusBadRequest)
		return
	}

	// Lê no máximo um byte além do limite; o excedente vira 413 no storage
	content, err := io.ReadAll(io.LimitReader(file, storage.MaxFileSize+1))
	if err != nil {
		h.internalError(w, err, "Erro ao ler o arquivo enviado")
		return
	}

	result, err := h.storage.UploadFile(r.Context(), content, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		case errors.Is(err, storage.ErrBucketNotSet):
			utilities.LogError(err, "Erro de configuração no upload")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		default:
			h.internalError(w, err, "Erro ao enviar arquivo para o object store")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.UploadResponse{
		Success:          true,
		S3URL:            result.S3URL,
		OriginalFilename: header.Filename,
		Message:          "Arquivo enviado com sucesso",
	})
}

// BackupHandler dispara um backup manual da tabela de tarefas
func (h *Handler) BackupHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando backup manual")

	tasks, err := h.repo.ListActive()
	if err != nil {
		h.internalError(w, err, "Erro ao buscar tarefas para o backup")
		return
	}

	result, err := h.storage.CreateBackup(r.Context(), tasks, "tasks")
	if err != nil {
		if errors.Is(err, storage.ErrBucketNotSet) {
			utilities.LogError(err, "Erro de configuração no backup")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.internalError(w, err, "Erro ao criar backup no object store")
		return
	}

	utilities.LogInfo("Backup criado com sucesso: %s (%d registros)", result.S3URL, result.RecordCount)
	writeJSON(w, http.StatusOK, models.BackupResponse{
		Success:         true,
		S3URL:           result.S3URL,
		RecordCount:     result.RecordCount,
		BackupTimestamp: result.BackupTimestamp,
		Message:         "Backup criado com sucesso",
	})
}

// ListBackupsHandler lista os backups existentes, mais recentes primeiro
func (h *Handler) ListBackupsHandler(w http.ResponseWriter, r *http.Request) {
	maxItems := 100
	if raw := r.URL.Query().Get("max_items"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 {
			http.Error(w, "Parâmetro max_items inválido: deve ser um inteiro >= 1", http.StatusBadRequest)
			return
		}
		maxItems = value
	}

	backups, err := h.storage.ListBackups(r.Context(), maxItems)
	if err != nil {
		if errors.Is(err, storage.ErrBucketNotSet) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		h.internalError(w, err, "Erro ao listar backups no object store")
		return
	}

	writeJSON(w, http.StatusOK, backups)
}
