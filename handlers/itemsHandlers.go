package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"unicode/utf8"

	"cloudnexus-backend/models"
	"cloudnexus-backend/utilities"

	"github.com/gorilla/mux"
)

// GetItemsHandler lista as tarefas ativas com paginação e filtro de status
func (h *Handler) GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de tarefas")

	queryParams := r.URL.Query()

	skip := 0
	if raw := queryParams.Get("skip"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			http.Error(w, "Parâmetro skip inválido: deve ser um inteiro >= 0", http.StatusBadRequest)
			return
		}
		skip = value
	}

	limit := 100
	if raw := queryParams.Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 1 || value > 1000 {
			http.Error(w, "Parâmetro limit inválido: deve ser um inteiro entre 1 e 1000", http.StatusBadRequest)
			return
		}
		limit = value
	}

	statusFilter := queryParams.Get("status")
	utilities.LogDebug("Buscando tarefas - skip: %d, limit: %d, status: %s", skip, limit, statusFilter)

	tasks, err := h.repo.List(skip, limit, statusFilter)
	if err != nil {
		h.internalError(w, err, "Erro ao buscar tarefas no banco de dados")
		return
	}

	utilities.LogInfo("Tarefas listadas com sucesso - total: %d", len(tasks))
	writeJSON(w, http.StatusOK, tasks)
}

// CreateItemHandler cria uma nova tarefa
func (h *Handler) CreateItemHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de nova tarefa")

	var task struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Status      string  `json:"status"`
	}

	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON da tarefa")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Validar título: o limite é de 255 caracteres, não bytes
	titleLen := utf8.RuneCountInString(task.Title)
	if titleLen < 1 || titleLen > 255 {
		utilities.LogError(models.ErrTitleRequired, "Validação falhou")
		http.Error(w, models.ErrTitleRequired.Error(), http.StatusBadRequest)
		return
	}

	// Status default é pending
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if !models.IsValidStatus(task.Status) {
		utilities.LogError(fmt.Errorf("status inválido: %s", task.Status), "Validação falhou")
		http.Error(w, models.ErrInvalidStatus.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(task.Title, task.Description, task.Status)
	if err != nil {
		if errors.Is(err, models.ErrInvalidStatus) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.internalError(w, err, "Erro ao inserir tarefa no banco de dados")
		return
	}

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %d)", created.Title, created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// GetItemHandler busca uma tarefa específica pelo id
func (h *Handler) GetItemHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	task, err := h.repo.Get(id)
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			http.Error(w, "Tarefa não encontrada", http.StatusNotFound)
			return
		}
		h.internalError(w, err, "Erro ao buscar tarefa no banco de dados")
		return
	}

	writeJSON(w, http.StatusOK, task)
}
