package database

import (
	"database/sql"
	"fmt"
	"time"

	"cloudnexus-backend/models"
)

// TaskRepository concentra as operações de tarefas no banco de dados.
// Cada operação roda dentro de uma transação própria: commit no sucesso,
// rollback em qualquer erro.
type TaskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

const taskColumns = "id, title, description, status, created_at, updated_at, is_active"

func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var description sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(&task.ID, &task.Title, &description, &task.Status,
		&task.CreatedAt, &updatedAt, &task.IsActive)
	if err != nil {
		return task, err
	}

	if description.Valid {
		task.Description = &description.String
	}
	if updatedAt.Valid {
		task.UpdatedAt = &updatedAt.Time
	}
	return task, nil
}

// List busca as tarefas ativas com paginação e filtro opcional de status
func (r *TaskRepository) List(skip, limit int, status string) ([]models.Task, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + taskColumns + " FROM tasks WHERE is_active = TRUE"
	params := []interface{}{}
	paramCount := 1

	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", paramCount)
		params = append(params, status)
		paramCount++
	}

	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", paramCount, paramCount+1)
	params = append(params, limit, skip)

	rows, err := tx.Query(query, params...)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListActive retorna todas as tarefas ativas, sem paginação. Usado pelo backup.
func (r *TaskRepository) ListActive() ([]models.Task, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query("SELECT " + taskColumns + " FROM tasks WHERE is_active = TRUE ORDER BY id")
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create insere uma nova tarefa com id e timestamps atribuídos pelo servidor
func (r *TaskRepository) Create(title string, description *string, status string) (*models.Task, error) {
	if !models.IsValidStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query := "INSERT INTO tasks (title, description, status, created_at, updated_at, is_active) VALUES ($1, $2, $3, $4, $5, TRUE) RETURNING id"

	var id int
	if err := tx.QueryRow(query, title, description, status, now, now).Scan(&id); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	updatedAt := now
	return &models.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   &updatedAt,
		IsActive:    true,
	}, nil
}

// Get busca uma tarefa ativa pelo id
func (r *TaskRepository) Get(id int) (*models.Task, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}

	row := tx.QueryRow("SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND is_active = TRUE", id)
	task, err := scanTask(row)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return nil, models.ErrTaskNotFound
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &task, nil
}
