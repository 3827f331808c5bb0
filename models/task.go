package models

import "time"

// Status válidos para uma tarefa
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Task struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	IsActive    bool       `json:"is_active"`
}

// IsValidStatus verifica se o status está entre os valores permitidos
func IsValidStatus(status string) bool {
	validStatuses := map[string]bool{
		StatusPending:    true,
		StatusInProgress: true,
		StatusCompleted:  true,
	}
	return validStatuses[status]
}
