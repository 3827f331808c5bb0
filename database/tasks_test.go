package database

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudnexus-backend/models"
)

const selectColumns = "id, title, description, status, created_at, updated_at, is_active"

func taskRows(ids ...int) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "description", "status", "created_at", "updated_at", "is_active"})
	now := time.Now().UTC()
	for _, id := range ids {
		rows.AddRow(id, "Tarefa de teste", nil, models.StatusPending, now, now, true)
	}
	return rows
}

func TestListReturnsActiveTasks(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := "SELECT " + selectColumns + " FROM tasks WHERE is_active = TRUE ORDER BY id LIMIT $1 OFFSET $2"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(100, 0).
		WillReturnRows(taskRows(1, 2))
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	tasks, err := repo.List(0, 100, "")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
	assert.Equal(t, 1, tasks[0].ID)
	assert.True(t, tasks[0].IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListWithStatusFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := "SELECT " + selectColumns + " FROM tasks WHERE is_active = TRUE AND status = $1 ORDER BY id LIMIT $2 OFFSET $3"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(models.StatusCompleted, 10, 5).
		WillReturnRows(taskRows())
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	tasks, err := repo.List(5, 10, models.StatusCompleted)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.NotNil(t, tasks)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListRollsBackOnQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	repo := NewTaskRepository(db)
	_, err = repo.List(0, 100, "")
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := "INSERT INTO tasks (title, description, status, created_at, updated_at, is_active) VALUES ($1, $2, $3, $4, $5, TRUE) RETURNING id"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Nova tarefa", nil, models.StatusPending, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	task, err := repo.Create("Nova tarefa", nil, models.StatusPending)
	require.NoError(t, err)

	assert.Equal(t, 7, task.ID)
	assert.True(t, task.IsActive)
	require.NotNil(t, task.UpdatedAt)
	assert.Equal(t, task.CreatedAt, *task.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsInvalidStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewTaskRepository(db)
	_, err = repo.Create("Tarefa", nil, "archived")
	assert.ErrorIs(t, err, models.ErrInvalidStatus)

	// Nenhuma query deve ter sido executada
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsTask(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := "SELECT " + selectColumns + " FROM tasks WHERE id = $1 AND is_active = TRUE"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs(3).
		WillReturnRows(taskRows(3))
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	task, err := repo.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 3, task.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT").WithArgs(99).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	repo := NewTaskRepository(db)
	_, err = repo.Get(99)
	assert.ErrorIs(t, err, models.ErrTaskNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveForBackup(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	query := "SELECT " + selectColumns + " FROM tasks WHERE is_active = TRUE ORDER BY id"

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(query)).WillReturnRows(taskRows(1, 2, 3))
	mock.ExpectCommit()

	repo := NewTaskRepository(db)
	tasks, err := repo.ListActive()
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTestConnectionHealthy(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	status := TestConnection(db)
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "connected", status.Database)
	assert.Empty(t, status.Error)
}

func TestTestConnectionUnhealthy(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).WillReturnError(sql.ErrConnDone)

	status := TestConnection(db)
	assert.Equal(t, "unhealthy", status.Status)
	assert.Equal(t, "disconnected", status.Database)
	assert.NotEmpty(t, status.Error)
}
