package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/ports"
)

const insertTaskQuery = `
INSERT INTO tasks (user_id, title, description, status)
VALUES (?, ?, ?, ?);
`

const listTasksByOwnerQuery = `
SELECT id, user_id, title, description, status, created_at, updated_at
FROM tasks
WHERE user_id = ?
ORDER BY created_at DESC, id DESC;
`

// Ownership is checked inside the query predicate itself so that a missing
// task and another user's task are indistinguishable to the caller.
const selectOwnedTaskQuery = `
SELECT id, user_id, title, description, status, created_at, updated_at
FROM tasks
WHERE id = ? AND user_id = ?;
`

const updateOwnedTaskQuery = `
UPDATE tasks
SET title = COALESCE(?, title),
    description = COALESCE(?, description),
    status = COALESCE(?, status),
    updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND user_id = ?;
`

const deleteOwnedTaskQuery = `
DELETE FROM tasks
WHERE id = ? AND user_id = ?;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64         `db:"id"`
	UserID      uint64         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		input.OwnerID,
		input.Title,
		input.Description,
		string(input.Status),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.GetOwnedTask(ctx, uint64(id), input.OwnerID)
}

func (r *TaskRepository) ListTasksByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByOwnerQuery, ownerID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks, nil
}

func (r *TaskRepository) GetOwnedTask(ctx context.Context, taskID, ownerID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, selectOwnedTaskQuery, taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) UpdateOwnedTask(ctx context.Context, taskID, ownerID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	var status *string
	if input.Status != nil {
		value := string(*input.Status)
		status = &value
	}

	if _, err := r.db.ExecContext(
		ctx,
		updateOwnedTaskQuery,
		input.Title,
		input.Description,
		status,
		taskID,
		ownerID,
	); err != nil {
		return domain.Task{}, err
	}

	// The update statement reports zero affected rows both for a missing task
	// and for a patch that changes nothing, so re-read through the same
	// ownership-guarded predicate to decide which it was.
	return r.GetOwnedTask(ctx, taskID, ownerID)
}

func (r *TaskRepository) DeleteOwnedTask(ctx context.Context, taskID, ownerID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteOwnedTaskQuery, taskID, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.UserID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	return task
}
