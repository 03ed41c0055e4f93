package ports

import (
	"context"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

type TaskRepository interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	GetOwnedTask(ctx context.Context, taskID, ownerID uint64) (domain.Task, error)
	UpdateOwnedTask(ctx context.Context, taskID, ownerID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteOwnedTask(ctx context.Context, taskID, ownerID uint64) error
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	GetOwnedTask(ctx context.Context, taskID, ownerID uint64) (domain.Task, error)
	UpdateOwnedTask(ctx context.Context, taskID, ownerID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteOwnedTask(ctx context.Context, taskID, ownerID uint64) error
}
