package service

import (
	"context"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusTodo
	}
	return s.taskRepository.CreateTask(ctx, input)
}

func (s *TaskService) ListTasksByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListTasksByOwner(ctx, ownerID)
}

func (s *TaskService) GetOwnedTask(ctx context.Context, taskID, ownerID uint64) (domain.Task, error) {
	return s.taskRepository.GetOwnedTask(ctx, taskID, ownerID)
}

func (s *TaskService) UpdateOwnedTask(ctx context.Context, taskID, ownerID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.UpdateOwnedTask(ctx, taskID, ownerID, input)
}

func (s *TaskService) DeleteOwnedTask(ctx context.Context, taskID, ownerID uint64) error {
	return s.taskRepository.DeleteOwnedTask(ctx, taskID, ownerID)
}
