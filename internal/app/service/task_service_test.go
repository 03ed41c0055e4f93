package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/app/service"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListTasksByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) GetOwnedTask(ctx context.Context, taskID, ownerID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, ownerID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateOwnedTask(ctx context.Context, taskID, ownerID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) DeleteOwnedTask(ctx context.Context, taskID, ownerID uint64) error {
	args := m.Called(ctx, taskID, ownerID)
	return args.Error(0)
}

func TestTaskService_CreateTask_DefaultsStatus(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("CreateTask", mock.Anything, domain.CreateTaskInput{
		OwnerID: 1,
		Title:   "Buy milk",
		Status:  domain.TaskStatusTodo,
	}).Return(domain.Task{ID: 1, OwnerID: 1, Title: "Buy milk", Status: domain.TaskStatusTodo}, nil).Once()

	taskService := service.NewTaskService(repo)

	task, err := taskService.CreateTask(context.Background(), domain.CreateTaskInput{
		OwnerID: 1,
		Title:   "Buy milk",
	})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusTodo, task.Status)
	repo.AssertExpectations(t)
}

func TestTaskService_CreateTask_KeepsExplicitStatus(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("CreateTask", mock.Anything, mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Status == domain.TaskStatusInProgress
	})).Return(domain.Task{ID: 1, Status: domain.TaskStatusInProgress}, nil).Once()

	taskService := service.NewTaskService(repo)

	task, err := taskService.CreateTask(context.Background(), domain.CreateTaskInput{
		OwnerID: 1,
		Title:   "Buy milk",
		Status:  domain.TaskStatusInProgress,
	})
	require.NoError(t, err)
	require.Equal(t, domain.TaskStatusInProgress, task.Status)
	repo.AssertExpectations(t)
}

func TestTaskService_DeleteOwnedTask_PropagatesNotFound(t *testing.T) {
	repo := new(taskRepositoryMock)
	repo.On("DeleteOwnedTask", mock.Anything, uint64(999), uint64(1)).
		Return(domain.ErrTaskNotFound).Once()

	taskService := service.NewTaskService(repo)

	err := taskService.DeleteOwnedTask(context.Background(), 999, 1)
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	repo.AssertExpectations(t)
}
