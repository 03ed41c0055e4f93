package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, username, password string) (domain.User, string, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Authenticate(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(domain.User), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasksByOwner(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetOwnedTask(ctx context.Context, taskID, ownerID uint64) (domain.Task, error) {
	args := m.Called(ctx, taskID, ownerID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateOwnedTask(ctx context.Context, taskID, ownerID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, taskID, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteOwnedTask(ctx context.Context, taskID, ownerID uint64) error {
	args := m.Called(ctx, taskID, ownerID)
	return args.Error(0)
}

type descriptionServiceMock struct {
	mock.Mock
}

func (m *descriptionServiceMock) GenerateDescription(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}
