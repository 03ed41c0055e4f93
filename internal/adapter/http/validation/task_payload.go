package validation

import (
	"errors"
	"strings"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/dto"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(ownerID uint64, req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	status := domain.TaskStatusTodo
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
		if !status.Valid() {
			return domain.CreateTaskInput{}, ErrInvalidTaskPayload
		}
	}

	return domain.CreateTaskInput{
		OwnerID:     ownerID,
		Title:       title,
		Description: req.Description,
		Status:      status,
	}, nil
}

// BuildUpdateTaskInput builds a partial patch. A JSON null (or an absent key)
// leaves the field untouched, matching the update semantics of the dashboard
// client. An empty patch is allowed and only refreshes updated_at.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var status *domain.TaskStatus
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		status = &value
	}

	return domain.UpdateTaskInput{
		Title:       title,
		Description: req.Description,
		Status:      status,
	}, nil
}
