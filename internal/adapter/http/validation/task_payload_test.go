package validation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/dto"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/validation"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

func strPtr(s string) *string { return &s }

func TestBuildCreateTaskInput_DefaultsStatus(t *testing.T) {
	input, err := validation.BuildCreateTaskInput(1, dto.CreateTaskRequest{Title: "Buy milk"})
	require.NoError(t, err)
	require.Equal(t, uint64(1), input.OwnerID)
	require.Equal(t, "Buy milk", input.Title)
	require.Equal(t, domain.TaskStatusTodo, input.Status)
	require.Nil(t, input.Description)
}

func TestBuildCreateTaskInput_TrimsTitle(t *testing.T) {
	input, err := validation.BuildCreateTaskInput(1, dto.CreateTaskRequest{Title: "  Buy milk  "})
	require.NoError(t, err)
	require.Equal(t, "Buy milk", input.Title)
}

func TestBuildCreateTaskInput_RejectsMissingTitle(t *testing.T) {
	_, err := validation.BuildCreateTaskInput(1, dto.CreateTaskRequest{Title: "   "})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_RejectsUnknownStatus(t *testing.T) {
	_, err := validation.BuildCreateTaskInput(1, dto.CreateTaskRequest{
		Title:  "Buy milk",
		Status: strPtr("Blocked"),
	})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildCreateTaskInput_AcceptsEachStatus(t *testing.T) {
	for _, status := range []string{"To Do", "In Progress", "Done"} {
		input, err := validation.BuildCreateTaskInput(1, dto.CreateTaskRequest{
			Title:  "Buy milk",
			Status: strPtr(status),
		})
		require.NoError(t, err)
		require.Equal(t, domain.TaskStatus(status), input.Status)
	}
}

func TestBuildUpdateTaskInput_PartialPatch(t *testing.T) {
	input, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{Status: strPtr("Done")})
	require.NoError(t, err)
	require.Nil(t, input.Title)
	require.Nil(t, input.Description)
	require.NotNil(t, input.Status)
	require.Equal(t, domain.TaskStatusDone, *input.Status)
}

func TestBuildUpdateTaskInput_EmptyPatchAllowed(t *testing.T) {
	input, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{})
	require.NoError(t, err)
	require.Nil(t, input.Title)
	require.Nil(t, input.Description)
	require.Nil(t, input.Status)
}

func TestBuildUpdateTaskInput_RejectsBlankTitle(t *testing.T) {
	_, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{Title: strPtr("  ")})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}

func TestBuildUpdateTaskInput_RejectsUnknownStatus(t *testing.T) {
	_, err := validation.BuildUpdateTaskInput(dto.UpdateTaskRequest{Status: strPtr("Archived")})
	require.ErrorIs(t, err, validation.ErrInvalidTaskPayload)
}
