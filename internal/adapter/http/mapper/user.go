package mapper

import (
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/adapter/http/dto"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

// ToUserItem never carries the password hash out of the domain layer.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:       user.ID,
		Username: user.Username,
	}
}
