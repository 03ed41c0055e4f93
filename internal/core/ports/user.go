package ports

import (
	"context"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (domain.User, error)
}
