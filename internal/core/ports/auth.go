package ports

import (
	"context"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (domain.User, string, error)
	Login(ctx context.Context, username, password string) (domain.User, string, error)
	Authenticate(ctx context.Context, token string) (domain.User, error)
}
