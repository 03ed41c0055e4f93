package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/domain"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/ports"
	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/pkg/token"
)

// bcryptCost matches the cost the stored hashes were created with.
const bcryptCost = 10

type AuthService struct {
	userRepository ports.UserRepository
	tokens         *token.Manager
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, tokens *token.Manager) *AuthService {
	return &AuthService{userRepository: userRepository, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return domain.User{}, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, username, string(hash))
	if err != nil {
		return domain.User{}, "", err
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, signed, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown user and wrong password must be indistinguishable.
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, signed, nil
}

// Authenticate resolves a bearer token to a live user. Every failure mode
// collapses to ErrInvalidToken; the cause only reaches the logs.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (domain.User, error) {
	userID, err := s.tokens.Verify(tokenString)
	if err != nil {
		zap.L().Debug("token verification failed", zap.Error(err))
		return domain.User{}, domain.ErrInvalidToken
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			zap.L().Debug("token subject no longer exists", zap.Uint64("user_id", userID))
			return domain.User{}, domain.ErrInvalidToken
		}
		return domain.User{}, err
	}
	return user, nil
}
