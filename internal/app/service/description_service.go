package service

import (
	"context"
	"strings"

	"github.com/Ryan-Sadeghi-Javid/task-manger-missionperform/internal/core/ports"
)

type DescriptionService struct {
	generator ports.DescriptionGenerator
}

var _ ports.DescriptionService = (*DescriptionService)(nil)

func NewDescriptionService(generator ports.DescriptionGenerator) *DescriptionService {
	return &DescriptionService{generator: generator}
}

func (s *DescriptionService) GenerateDescription(ctx context.Context, title string) (string, error) {
	description, err := s.generator.GenerateDescription(ctx, title)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(description), nil
}
