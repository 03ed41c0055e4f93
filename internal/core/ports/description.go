package ports

import "context"

// DescriptionGenerator produces a task description from a title using an
// external completion service.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
}

type DescriptionService interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
}
