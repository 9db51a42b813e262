package contract

import (
	"context"

	"viralpost-be/internal/entity"
	"viralpost-be/internal/repository/specification"
)

type GenerationRepository interface {
	Create(ctx context.Context, generation *entity.Generation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Generation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Generation, error)
}
