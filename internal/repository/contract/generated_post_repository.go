package contract

import (
	"context"

	"viralpost-be/internal/entity"
	"viralpost-be/internal/repository/specification"
)

type GeneratedPostRepository interface {
	Create(ctx context.Context, post *entity.GeneratedPost) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedPost, error)
}
