package implementation

import (
	"context"

	"viralpost-be/internal/entity"
	"viralpost-be/internal/mapper"
	"viralpost-be/internal/model"
	"viralpost-be/internal/repository/contract"
	"viralpost-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GeneratedPostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GeneratedPostMapper
}

func NewGeneratedPostRepository(db *gorm.DB) contract.GeneratedPostRepository {
	return &GeneratedPostRepositoryImpl{
		db:     db,
		mapper: mapper.NewGeneratedPostMapper(),
	}
}

func (r *GeneratedPostRepositoryImpl) Create(ctx context.Context, post *entity.GeneratedPost) error {
	m := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(m)
	return nil
}

func (r *GeneratedPostRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedPost, error) {
	var models []*model.GeneratedPost
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
