package implementation

import (
	"context"
	"errors"

	"viralpost-be/internal/entity"
	"viralpost-be/internal/mapper"
	"viralpost-be/internal/model"
	"viralpost-be/internal/repository/contract"
	"viralpost-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GenerationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.GenerationMapper
}

func NewGenerationRepository(db *gorm.DB) contract.GenerationRepository {
	return &GenerationRepositoryImpl{
		db:     db,
		mapper: mapper.NewGenerationMapper(),
	}
}

func (r *GenerationRepositoryImpl) Create(ctx context.Context, generation *entity.Generation) error {
	m := r.mapper.ToModel(generation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*generation = *r.mapper.ToEntity(m)
	return nil
}

func (r *GenerationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Generation, error) {
	var m model.Generation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *GenerationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Generation, error) {
	var models []*model.Generation
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
