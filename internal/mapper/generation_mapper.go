package mapper

import (
	"encoding/json"

	"viralpost-be/internal/entity"
	"viralpost-be/internal/model"

	"gorm.io/datatypes"
)

type GenerationMapper struct {
	postMapper *GeneratedPostMapper
}

func NewGenerationMapper() *GenerationMapper {
	return &GenerationMapper{
		postMapper: NewGeneratedPostMapper(),
	}
}

func (m *GenerationMapper) ToEntity(g *model.Generation) *entity.Generation {
	if g == nil {
		return nil
	}

	var platforms []string
	_ = json.Unmarshal(g.Platforms, &platforms)

	return &entity.Generation{
		Id:              g.Id,
		UserId:          g.UserId,
		OriginalContent: g.OriginalContent,
		ContentType:     g.ContentType,
		FileURL:         g.FileURL,
		FileName:        g.FileName,
		Platforms:       platforms,
		CreatedAt:       g.CreatedAt,
		Posts:           m.postMapper.ToEntities(g.Posts),
	}
}

func (m *GenerationMapper) ToModel(g *entity.Generation) *model.Generation {
	if g == nil {
		return nil
	}

	platforms, _ := json.Marshal(g.Platforms)

	return &model.Generation{
		Id:              g.Id,
		UserId:          g.UserId,
		OriginalContent: g.OriginalContent,
		ContentType:     g.ContentType,
		FileURL:         g.FileURL,
		FileName:        g.FileName,
		Platforms:       datatypes.JSON(platforms),
		CreatedAt:       g.CreatedAt,
	}
}

func (m *GenerationMapper) ToEntities(generations []*model.Generation) []*entity.Generation {
	entities := make([]*entity.Generation, len(generations))
	for i, g := range generations {
		entities[i] = m.ToEntity(g)
	}
	return entities
}
