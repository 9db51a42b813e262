package mapper

import (
	"encoding/json"

	"viralpost-be/internal/entity"
	"viralpost-be/internal/model"

	"gorm.io/datatypes"
)

type GeneratedPostMapper struct{}

func NewGeneratedPostMapper() *GeneratedPostMapper {
	return &GeneratedPostMapper{}
}

func (m *GeneratedPostMapper) ToEntity(p *model.GeneratedPost) *entity.GeneratedPost {
	if p == nil {
		return nil
	}

	hashtags := []string{}
	_ = json.Unmarshal(p.Hashtags, &hashtags)

	return &entity.GeneratedPost{
		Id:             p.Id,
		GenerationId:   p.GenerationId,
		Platform:       p.Platform,
		Tone:           p.Tone,
		Content:        p.Content,
		Hashtags:       hashtags,
		CharacterCount: p.CharacterCount,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *GeneratedPostMapper) ToModel(p *entity.GeneratedPost) *model.GeneratedPost {
	if p == nil {
		return nil
	}

	hashtags := p.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	raw, _ := json.Marshal(hashtags)

	return &model.GeneratedPost{
		Id:             p.Id,
		GenerationId:   p.GenerationId,
		Platform:       p.Platform,
		Tone:           p.Tone,
		Content:        p.Content,
		Hashtags:       datatypes.JSON(raw),
		CharacterCount: p.CharacterCount,
		CreatedAt:      p.CreatedAt,
	}
}

func (m *GeneratedPostMapper) ToEntities(posts []*model.GeneratedPost) []*entity.GeneratedPost {
	entities := make([]*entity.GeneratedPost, len(posts))
	for i, p := range posts {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
