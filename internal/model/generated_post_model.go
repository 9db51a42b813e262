package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type GeneratedPost struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GenerationId   uuid.UUID      `gorm:"type:uuid;not null;index;constraint:OnDelete:CASCADE"`
	Platform       string         `gorm:"type:varchar(32);not null"`
	Tone           string         `gorm:"type:varchar(32);not null"`
	Content        string         `gorm:"type:text;not null"`
	Hashtags       datatypes.JSON `gorm:"type:jsonb;not null"`
	CharacterCount int            `gorm:"not null"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
}

func (GeneratedPost) TableName() string {
	return "generated_posts"
}
