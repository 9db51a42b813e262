package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Generation struct {
	Id              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID      `gorm:"type:uuid;not null;index"`
	OriginalContent string         `gorm:"type:text;not null"`
	ContentType     string         `gorm:"type:varchar(32);not null;default:'text'"`
	FileURL         *string        `gorm:"type:text"`
	FileName        *string        `gorm:"type:varchar(255)"`
	Platforms       datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index"`

	Posts []*GeneratedPost `gorm:"foreignKey:GenerationId"`
}

func (Generation) TableName() string {
	return "generations"
}
