package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeneratedPost is one finished, platform/tone-tagged post belonging to a
// Generation. Hashtags carry no leading '#' and the body contains none.
type GeneratedPost struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenerationId   uuid.UUID `gorm:"type:uuid;index"`
	Platform       string
	Tone           string
	Content        string
	Hashtags       []string
	CharacterCount int
	CreatedAt      time.Time
}
