package entity

import (
	"time"

	"github.com/google/uuid"
)

// Generation is one user-initiated request to transform source content into
// posts across one or more platforms. Immutable after creation; regenerating
// produces a new Generation.
type Generation struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;index"`
	OriginalContent string
	ContentType     string
	FileURL         *string
	FileName        *string
	Platforms       []string
	CreatedAt       time.Time

	Posts []*GeneratedPost
}
