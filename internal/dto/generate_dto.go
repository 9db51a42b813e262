package dto

import (
	"time"

	"github.com/google/uuid"
)

// GenerateRequest is the inbound payload for POST /api/generate/v1.
// Content may be omitted when an attachment supplies the source text.
type GenerateRequest struct {
	Content   string            `json:"content"`
	Platforms []string          `json:"platforms" validate:"required,min=1,dive,required"`
	Tones     map[string]string `json:"tones" validate:"required"`

	// Attachment is populated by the controller from the multipart part,
	// never from JSON.
	Attachment *AttachmentPayload `json:"-"`
}

type AttachmentPayload struct {
	FileName string
	MimeType string
	FileType string // Declared extension: pdf, xlsx, csv, txt
	Data     []byte
}

type GeneratedPostResponse struct {
	Id             uuid.UUID `json:"id"`
	GenerationId   uuid.UUID `json:"generation_id"`
	Platform       string    `json:"platform"`
	Tone           string    `json:"tone"`
	Content        string    `json:"content"`
	Hashtags       []string  `json:"hashtags"`
	CharacterCount int       `json:"character_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type GenerateResponse struct {
	GenerationId uuid.UUID               `json:"generation_id"`
	Posts        []GeneratedPostResponse `json:"posts"`
}

type GenerationHistoryItem struct {
	Id              uuid.UUID               `json:"id"`
	UserId          uuid.UUID               `json:"user_id"`
	OriginalContent string                  `json:"original_content"`
	ContentType     string                  `json:"content_type"`
	FileURL         *string                 `json:"file_url"`
	FileName        *string                 `json:"file_name"`
	Platforms       []string                `json:"platforms"`
	CreatedAt       time.Time               `json:"created_at"`
	GeneratedPosts  []GeneratedPostResponse `json:"generated_posts"`
}
