package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentType selects which prompt template is used for generation.
type ContentType string

const (
	ContentTypeBlogPost    ContentType = "blog-post"
	ContentTypeSocialMedia ContentType = "social-media"
	ContentTypeSEO         ContentType = "seo-optimized"
	ContentTypeDialogue    ContentType = "dialogue"
	ContentTypeEmail       ContentType = "email-campaign"
	ContentTypeRepurpose   ContentType = "content-repurposing"
	ContentTypeBrandVoice  ContentType = "brand-voice"

	// DefaultContentType is used when a request omits the content type.
	DefaultContentType = ContentTypeBlogPost
)

// ContentTypes lists every recognized content type.
var ContentTypes = []ContentType{
	ContentTypeBlogPost,
	ContentTypeSocialMedia,
	ContentTypeSEO,
	ContentTypeDialogue,
	ContentTypeEmail,
	ContentTypeRepurpose,
	ContentTypeBrandVoice,
}

// Valid reports whether t is a member of the recognized set.
func (t ContentType) Valid() bool {
	for _, ct := range ContentTypes {
		if t == ct {
			return true
		}
	}
	return false
}

// Content is a generated content record. All fields are immutable after
// creation; output is set exactly once by the generation pipeline.
type Content struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	UserID      uuid.UUID   `json:"user_id" db:"user_id"`
	Prompt      string      `json:"prompt" db:"prompt"`
	ContentType ContentType `json:"content_type" db:"content_type"`
	Output      string      `json:"output" db:"output"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// GenerateRequest is the body of POST /api/content. UserID is compared
// against the authenticated caller before anything else happens.
type GenerateRequest struct {
	Prompt      string `json:"prompt"`
	UserID      string `json:"userId"`
	ContentType string `json:"contentType,omitempty"`
}
