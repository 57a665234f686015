// Package prompts holds the static content-type → prompt template
// registry used by the generation pipeline. The registry is immutable
// data; lookup has no side effects.
package prompts

import (
	"fmt"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

// Template pairs a system instruction with a user instruction format.
// The format contains a single %s placeholder for the raw prompt text.
type Template struct {
	System     string
	userFormat string
}

// UserPrompt builds the final user instruction sent to the model.
func (t Template) UserPrompt(prompt string) string {
	return fmt.Sprintf(t.userFormat, prompt)
}

var registry = map[models.ContentType]Template{
	models.ContentTypeBlogPost: {
		System:     "You are a helpful AI assistant that generates detailed and professional blog posts.",
		userFormat: "Generate a detailed and professional blog post about %s",
	},
	models.ContentTypeSocialMedia: {
		System:     "You are a social media expert who writes engaging, concise posts with strong hooks.",
		userFormat: "Write an engaging social media post about %s",
	},
	models.ContentTypeSEO: {
		System:     "You are an SEO specialist who writes keyword-rich content that still reads naturally.",
		userFormat: "Write an SEO-optimized article about %s",
	},
	models.ContentTypeDialogue: {
		System:     "You are a scriptwriter who produces natural, flowing dialogue between characters.",
		userFormat: "Write a dialogue exploring the following topic: %s",
	},
	models.ContentTypeEmail: {
		System:     "You are an email marketing expert who writes campaigns with clear calls to action.",
		userFormat: "Write a marketing email campaign about %s",
	},
	models.ContentTypeRepurpose: {
		System:     "You are a content strategist who adapts existing content for new formats and audiences.",
		userFormat: "Repurpose the following content for a different audience and format: %s",
	},
	models.ContentTypeBrandVoice: {
		System:     "You are a brand copywriter who maintains a consistent, distinctive brand voice.",
		userFormat: "Write on-brand copy about %s",
	},
}

// Lookup returns the template for the given content type.
// An unrecognized type yields models.ErrUnknownContentType; the pipeline
// validates the enum first, so hitting that error indicates a bug.
func Lookup(contentType models.ContentType) (Template, error) {
	tmpl, ok := registry[contentType]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", models.ErrUnknownContentType, contentType)
	}
	return tmpl, nil
}
