// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for the extraction, generation, and synthesis collaborators

package interfaces

import (
	"context"

	"gistfm-api/core/domain"
)

// ArticleExtractor retrieves and normalizes article text from a URL
type ArticleExtractor interface {
	Extract(ctx context.Context, rawURL string) (*domain.Article, error)
}

// ScriptGenerator turns article text into a spoken-word script
type ScriptGenerator interface {
	GenerateScript(ctx context.Context, text domain.ArticleText, tone domain.Tone) (string, error)
}

// SpeechSynthesizer turns a script into raw 16-bit mono PCM samples
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, script string, voice domain.Voice) ([]byte, error)
}
