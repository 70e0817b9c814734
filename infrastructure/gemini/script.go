// ABOUTME: Script generation over the Gemini API using the generative-ai-go client
// ABOUTME: Builds the scriptwriter prompt from tone instruction, guidelines, and article text

package gemini

import (
	"context"
	"fmt"
	"strings"

	"gistfm-api/core/domain"
	"gistfm-api/core/errors"
	"gistfm-api/core/interfaces"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultScriptModel is the text model used for scriptwriting
const DefaultScriptModel = "gemini-2.5-flash"

// FallbackScript is returned when the model answers with no text
const FallbackScript = "Could not generate summary."

const promptTemplate = `You are an expert news scriptwriter.
Convert the following raw article text into a spoken-word script suitable for a text-to-speech engine.

GUIDELINES:
- The output MUST be plain text.
- Remove valid URLS, citations, or visual descriptions not suitable for audio.
- %s
- Keep the length under 250 words unless the article is very long, but aim for a 1-2 minute listen.
- Do not include "Voiceover:" or "Narrator:" prefixes. Just the script.

ARTICLE TEXT:
%s
`

// contentGenerator is the subset of *genai.GenerativeModel the generator uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// ScriptGenerator implements interfaces.ScriptGenerator
type ScriptGenerator struct {
	client *genai.Client
	model  contentGenerator
	name   string
	logger interfaces.Logger
}

// NewScriptGenerator creates a generator for modelName. An empty apiKey yields a generator
// whose every call fails with ErrMissingAPIKey, so the server can still start.
func NewScriptGenerator(ctx context.Context, apiKey, modelName string, logger interfaces.Logger) (*ScriptGenerator, error) {
	if modelName == "" {
		modelName = DefaultScriptModel
	}
	g := &ScriptGenerator{name: modelName, logger: logger}
	if apiKey == "" {
		return g, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("could not create new genai client: %w", err)
	}
	g.client = client
	g.model = client.GenerativeModel(modelName)
	return g, nil
}

// Close releases the underlying client
func (g *ScriptGenerator) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}

// GenerateScript asks the model for a spoken-word script of text in the given tone
func (g *ScriptGenerator) GenerateScript(ctx context.Context, text domain.ArticleText, tone domain.Tone) (string, error) {
	if g.model == nil {
		return "", errors.ErrMissingAPIKey
	}

	g.logger.Debug("Generating script", map[string]interface{}{
		"model": g.name,
		"tone":  string(tone),
		"chars": len(text),
	})

	res, err := g.model.GenerateContent(ctx, genai.Text(BuildPrompt(text, tone)))
	if err != nil {
		return "", fmt.Errorf("gemini content generation failed: %w", err)
	}

	script := responseText(res)
	if script == "" {
		g.logger.Warn("Model returned no script text", map[string]interface{}{
			"model": g.name,
		})
		return FallbackScript, nil
	}
	return script, nil
}

// BuildPrompt renders the scriptwriter prompt
func BuildPrompt(text domain.ArticleText, tone domain.Tone) string {
	return fmt.Sprintf(promptTemplate, tone.Instruction(), string(text))
}

func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return strings.TrimSpace(sb.String())
}
