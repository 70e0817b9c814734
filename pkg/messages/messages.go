// ABOUTME: User-facing error messages resolved from an embedded message catalogue
// ABOUTME: Message IDs are error kind names so every classified failure has one sentence

package messages

import (
	"embed"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"gistfm-api/core/errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

// InvalidURLFormat is the message ID for the local URL pre-check
const InvalidURLFormat = "InvalidUrlFormat"

// Catalog resolves message IDs to text in one language
type Catalog struct {
	localizer *i18n.Localizer
}

// New loads the embedded catalogue. Unknown languages fall back to English.
func New(lang string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	if _, err := bundle.LoadMessageFileFS(locales, "locales/en.json"); err != nil {
		return nil, fmt.Errorf("failed to load message catalogue: %w", err)
	}

	return &Catalog{localizer: i18n.NewLocalizer(bundle, lang, language.English.String())}, nil
}

// Text returns the message for id, or "" when the catalogue has no such message
func (c *Catalog) Text(id string, data map[string]interface{}) string {
	msg, err := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return ""
	}
	return msg
}

// Extraction returns the message for a failed article import
func (c *Catalog) Extraction(err error) string {
	kind := errors.ExtractionKindOf(err)
	if kind == "" {
		return c.unexpected(err)
	}

	status := 0
	var extErr *errors.ExtractionError
	if stderrors.As(err, &extErr) {
		status = extErr.StatusCode
	}

	if msg := c.Text(string(kind), map[string]interface{}{"Status": status}); msg != "" {
		return msg
	}
	return c.unexpected(nil)
}

// Generation returns the message for a classified generation failure.
// Unmatched failures show the underlying error text when there is one.
func (c *Catalog) Generation(kind errors.GenerationKind, cause error) string {
	if kind == errors.KindUnexpected || kind == "" {
		return c.unexpected(cause)
	}
	if msg := c.Text(string(kind), nil); msg != "" {
		return msg
	}
	return c.unexpected(cause)
}

func (c *Catalog) unexpected(cause error) string {
	if cause != nil && cause.Error() != "" {
		return cause.Error()
	}
	return c.Text(string(errors.KindUnexpected), nil)
}
