// ABOUTME: Quality gate for extracted text
// ABOUTME: Short text is classified by the blocking phrases it contains

package extractor

import (
	"strings"
	"unicode/utf8"

	"gistfm-api/core/config"
	"gistfm-api/core/errors"
)

// checkQuality returns nil when text meets the minimum length, otherwise the
// kind of the first indicator rule with a phrase present in the text
func checkQuality(text string, minLength int, rules []config.IndicatorRule) *errors.ExtractionError {
	if utf8.RuneCountInString(text) >= minLength {
		return nil
	}
	return errors.NewExtractionError(classifyShortText(text, rules), nil)
}

func classifyShortText(text string, rules []config.IndicatorRule) errors.ExtractionKind {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, phrase := range rule.Phrases {
			if strings.Contains(lower, strings.ToLower(phrase)) {
				return rule.Kind
			}
		}
	}
	return errors.KindExtractionFailed
}
