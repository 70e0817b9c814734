// ABOUTME: Classification of script generation and speech synthesis failures
// ABOUTME: An ordered substring rule table maps upstream wording to user-facing kinds

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// GenerationKind identifies a user-facing generation failure
type GenerationKind string

const (
	KindConfiguration GenerationKind = "Configuration"
	KindRateLimited   GenerationKind = "RateLimited"
	KindUnavailable   GenerationKind = "ServiceUnavailable"
	KindContentSafety GenerationKind = "ContentSafety"
	KindRecitation    GenerationKind = "Recitation"
	KindNetwork       GenerationKind = "Network"
	KindUnexpected    GenerationKind = "Unexpected"
)

// ErrMissingAPIKey is returned by upstream clients built without credentials
var ErrMissingAPIKey = errors.New("API key not found")

// GenerationError represents a classified generation failure
type GenerationError struct {
	Kind  GenerationKind
	Stage string
	Cause error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s failed: %s", e.Stage, e.Kind)
	}
	return fmt.Sprintf("%s failed: %s: %v", e.Stage, e.Kind, e.Cause)
}

// Unwrap returns the underlying cause
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// IsGeneration checks if an error is a GenerationError
func IsGeneration(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// Rule maps any of its patterns to a kind
type Rule struct {
	Kind     GenerationKind
	Patterns []string
}

// Classifier matches error text against rules in order; the first match wins
type Classifier struct {
	Rules    []Rule
	Fallback GenerationKind
}

// DefaultClassifier holds the checklist used for hosted model failures
var DefaultClassifier = Classifier{
	Rules: []Rule{
		{Kind: KindConfiguration, Patterns: []string{"api key"}},
		{Kind: KindRateLimited, Patterns: []string{"429", "quota"}},
		{Kind: KindUnavailable, Patterns: []string{"503", "overloaded"}},
		{Kind: KindContentSafety, Patterns: []string{"safety", "blocked"}},
		{Kind: KindRecitation, Patterns: []string{"recitation"}},
		{Kind: KindNetwork, Patterns: []string{"network", "fetch"}},
	},
	Fallback: KindUnexpected,
}

// Classify returns the kind for err. Matching is case-insensitive.
func (c Classifier) Classify(err error) GenerationKind {
	if err == nil {
		return ""
	}
	text := strings.ToLower(err.Error())
	for _, rule := range c.Rules {
		for _, p := range rule.Patterns {
			if strings.Contains(text, strings.ToLower(p)) {
				return rule.Kind
			}
		}
	}
	return c.Fallback
}

// ClassifyGeneration classifies err with DefaultClassifier
func ClassifyGeneration(err error) GenerationKind {
	return DefaultClassifier.Classify(err)
}
