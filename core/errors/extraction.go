// ABOUTME: Extraction error kinds surfaced by the content extractor
// ABOUTME: Each failure of the URL import pipeline maps to exactly one kind

package errors

import (
	"errors"
	"fmt"
)

// ExtractionKind identifies a user-facing extraction failure
type ExtractionKind string

const (
	KindInvalidURL          ExtractionKind = "InvalidUrl"
	KindTimeout             ExtractionKind = "Timeout"
	KindNetworkError        ExtractionKind = "NetworkError"
	KindProxyUnavailable    ExtractionKind = "ProxyUnavailable"
	KindProxyBadResponse    ExtractionKind = "ProxyBadResponse"
	KindNotFound            ExtractionKind = "NotFound"
	KindForbidden           ExtractionKind = "Forbidden"
	KindUpstreamError       ExtractionKind = "UpstreamError"
	KindEmptyContent        ExtractionKind = "EmptyContent"
	KindNoContent           ExtractionKind = "NoContent"
	KindBotChallenge        ExtractionKind = "BotChallenge"
	KindPaywalled           ExtractionKind = "Paywalled"
	KindJSRequired          ExtractionKind = "JsRequired"
	KindExtractionFailed    ExtractionKind = "ExtractionFailed"
	KindStructureTooComplex ExtractionKind = "StructureTooComplex"
)

// ExtractionError represents a failed article extraction
type ExtractionError struct {
	Kind ExtractionKind

	// StatusCode is the proxy or upstream HTTP status when relevant
	StatusCode int

	Cause error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	msg := fmt.Sprintf("extraction failed: %s", e.Kind)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause
func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// NewExtractionError creates an ExtractionError without a status code
func NewExtractionError(kind ExtractionKind, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Cause: cause}
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extErr *ExtractionError
	return errors.As(err, &extErr)
}

// ExtractionKindOf returns the kind of an ExtractionError, or "" for other errors
func ExtractionKindOf(err error) ExtractionKind {
	var extErr *ExtractionError
	if errors.As(err, &extErr) {
		return extErr.Kind
	}
	return ""
}
