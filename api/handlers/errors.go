// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"gistfm-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsConflict(err):
		return huma.Error409Conflict(err.Error())
	case stderrors.Is(err, errors.ErrEmptyArticle), stderrors.Is(err, errors.ErrEmptyURL):
		return huma.Error400BadRequest(err.Error())
	case stderrors.Is(err, errors.ErrNoScript), stderrors.Is(err, errors.ErrNoAudio):
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsExternalAPI(err) {
		status := errors.StatusCodeOf(err)
		switch {
		case status >= 500:
			return huma.Error503ServiceUnavailable("External service error", err)
		case status == 429:
			return huma.Error429TooManyRequests("Rate limited by external service")
		case status >= 400:
			return huma.Error400BadRequest("External service request error", err)
		default:
			return huma.Error500InternalServerError("Unexpected external service response", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
