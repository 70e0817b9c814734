package handlers

import (
	"fmt"
	"testing"

	"gistfm-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedDetail string
	}{
		{
			name:  "nil error returns nil",
			input: nil,
		},
		{
			name:           "busy returns 409",
			input:          errors.ErrBusy,
			expectedStatus: 409,
			expectedDetail: "another operation is in progress",
		},
		{
			name:           "empty article returns 400",
			input:          errors.ErrEmptyArticle,
			expectedStatus: 400,
			expectedDetail: "article text is empty",
		},
		{
			name:           "empty url returns 400",
			input:          errors.ErrEmptyURL,
			expectedStatus: 400,
			expectedDetail: "url input is empty",
		},
		{
			name:           "no audio returns 404",
			input:          errors.ErrNoAudio,
			expectedStatus: 404,
			expectedDetail: "no audio available",
		},
		{
			name:           "no script returns 404",
			input:          errors.ErrNoScript,
			expectedStatus: 404,
			expectedDetail: "no script available",
		},
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "bookmark", ID: "x"},
			expectedStatus: 404,
			expectedDetail: "bookmark not found: x",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "rate", Message: "unsupported rate 3"},
			expectedStatus: 400,
			expectedDetail: "unsupported rate 3",
		},
		{
			name:           "ExternalAPIError with 503 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 503, Message: "overloaded"},
			expectedStatus: 503,
			expectedDetail: "External service error",
		},
		{
			name:           "wrapped ExternalAPIError with 502 returns 503",
			input:          errors.WrapError(&errors.ExternalAPIError{StatusCode: 502, Message: "bad gateway"}, "speech failed"),
			expectedStatus: 503,
			expectedDetail: "External service error",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited"},
			expectedStatus: 429,
			expectedDetail: "Rate limited by external service",
		},
		{
			name:           "ExternalAPIError with 400 returns 400",
			input:          &errors.ExternalAPIError{StatusCode: 400, Message: "bad request"},
			expectedStatus: 400,
			expectedDetail: "External service request error",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 500",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "ok but error"},
			expectedStatus: 500,
			expectedDetail: "Unexpected external service response",
		},
		{
			name:           "wrapped busy returns 409",
			input:          fmt.Errorf("generate: %w", errors.ErrBusy),
			expectedStatus: 409,
			expectedDetail: "another operation is in progress",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "bookmark", ID: "y"}),
			expectedStatus: 404,
			expectedDetail: "bookmark not found",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedDetail)
		})
	}
}
