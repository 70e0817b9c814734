// ABOUTME: Errors for operations attempted in the wrong generation state

package errors

import "errors"

var (
	// ErrBusy is returned when a pipeline is already in flight
	ErrBusy = errors.New("another operation is in progress")

	// ErrEmptyArticle is returned when generation is requested without article text
	ErrEmptyArticle = errors.New("article text is empty")

	// ErrEmptyURL is returned when a fetch is requested without URL input
	ErrEmptyURL = errors.New("url input is empty")

	// ErrNoScript is returned when an action needs a script and none exists
	ErrNoScript = errors.New("no script available")

	// ErrNoAudio is returned when an action needs audio and none exists
	ErrNoAudio = errors.New("no audio available")
)

// IsConflict reports whether err is a state conflict rather than a failure
func IsConflict(err error) bool {
	return errors.Is(err, ErrBusy)
}
