// ABOUTME: URL normalization for article import
// ABOUTME: Adds a missing scheme and rejects input that cannot be a web address

package extractor

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"gistfm-api/core/errors"
)

var (
	schemePattern = regexp.MustCompile(`(?i)^https?://`)
	wwwPattern    = regexp.MustCompile(`(?i)^www\.`)
)

// NormalizeURL trims the input and prepends https:// when no http(s) scheme is present.
// Input without a scheme must contain a dot or start with www.
func NormalizeURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)

	if !schemePattern.MatchString(clean) {
		if !wwwPattern.MatchString(clean) && !strings.Contains(clean, ".") {
			return "", errors.NewExtractionError(errors.KindInvalidURL,
				fmt.Errorf("missing http(s) scheme: %q", clean))
		}
		clean = "https://" + clean
	}

	u, err := url.Parse(clean)
	if err != nil {
		return "", errors.NewExtractionError(errors.KindInvalidURL, err)
	}
	if u.Host == "" {
		return "", errors.NewExtractionError(errors.KindInvalidURL, fmt.Errorf("no host in %q", clean))
	}

	return clean, nil
}

// ValidateInput is the local pre-check run before any network call.
// The input must parse after optional scheme insertion and its hostname
// must contain a dot or be localhost.
func ValidateInput(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return "", errors.NewExtractionError(errors.KindInvalidURL, fmt.Errorf("empty url"))
	}

	if !schemePattern.MatchString(clean) {
		clean = "https://" + clean
	}

	u, err := url.Parse(clean)
	if err != nil {
		return "", errors.NewExtractionError(errors.KindInvalidURL, err)
	}

	host := u.Hostname()
	if host != "localhost" && !strings.Contains(host, ".") {
		return "", errors.NewExtractionError(errors.KindInvalidURL, fmt.Errorf("invalid hostname %q", host))
	}

	return clean, nil
}
