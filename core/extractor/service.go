// ABOUTME: Content extractor retrieves an article through a fetching proxy and reduces it to text
// ABOUTME: Every failure is reported as an ExtractionError with a single user-facing kind

package extractor

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"gistfm-api/core/config"
	"gistfm-api/core/domain"
	"gistfm-api/core/errors"
	"gistfm-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// proxyEnvelope is the JSON wrapper returned by the proxy
type proxyEnvelope struct {
	Contents string `json:"contents"`
	Status   *struct {
		HTTPCode int `json:"http_code"`
	} `json:"status"`
}

// Service extracts article text from web pages
type Service struct {
	client interfaces.HTTPClient
	logger interfaces.Logger
	config config.ExtractionConfig

	parseDocument func(r io.Reader) (*goquery.Document, error)
}

// NewService creates a new extractor service
func NewService(client interfaces.HTTPClient, logger interfaces.Logger, opts ...config.ExtractionOption) *Service {
	return &Service{
		client: client,
		logger: logger,
		config: config.NewExtractionConfig(opts...),

		parseDocument: goquery.NewDocumentFromReader,
	}
}

// Extract fetches rawURL through the proxy and returns its normalized article text
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.Article, error) {
	target, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := s.fetch(ctx, target)
	if err != nil {
		s.logger.Warn("Article fetch failed", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return nil, err
	}

	article, err := s.parse(target, page)
	if err != nil {
		s.logger.Info("Article rejected", map[string]interface{}{
			"url":  target,
			"kind": string(errors.ExtractionKindOf(err)),
		})
		return nil, err
	}

	s.logger.Info("Article extracted", map[string]interface{}{
		"url":   target,
		"chars": article.Len(),
	})

	return article, nil
}

// fetch retrieves the raw HTML of target and checks the proxy envelope
func (s *Service) fetch(ctx context.Context, target string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	resp, err := s.client.Get(ctx, s.proxyURL(target))
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.NewExtractionError(errors.KindTimeout, err)
		}
		return "", errors.NewExtractionError(errors.KindNetworkError, err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return "", &errors.ExtractionError{
			Kind:       errors.KindProxyUnavailable,
			StatusCode: resp.StatusCode(),
		}
	}

	data, err := io.ReadAll(body)
	if err != nil {
		if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.NewExtractionError(errors.KindTimeout, err)
		}
		return "", errors.NewExtractionError(errors.KindNetworkError, err)
	}

	var envelope proxyEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", errors.NewExtractionError(errors.KindProxyBadResponse, err)
	}

	if envelope.Status != nil {
		switch code := envelope.Status.HTTPCode; {
		case code == 404:
			return "", &errors.ExtractionError{Kind: errors.KindNotFound, StatusCode: code}
		case code == 403:
			return "", &errors.ExtractionError{Kind: errors.KindForbidden, StatusCode: code}
		case code >= 400:
			return "", &errors.ExtractionError{Kind: errors.KindUpstreamError, StatusCode: code}
		}
	}

	if envelope.Contents == "" {
		return "", errors.NewExtractionError(errors.KindEmptyContent, nil)
	}

	return envelope.Contents, nil
}

func (s *Service) proxyURL(target string) string {
	sep := "?"
	if strings.Contains(s.config.ProxyURL, "?") {
		sep = "&"
	}
	return s.config.ProxyURL + sep + "url=" + url.QueryEscape(target)
}

// parse reduces page to article text. A panic in the parse stage is reported
// as StructureTooComplex.
func (s *Service) parse(target, page string) (article *domain.Article, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Page structure could not be processed", map[string]interface{}{
				"url":   target,
				"panic": fmt.Sprint(r),
			})
			article = nil
			err = errors.NewExtractionError(errors.KindStructureTooComplex, fmt.Errorf("%v", r))
		}
	}()

	doc, err := s.parseDocument(strings.NewReader(page))
	if err != nil {
		return nil, errors.NewExtractionError(errors.KindStructureTooComplex, err)
	}

	removeNoise(doc, s.config.NoiseSelectors)

	root := selectRoot(doc)
	if root == nil {
		return nil, errors.NewExtractionError(errors.KindNoContent, nil)
	}

	text := collapseWhitespace(renderText(root))
	if qErr := checkQuality(text, s.config.MinLength, s.config.Indicators); qErr != nil {
		return nil, qErr
	}

	article = &domain.Article{
		URL:  target,
		Text: domain.ArticleText(text),
	}
	if s.config.ExtractMetadata {
		s.readMetadata(target, page, article)
	}

	return article, nil
}

// readMetadata fills title, site name, and byline from the original markup.
// It never changes the extracted text and its failures are ignored.
func (s *Service) readMetadata(target, page string, article *domain.Article) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Debug("Metadata parser panicked", map[string]interface{}{
				"url":   target,
				"panic": fmt.Sprint(r),
			})
		}
	}()

	pageURL, err := url.Parse(target)
	if err != nil {
		return
	}

	meta, err := readability.FromReader(strings.NewReader(page), pageURL)
	if err != nil {
		s.logger.Debug("Metadata unavailable", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return
	}

	article.Title = strings.TrimSpace(meta.Title)
	article.SiteName = strings.TrimSpace(meta.SiteName)
	article.Byline = strings.TrimSpace(meta.Byline)
}
