package extractor

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gistfm-api/core/config"
	"gistfm-api/core/errors"
	"gistfm-api/core/interfaces"
	"gistfm-api/infrastructure/http/standard"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var longParagraph = strings.Repeat("The council approved the new transit budget after a long debate. ", 5)

func envelope(t *testing.T, contents string, code int) string {
	t.Helper()
	payload := map[string]interface{}{"contents": contents}
	if code != 0 {
		payload["status"] = map[string]interface{}{"http_code": code}
	}
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return string(data)
}

func serviceReturning(statusCode int, body string) *Service {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: statusCode, body: body}, nil
		},
	}
	return NewService(client, &mockLogger{}, config.WithoutMetadata())
}

func TestExtract_Success(t *testing.T) {
	page := `<html><head><title>Budget passes</title></head><body>
		<nav>Home | World | Sports</nav>
		<header>Daily Planet</header>
		<article><h1>Budget passes</h1><p>` + longParagraph + `</p>
		<div class="ad">Buy now</div><form><input value="email"></form></article>
		<footer>Copyright</footer></body></html>`

	var requested string
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			requested = url
			return &mockResponse{statusCode: 200, body: envelope(t, page, 200)}, nil
		},
	}
	svc := NewService(client, &mockLogger{}, config.WithoutMetadata())

	article, err := svc.Extract(context.Background(), "example.com/news?id=1")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultProxyURL+"?url=https%3A%2F%2Fexample.com%2Fnews%3Fid%3D1", requested)
	assert.Equal(t, "https://example.com/news?id=1", article.URL)

	text := string(article.Text)
	assert.True(t, strings.HasPrefix(text, "Budget passes The council"), text)
	assert.NotContains(t, text, "Buy now")
	assert.NotContains(t, text, "Home | World")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "  ")
	assert.GreaterOrEqual(t, article.Len(), 200)
}

func TestExtract_RootFallback(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		contains string
		excludes string
	}{
		{
			name:     "main used when no article",
			page:     `<body><div>outside text</div><main><p>` + longParagraph + `</p></main></body>`,
			contains: "transit budget",
			excludes: "outside text",
		},
		{
			name:     "body used when no article or main",
			page:     `<body><div>intro line</div><p>` + longParagraph + `</p></body>`,
			contains: "intro line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := serviceReturning(200, envelope(t, tt.page, 0))
			article, err := svc.Extract(context.Background(), "https://example.com")
			require.NoError(t, err)
			assert.Contains(t, string(article.Text), tt.contains)
			if tt.excludes != "" {
				assert.NotContains(t, string(article.Text), tt.excludes)
			}
		})
	}
}

func TestExtract_BlockElementsAreSeparated(t *testing.T) {
	page := `<article><p>first</p><p>second</p>` + `<p>` + longParagraph + `</p></article>`
	svc := serviceReturning(200, envelope(t, page, 0))

	article, err := svc.Extract(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(article.Text), "first second "))
}

func TestExtract_Failures(t *testing.T) {
	short := func(text string) string { return "<article><p>" + text + "</p></article>" }

	tests := []struct {
		name       string
		statusCode int
		body       func(t *testing.T) string
		wantKind   errors.ExtractionKind
		wantStatus int
	}{
		{
			name:       "proxy non-success",
			statusCode: 502,
			body:       func(t *testing.T) string { return "bad gateway" },
			wantKind:   errors.KindProxyUnavailable,
			wantStatus: 502,
		},
		{
			name:       "envelope not json",
			statusCode: 200,
			body:       func(t *testing.T) string { return "<html>" },
			wantKind:   errors.KindProxyBadResponse,
		},
		{
			name:       "upstream 404 without contents",
			statusCode: 200,
			body:       func(t *testing.T) string { return `{"status":{"http_code":404}}` },
			wantKind:   errors.KindNotFound,
			wantStatus: 404,
		},
		{
			name:       "upstream 403",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, "<p>x</p>", 403) },
			wantKind:   errors.KindForbidden,
			wantStatus: 403,
		},
		{
			name:       "upstream 500",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, "<p>x</p>", 500) },
			wantKind:   errors.KindUpstreamError,
			wantStatus: 500,
		},
		{
			name:       "empty contents",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, "", 200) },
			wantKind:   errors.KindEmptyContent,
		},
		{
			name:       "paywall phrase",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, short("Please subscribe to read more..."), 0) },
			wantKind:   errors.KindPaywalled,
		},
		{
			name:       "captcha",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, short("Complete the CAPTCHA to continue"), 0) },
			wantKind:   errors.KindBotChallenge,
		},
		{
			name:       "javascript wall",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, short("Please enable JavaScript"), 0) },
			wantKind:   errors.KindJSRequired,
		},
		{
			name:       "access denied",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, short("Access Denied"), 0) },
			wantKind:   errors.KindForbidden,
		},
		{
			name:       "bot rule beats paywall rule",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, short("Sign in or prove you are not a robot"), 0) },
			wantKind:   errors.KindBotChallenge,
		},
		{
			name:       "short text without indicators",
			statusCode: 200,
			body:       func(t *testing.T) string { return envelope(t, short("Video only."), 0) },
			wantKind:   errors.KindExtractionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := serviceReturning(tt.statusCode, tt.body(t))

			article, err := svc.Extract(context.Background(), "https://example.com/a")
			require.Error(t, err)
			assert.Nil(t, article)

			var extErr *errors.ExtractionError
			require.True(t, stderrors.As(err, &extErr))
			assert.Equal(t, tt.wantKind, extErr.Kind)
			assert.Equal(t, tt.wantStatus, extErr.StatusCode)
		})
	}
}

func TestExtract_InvalidURLSkipsNetwork(t *testing.T) {
	called := false
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			called = true
			return nil, nil
		},
	}
	svc := NewService(client, &mockLogger{})

	_, err := svc.Extract(context.Background(), "not a url")
	assert.Equal(t, errors.KindInvalidURL, errors.ExtractionKindOf(err))
	assert.False(t, called)
}

func TestExtract_TransportErrors(t *testing.T) {
	t.Run("network error", func(t *testing.T) {
		client := &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return nil, stderrors.New("dial tcp: lookup api.allorigins.win: no such host")
			},
		}
		svc := NewService(client, &mockLogger{})
		_, err := svc.Extract(context.Background(), "https://example.com")
		assert.Equal(t, errors.KindNetworkError, errors.ExtractionKindOf(err))
	})

	t.Run("timeout", func(t *testing.T) {
		client := &mockHTTPClient{
			getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
		}
		svc := NewService(client, &mockLogger{}, config.WithTimeout(20*time.Millisecond))
		_, err := svc.Extract(context.Background(), "https://example.com")
		assert.Equal(t, errors.KindTimeout, errors.ExtractionKindOf(err))
	})
}

func TestExtract_NoContentRoot(t *testing.T) {
	page := "<p>" + longParagraph + "</p>"
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: envelope(t, page, 0)}, nil
		},
	}
	svc := NewService(client, &mockLogger{}, config.WithNoiseSelectors([]string{"body"}))

	_, err := svc.Extract(context.Background(), "https://example.com")
	assert.Equal(t, errors.KindNoContent, errors.ExtractionKindOf(err))
}

func TestExtract_StructureTooComplex(t *testing.T) {
	tests := []struct {
		name  string
		parse func(r io.Reader) (*goquery.Document, error)
	}{
		{
			name: "parser panics",
			parse: func(r io.Reader) (*goquery.Document, error) {
				panic("maximum nesting depth exceeded")
			},
		},
		{
			name: "parser fails",
			parse: func(r io.Reader) (*goquery.Document, error) {
				return nil, stderrors.New("malformed document")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := serviceReturning(200, envelope(t, "<article><p>"+longParagraph+"</p></article>", 0))
			svc.parseDocument = tt.parse

			article, err := svc.Extract(context.Background(), "https://example.com/deep")
			assert.Nil(t, article)
			assert.Equal(t, errors.KindStructureTooComplex, errors.ExtractionKindOf(err))
		})
	}
}

func TestExtract_ConfigurableThreshold(t *testing.T) {
	page := "<article><p>Short but legitimate brief.</p></article>"
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: envelope(t, page, 0)}, nil
		},
	}
	svc := NewService(client, &mockLogger{}, config.WithMinLength(10), config.WithoutMetadata())

	article, err := svc.Extract(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "Short but legitimate brief.", string(article.Text))
}

func TestExtract_ThroughProxyServer(t *testing.T) {
	page := `<html><head><title>Rail line reopens</title>
		<meta property="og:site_name" content="Metro Times"></head>
		<body><article><h1>Rail line reopens</h1>` + strings.Repeat("<p>"+longParagraph+"</p>", 3) + `</article></body></html>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://metro.example/rail", r.URL.Query().Get("url"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(envelope(t, page, 200)))
	}))
	defer server.Close()

	svc := NewService(standard.NewStandardHTTPClient(0), &mockLogger{}, config.WithProxyURL(server.URL+"/get"))

	article, err := svc.Extract(context.Background(), "metro.example/rail")
	require.NoError(t, err)
	assert.Contains(t, string(article.Text), "Rail line reopens")
	assert.Equal(t, "Metro Times", article.SiteName)
	assert.NotEmpty(t, article.Title)
}

func TestClassifyShortText_PriorityOrder(t *testing.T) {
	rules := config.DefaultIndicators()

	tests := []struct {
		text string
		want errors.ExtractionKind
	}{
		{"human verification required", errors.KindBotChallenge},
		{"member-only story", errors.KindPaywalled},
		{"log in to continue", errors.KindPaywalled},
		{"your browser is not supported", errors.KindJSRequired},
		{"403 Forbidden", errors.KindForbidden},
		{"enable javascript and subscribe", errors.KindPaywalled},
		{"access denied, enable javascript", errors.KindJSRequired},
		{"nothing here", errors.KindExtractionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyShortText(tt.text, rules))
		})
	}
}

func TestCheckQuality_NeverPassesBelowThreshold(t *testing.T) {
	for n := 0; n < 200; n += 37 {
		text := strings.Repeat("a", n)
		assert.NotNil(t, checkQuality(text, 200, config.DefaultIndicators()), "length %d", n)
	}
	assert.Nil(t, checkQuality(strings.Repeat("é", 200), 200, nil))
}
