// ABOUTME: Domain model for article content extracted from a web page
// ABOUTME: Carries the normalized text plus best-effort page metadata

package domain

// ArticleText is the normalized textual content of an article
type ArticleText string

// Article represents the result of a successful extraction
type Article struct {
	URL      string      `json:"url"`
	Title    string      `json:"title,omitempty"`
	SiteName string      `json:"siteName,omitempty"`
	Byline   string      `json:"byline,omitempty"`
	Text     ArticleText `json:"text"`
}

// Len returns the character count of the article text
func (a *Article) Len() int {
	if a == nil {
		return 0
	}
	return len([]rune(string(a.Text)))
}
