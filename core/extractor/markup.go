// ABOUTME: Markup reduction and text rendering for fetched pages
// ABOUTME: Strips non-content elements, picks the content root, and renders its text

package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// contentRoots are tried in order; the first present element wins
var contentRoots = []string{"article", "main", "body"}

// blockElements break the rendered text the way a browser lays them out
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Blockquote: true, atom.Dd: true,
	atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Figcaption: true,
	atom.Figure: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true, atom.Hr: true,
	atom.Li: true, atom.Main: true, atom.Ol: true, atom.P: true,
	atom.Pre: true, atom.Section: true, atom.Table: true, atom.Td: true,
	atom.Th: true, atom.Tr: true, atom.Ul: true, atom.Br: true,
}

// removeNoise deletes every element matching one of the selectors
func removeNoise(doc *goquery.Document, selectors []string) {
	for _, sel := range selectors {
		doc.Find(sel).Remove()
	}
}

// selectRoot returns the main content container, or nil when none exists
func selectRoot(doc *goquery.Document) *goquery.Selection {
	for _, tag := range contentRoots {
		if s := doc.Find(tag).First(); s.Length() > 0 {
			return s
		}
	}
	return nil
}

// renderText returns the visible text of the selection with block boundaries kept
func renderText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

// collapseWhitespace replaces every run of whitespace with one space and trims
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
