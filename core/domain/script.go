// ABOUTME: Script domain model produced by summarization
// ABOUTME: A script is immutable once generated

package domain

import "strings"

// TargetWords is the soft length target given to the script generator
const TargetWords = 250

// Script is spoken-word text produced from an article
type Script struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// WordCount returns the number of whitespace separated words
func (s Script) WordCount() int {
	return len(strings.Fields(s.Text))
}

// Empty reports whether the script has no text
func (s Script) Empty() bool {
	return strings.TrimSpace(s.Text) == ""
}
