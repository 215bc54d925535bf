// Package parser turns raw completion text into validated diagram structures
// and supplies deterministic fallback content when that fails.
package parser

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrNoJSON means the completion held no decodable JSON of the expected bracket type.
	ErrNoJSON = errors.New("parser: no JSON in completion")
	// ErrInvalidShape means the JSON decoded but failed shape validation.
	ErrInvalidShape = errors.New("parser: completion has invalid shape")
)

var fenceRe = regexp.MustCompile("(?i)```(?:json)?")

// StripFences removes Markdown code fence markers wherever they appear.
func StripFences(text string) string {
	return fenceRe.ReplaceAllString(text, "")
}

// ExtractObject returns the text between the first '{' and the last '}'.
func ExtractObject(text string) (string, bool) {
	return extractBetween(StripFences(text), '{', '}')
}

// ExtractArray returns the text between the first '[' and the last ']'.
func ExtractArray(text string) (string, bool) {
	return extractBetween(StripFences(text), '[', ']')
}

// extractBetween is a greedy first-to-last scan, not a parser: it assumes the
// completion never holds two sibling top-level values of the same bracket type.
func extractBetween(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", false
	}
	end := strings.LastIndexByte(text, close)
	if end <= start {
		return "", false
	}
	return text[start : end+1], true
}
