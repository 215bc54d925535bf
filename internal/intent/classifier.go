// Package intent maps a raw user utterance onto a diagram kind, a topic and,
// for sticky notes, a requested count.
package intent

import (
	"strconv"
	"strings"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

const (
	DefaultTopic = "Ideas"
	DefaultCount = 5
	MinCount     = 1
	MaxCount     = 20

	brainstormConfidence = 0.5
)

// Classify never fails: text that matches no keyword set is a brainstorm request.
func Classify(text string) diagram.Intent {
	for _, set := range keywordSets {
		if !set.re.MatchString(text) {
			continue
		}
		in := diagram.Intent{
			Kind:       set.kind,
			Confidence: set.confidence,
			RawText:    text,
		}
		stripCount := false
		if set.kind == diagram.KindStickyNotes {
			n := ExtractCount(text)
			in.Count = &n
			stripCount = true
		}
		in.Topic = extractTopic(text, set, stripCount)
		return in
	}

	topic := strings.TrimSpace(text)
	if topic == "" {
		topic = DefaultTopic
	}
	return diagram.Intent{
		Kind:       diagram.KindBrainstorm,
		Confidence: brainstormConfidence,
		Topic:      topic,
		RawText:    text,
	}
}

// IsCreationRequest reports whether text asks for content to be created: it
// needs both a creation verb and a content-kind keyword.
func IsCreationRequest(text string) bool {
	if !creationVerbRe.MatchString(text) {
		return false
	}
	for _, set := range keywordSets {
		if set.re.MatchString(text) {
			return true
		}
	}
	return brainstormRe.MatchString(text)
}

// ExtractCount returns the first integer literal in text clamped to
// [MinCount, MaxCount], or DefaultCount when there is none.
func ExtractCount(text string) int {
	lit := integerRe.FindString(text)
	if lit == "" {
		return DefaultCount
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		// only overflow gets here
		return MaxCount
	}
	return clamp(n, MinCount, MaxCount)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func extractTopic(text string, set *keywordSet, stripCount bool) string {
	words := dropLeading(strings.Fields(text), isFillerOrVerb)
	rest := stripMatches(set.re, strings.Join(words, " "))
	if stripCount {
		if loc := integerRe.FindStringIndex(rest); loc != nil {
			rest = rest[:loc[0]] + " " + rest[loc[1]:]
		}
	}
	words = dropLeading(strings.Fields(rest), isConnector)
	topic := strings.Trim(strings.Join(words, " "), " \t.,;:!?\"«»")
	if topic == "" {
		return DefaultTopic
	}
	return topic
}

func dropLeading(words []string, drop func(string) bool) []string {
	for len(words) > 0 && drop(words[0]) {
		words = words[1:]
	}
	return words
}

func isFillerOrVerb(word string) bool {
	w := normalizeWord(word)
	for _, suffix := range []string{"-moi", "-nous", "-toi", "-me"} {
		w = strings.TrimSuffix(w, suffix)
	}
	return leadingFillers[w] || creationWordRe.MatchString(w)
}

func isConnector(word string) bool {
	return leadingConnectors[normalizeWord(word)]
}

func normalizeWord(word string) string {
	return strings.Trim(strings.ToLower(word), ",;:!?.\"«»")
}
