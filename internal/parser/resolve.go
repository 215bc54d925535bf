package parser

import "github.com/justsurfingit/job-canvas/internal/diagram"

// Outcome records whether a Resolve call fell back, and why.
type Outcome struct {
	Fallback bool
	Cause    error
}

func ResolveMindMap(text, topic string) (*diagram.MindMap, Outcome) {
	m, err := ParseMindMap(text)
	if err != nil {
		return FallbackMindMap(topic), Outcome{Fallback: true, Cause: err}
	}
	return m, Outcome{}
}

func ResolveStickyNotes(text, topic string, count int) ([]diagram.StickyNote, Outcome) {
	notes, err := ParseStickyNotes(text)
	if err != nil {
		return FallbackStickyNotes(topic, count), Outcome{Fallback: true, Cause: err}
	}
	return notes, Outcome{}
}

func ResolveFlowDiagram(text, topic string) (*diagram.FlowDiagram, Outcome) {
	f, err := ParseFlowDiagram(text)
	if err != nil {
		return FallbackFlowDiagram(topic), Outcome{Fallback: true, Cause: err}
	}
	if f.Title == "" {
		f.Title = topicOrDefault(topic)
	}
	return f, Outcome{}
}
