package services

import (
	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/layout"
	"github.com/justsurfingit/job-canvas/internal/materialize"
	"github.com/justsurfingit/job-canvas/internal/parser"
)

// ResolveContent parses completion for the intent's kind, substituting
// fallback content when it cannot be used. Only generated kinds are valid.
func ResolveContent(in diagram.Intent, completion string) (diagram.Content, parser.Outcome) {
	c := diagram.Content{Kind: in.Kind, Topic: in.Topic}
	var out parser.Outcome
	switch in.Kind {
	case diagram.KindMindMap:
		c.MindMap, out = parser.ResolveMindMap(completion, in.Topic)
	case diagram.KindStickyNotes:
		count := 0
		if in.Count != nil {
			count = *in.Count
		}
		c.StickyNotes, out = parser.ResolveStickyNotes(completion, in.Topic, count)
	case diagram.KindFlowDiagram:
		c.Flow, out = parser.ResolveFlowDiagram(completion, in.Topic)
	}
	return c, out
}

// Materialize lays c out around anchor and converts it into canvas primitives.
func Materialize(c diagram.Content, anchor diagram.Position, strategy layout.Strategy, key string) materialize.Result {
	opts := materialize.Options{Key: key}
	switch c.Kind {
	case diagram.KindMindMap:
		return materialize.MindMap(c.MindMap, layout.CalculateMindMapLayout(c.MindMap, anchor), opts)
	case diagram.KindStickyNotes:
		positions := layout.CalculateStickyNotesLayout(len(c.StickyNotes), anchor)
		return materialize.StickyNotes(c.StickyNotes, positions, c.Topic, opts)
	case diagram.KindFlowDiagram:
		return materialize.FlowDiagram(c.Flow, layout.CalculateFlowDiagramLayout(c.Flow, anchor, strategy), opts)
	}
	return materialize.StickyNotes(nil, nil, c.Topic, opts)
}
