package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

// ParseMindMap extracts and validates a mind map. Errors wrap ErrNoJSON or ErrInvalidShape.
func ParseMindMap(text string) (*diagram.MindMap, error) {
	raw, ok := ExtractObject(text)
	if !ok {
		return nil, ErrNoJSON
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	if err := validate(mindMapSchema, doc); err != nil {
		return nil, err
	}

	var m diagram.MindMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	if strings.TrimSpace(m.CenterTopic) == "" {
		return nil, fmt.Errorf("%w: blank centerTopic", ErrInvalidShape)
	}
	for i := range m.Branches {
		b := &m.Branches[i]
		if !diagram.Known(string(b.Color)) {
			b.Color = diagram.NormalizeColor(string(b.Color), diagram.Palette(i))
		}
	}
	return &m, nil
}

// ParseStickyNotes keeps every array element that has a string text and a
// string color and drops the rest. An array with no usable element is invalid.
func ParseStickyNotes(text string) ([]diagram.StickyNote, error) {
	raw, ok := ExtractArray(text)
	if !ok {
		return nil, ErrNoJSON
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an array", ErrInvalidShape)
	}

	notes := make([]diagram.StickyNote, 0, len(items))
	for _, item := range items {
		if stickyNoteSchema.Validate(item) != nil {
			continue
		}
		obj := item.(map[string]any)
		notes = append(notes, diagram.StickyNote{
			Text:  obj["text"].(string),
			Color: diagram.NoteColor(obj["color"].(string)),
		})
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%w: no valid notes among %d items", ErrInvalidShape, len(items))
	}
	return notes, nil
}

// ParseFlowDiagram checks only that nodes and connections are arrays of the
// right element shape. Dangling connection ids are left for materialization.
func ParseFlowDiagram(text string) (*diagram.FlowDiagram, error) {
	raw, ok := ExtractObject(text)
	if !ok {
		return nil, ErrNoJSON
	}
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	if err := validate(flowDiagramSchema, doc); err != nil {
		return nil, err
	}

	var f diagram.FlowDiagram
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidShape, err)
	}
	for i := range f.Nodes {
		f.Nodes[i].Type = diagram.NormalizeFlowNodeType(f.Nodes[i].Type)
	}
	return &f, nil
}
