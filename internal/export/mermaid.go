// Package export renders generated diagrams as Mermaid source.
package export

import (
	"errors"
	"fmt"
	"strings"

	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/diagram"
)

var ErrNothingToExport = errors.New("export: content has no structure for its kind")

// Mermaid renders c according to its kind.
func Mermaid(c diagram.Content) (string, error) {
	switch c.Kind {
	case diagram.KindMindMap:
		if c.MindMap == nil {
			return "", ErrNothingToExport
		}
		return MindMap(c.MindMap), nil
	case diagram.KindStickyNotes:
		return StickyNotes(c.Topic, c.StickyNotes), nil
	case diagram.KindFlowDiagram:
		if c.Flow == nil {
			return "", ErrNothingToExport
		}
		return Flow(c.Flow), nil
	}
	return "", fmt.Errorf("%w: %s", ErrNothingToExport, c.Kind)
}

// Flow renders a top-down flowchart with one shape per node type.
func Flow(f *diagram.FlowDiagram) string {
	var b strings.Builder
	b.WriteString("graph TD\n")
	if f.Title != "" {
		b.WriteString(fmt.Sprintf("    %%%% %s\n", f.Title))
	}

	perNode, ids := flowIDs(f.Nodes)
	for i, n := range f.Nodes {
		if perNode[i] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("    %s\n", flowNodeDef(perNode[i], n)))
	}

	for _, c := range f.Connections {
		from, ok1 := ids[c.From]
		to, ok2 := ids[c.To]
		if !ok1 || !ok2 {
			continue
		}
		label := ""
		if c.Label != "" {
			label = fmt.Sprintf("|%s|", escapeLabel(c.Label))
		}
		b.WriteString(fmt.Sprintf("    %s -->%s %s\n", from, label, to))
	}
	return b.String()
}

// flowIDs gives every node a distinct Mermaid identifier. Ids that sanitise
// to the same text get a numeric suffix and empty ids become n<i>. perNode is
// empty for repeated ids, which keep their first definition; byID resolves
// connection endpoints.
func flowIDs(nodes []diagram.FlowNode) (perNode []string, byID map[string]string) {
	perNode = make([]string, len(nodes))
	byID = make(map[string]string, len(nodes))
	used := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		if n.ID != "" {
			if _, dup := byID[n.ID]; dup {
				continue
			}
		}
		id := safeID(n.ID)
		if id == "" {
			id = fmt.Sprintf("n%d", i)
		}
		base := id
		for j := 2; used[id]; j++ {
			id = fmt.Sprintf("%s_%d", base, j)
		}
		used[id] = true
		perNode[i] = id
		if n.ID != "" {
			byID[n.ID] = id
		}
	}
	return perNode, byID
}

func flowNodeDef(id string, n diagram.FlowNode) string {
	label := quote(n.Text)
	switch diagram.NormalizeFlowNodeType(n.Type) {
	case diagram.FlowStart, diagram.FlowEnd:
		return fmt.Sprintf("%s((%s))", id, label)
	case diagram.FlowDecision:
		return fmt.Sprintf("%s{%s}", id, label)
	default:
		return fmt.Sprintf("%s[%s]", id, label)
	}
}

// MindMap renders the indented mindmap syntax with the topic as a circle root.
func MindMap(m *diagram.MindMap) string {
	var b strings.Builder
	b.WriteString("mindmap\n")
	b.WriteString(fmt.Sprintf("  root((%s))\n", plain(m.CenterTopic)))
	for _, br := range m.Branches {
		b.WriteString(fmt.Sprintf("    %s\n", plain(br.Text)))
		for _, c := range br.Children {
			b.WriteString(fmt.Sprintf("      %s\n", plain(c.Text)))
		}
	}
	return b.String()
}

// StickyNotes renders notes as a left-to-right cluster with one class per color.
func StickyNotes(topic string, notes []diagram.StickyNote) string {
	var b strings.Builder
	b.WriteString("graph LR\n")
	b.WriteString(fmt.Sprintf("    subgraph notes[%s]\n", quote(topic)))
	for i, n := range notes {
		b.WriteString(fmt.Sprintf("        n%d[%s]\n", i, quote(n.Text)))
	}
	b.WriteString("    end\n")

	used := map[diagram.ColorTag]bool{}
	for _, n := range notes {
		c := diagram.NoteColor(string(n.Color))
		if used[c] {
			continue
		}
		used[c] = true
		b.WriteString(fmt.Sprintf("    classDef %s fill:%s,stroke:#333\n", safeID(string(c)), canvas.Hex(c)))
	}
	for i, n := range notes {
		b.WriteString(fmt.Sprintf("    class n%d %s\n", i, safeID(string(diagram.NoteColor(string(n.Color))))))
	}
	return b.String()
}

var reservedIDs = map[string]bool{"end": true, "graph": true, "subgraph": true, "class": true, "classdef": true, "style": true}

func safeID(id string) string {
	r := strings.NewReplacer(".", "_", "-", "_", " ", "_", ":", "_", "\"", "_")
	id = r.Replace(id)
	if reservedIDs[strings.ToLower(id)] {
		return id + "_"
	}
	return id
}

func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "#quot;")
	return strings.ReplaceAll(s, "\n", " ")
}

func quote(s string) string {
	return "\"" + escapeLabel(s) + "\""
}

// plain drops the bracket characters the mindmap grammar treats as shape delimiters.
func plain(s string) string {
	r := strings.NewReplacer("(", " ", ")", " ", "[", " ", "]", " ", "{", " ", "}", " ", "\n", " ")
	out := strings.TrimSpace(r.Replace(s))
	if out == "" {
		return "_"
	}
	return out
}
