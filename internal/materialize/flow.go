package materialize

import (
	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/layout"
)

type flowStyle struct {
	color diagram.ColorTag
	glyph string
}

var flowStyles = map[diagram.FlowNodeType]flowStyle{
	diagram.FlowStart:    {diagram.ColorGreen, "▶"},
	diagram.FlowProcess:  {diagram.ColorBlue, "■"},
	diagram.FlowDecision: {diagram.ColorOrange, "◆"},
	diagram.FlowEnd:      {diagram.ColorRed, "●"},
}

// FlowStyle returns the note color and leading glyph for a node type.
func FlowStyle(t diagram.FlowNodeType) (diagram.ColorTag, string) {
	s := flowStyles[diagram.NormalizeFlowNodeType(t)]
	return s.color, s.glyph
}

// FlowDiagram emits one note per positioned node and one connector per
// connection whose endpoints both resolve. Labels become text primitives next
// to the connector midpoint. Unresolved connections are counted in Dropped.
func FlowDiagram(f *diagram.FlowDiagram, positions []diagram.Position, opts Options) Result {
	o := opts.withDefaults(layout.FlowNodeSize)
	var r Result
	if f == nil {
		r.finish("", o)
		return r
	}

	byID := make(map[string]canvas.Primitive, len(f.Nodes))
	for i, n := range f.Nodes {
		if i >= len(positions) {
			break
		}
		color, glyph := FlowStyle(n.Type)
		p := note(o.id("node", i), positions[i], o.NodeSize, color, glyph+" "+n.Text)
		r.Nodes = append(r.Nodes, p)
		if _, dup := byID[n.ID]; !dup {
			byID[n.ID] = p
		}
	}

	for i, c := range f.Connections {
		from, ok1 := byID[c.From]
		to, ok2 := byID[c.To]
		if !ok1 || !ok2 {
			r.Dropped++
			continue
		}
		arrow := connector(o.id("conn", i), from, to, diagram.ColorGrey)
		r.Edges = append(r.Edges, arrow)
		if c.Label == "" {
			continue
		}
		mid := diagram.Position{X: (arrow.Start.X + arrow.End.X) / 2, Y: (arrow.Start.Y + arrow.End.Y) / 2}
		r.Edges = append(r.Edges, canvas.Primitive{
			ID:       o.id("conn", i, "label"),
			Kind:     canvas.KindText,
			Position: mid.Add(labelOffset, -labelHeight/2),
			Size:     diagram.Size{W: labelWidth, H: labelHeight},
			Color:    diagram.ColorBlack,
			Text:     c.Label,
			FromID:   arrow.ID,
		})
	}

	r.finish(f.Title, o)
	return r
}
