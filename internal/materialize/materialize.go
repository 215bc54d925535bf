// Package materialize turns a laid-out diagram into canvas primitives: a
// bounding frame, one note per structural node and the connectors between them.
package materialize

import (
	"fmt"

	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/layout"
)

const (
	FramePadding    = 80.0
	defaultKey      = "diagram"
	labelOffset     = 16.0
	labelWidth      = 140.0
	labelHeight     = 28.0
	frameLabelColor = diagram.ColorGrey
)

// Options controls id prefixes and box sizes. Zero values take the defaults.
type Options struct {
	// Key prefixes every primitive id so several diagrams can share a batch.
	Key      string
	NodeSize diagram.Size
	Padding  float64
}

func (o Options) withDefaults(size diagram.Size) Options {
	if o.Key == "" {
		o.Key = defaultKey
	}
	if o.NodeSize.W <= 0 || o.NodeSize.H <= 0 {
		o.NodeSize = size
	}
	if o.Padding <= 0 {
		o.Padding = FramePadding
	}
	return o
}

func (o Options) id(parts ...any) string {
	s := o.Key
	for _, p := range parts {
		s += fmt.Sprintf("-%v", p)
	}
	return s
}

// Result is everything the canvas needs to show one diagram.
type Result struct {
	Frame          canvas.Primitive   `json:"frame"`
	Nodes          []canvas.Primitive `json:"nodes"`
	Edges          []canvas.Primitive `json:"edges"`
	ContainmentIDs []string           `json:"containment_ids"`
	ViewportFitIDs []string           `json:"viewport_fit_ids"`
	// Dropped counts connections whose endpoints did not resolve.
	Dropped int `json:"dropped"`
}

// Primitives returns the frame followed by nodes and edges, ready for Board.Apply.
func (r Result) Primitives() []canvas.Primitive {
	out := make([]canvas.Primitive, 0, 1+len(r.Nodes)+len(r.Edges))
	out = append(out, r.Frame)
	out = append(out, r.Nodes...)
	return append(out, r.Edges...)
}

// Arrows returns only the connector primitives among the edges.
func (r Result) Arrows() []canvas.Primitive {
	var out []canvas.Primitive
	for _, e := range r.Edges {
		if e.Kind == canvas.KindArrow {
			out = append(out, e)
		}
	}
	return out
}

func (r *Result) finish(title string, o Options) {
	content := make([]canvas.Primitive, 0, len(r.Nodes)+len(r.Edges))
	content = append(content, r.Nodes...)
	content = append(content, r.Edges...)

	bounds, ok := canvas.BoundsOf(content)
	if !ok {
		bounds = canvas.Rect{}
	}
	bounds = bounds.Inset(o.Padding)
	r.Frame = canvas.Primitive{
		ID:       o.id("frame"),
		Kind:     canvas.KindFrame,
		Position: bounds.Min,
		Size:     diagram.Size{W: bounds.Width(), H: bounds.Height()},
		Color:    frameLabelColor,
		Text:     title,
	}

	r.ContainmentIDs = make([]string, 0, len(content))
	for _, p := range content {
		r.ContainmentIDs = append(r.ContainmentIDs, p.ID)
	}
	r.ViewportFitIDs = append([]string{r.Frame.ID}, r.ContainmentIDs...)
	if r.Nodes == nil {
		r.Nodes = []canvas.Primitive{}
	}
	if r.Edges == nil {
		r.Edges = []canvas.Primitive{}
	}
}

func note(id string, pos diagram.Position, size diagram.Size, color diagram.ColorTag, text string) canvas.Primitive {
	return canvas.Primitive{ID: id, Kind: canvas.KindNote, Position: pos, Size: size, Color: color, Text: text}
}

// connector joins the centres of two boxes.
func connector(id string, from, to canvas.Primitive, color diagram.ColorTag) canvas.Primitive {
	start := from.Size.Center(from.Position)
	end := to.Size.Center(to.Position)
	return canvas.Primitive{
		ID:     id,
		Kind:   canvas.KindArrow,
		Color:  diagram.ConnectorColor(string(color)),
		Start:  &start,
		End:    &end,
		FromID: from.ID,
		ToID:   to.ID,
	}
}

// MindMap emits the centre, branches and children at the radial positions,
// with one connector per tree edge.
func MindMap(m *diagram.MindMap, l diagram.RadialLayout, opts Options) Result {
	o := opts.withDefaults(layout.MindMapNodeSize)
	var r Result
	if m == nil {
		r.finish("", o)
		return r
	}

	center := note(o.id("center"), l.Center, o.NodeSize, diagram.ColorViolet, m.CenterTopic)
	r.Nodes = append(r.Nodes, center)

	for i, b := range m.Branches {
		if i >= len(l.Branches) {
			break
		}
		bp := note(o.id("branch", i), l.Branches[i].Position, o.NodeSize, b.Color, b.Text)
		r.Nodes = append(r.Nodes, bp)
		r.Edges = append(r.Edges, connector(o.id("edge", i), center, bp, b.Color))

		var placed []diagram.PlacedNode
		if i < len(l.Children) {
			placed = l.Children[i]
		}
		for j, c := range b.Children {
			if j >= len(placed) {
				break
			}
			cp := note(o.id("branch", i, "child", j), placed[j].Position, o.NodeSize, diagram.Light(b.Color), c.Text)
			r.Nodes = append(r.Nodes, cp)
			r.Edges = append(r.Edges, connector(o.id("edge", i, j), bp, cp, b.Color))
		}
	}

	r.finish(m.CenterTopic, o)
	return r
}

// StickyNotes emits one note per position; notes have no connectors.
func StickyNotes(notes []diagram.StickyNote, positions []diagram.Position, title string, opts Options) Result {
	o := opts.withDefaults(layout.NoteSize)
	var r Result
	for i, n := range notes {
		if i >= len(positions) {
			break
		}
		r.Nodes = append(r.Nodes, note(o.id("note", i), positions[i], o.NodeSize, diagram.NoteColor(string(n.Color)), n.Text))
	}
	r.finish(title, o)
	return r
}
