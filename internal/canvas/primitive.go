// Package canvas is the in-process canvas surface: it stores primitives under
// stable identifiers, groups them under frames, fits viewports and renders a
// PNG preview.
package canvas

import (
	"math"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

type Kind string

const (
	KindNote  Kind = "note"
	KindFrame Kind = "frame"
	KindArrow Kind = "arrow"
	KindText  Kind = "text"
)

// Primitive is a single shape. Arrows carry Start/End and the ids of the
// shapes they join; every other kind is a box at Position with Size.
type Primitive struct {
	ID       string            `json:"id"`
	Kind     Kind              `json:"kind"`
	Position diagram.Position  `json:"position"`
	Size     diagram.Size      `json:"size"`
	Color    diagram.ColorTag  `json:"color,omitempty"`
	Text     string            `json:"text,omitempty"`
	Start    *diagram.Position `json:"start,omitempty"`
	End      *diagram.Position `json:"end,omitempty"`
	FromID   string            `json:"from_id,omitempty"`
	ToID     string            `json:"to_id,omitempty"`
	ParentID string            `json:"parent_id,omitempty"`
}

// Bounds returns the axis-aligned box covered by p.
func (p Primitive) Bounds() Rect {
	if p.Kind == KindArrow && p.Start != nil && p.End != nil {
		return Rect{
			Min: diagram.Position{X: math.Min(p.Start.X, p.End.X), Y: math.Min(p.Start.Y, p.End.Y)},
			Max: diagram.Position{X: math.Max(p.Start.X, p.End.X), Y: math.Max(p.Start.Y, p.End.Y)},
		}
	}
	return Rect{Min: p.Position, Max: p.Position.Add(p.Size.W, p.Size.H)}
}

type Rect struct {
	Min diagram.Position `json:"min"`
	Max diagram.Position `json:"max"`
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union grows r to cover o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: diagram.Position{X: math.Min(r.Min.X, o.Min.X), Y: math.Min(r.Min.Y, o.Min.Y)},
		Max: diagram.Position{X: math.Max(r.Max.X, o.Max.X), Y: math.Max(r.Max.Y, o.Max.Y)},
	}
}

// Inset returns r grown by d on every side (shrunk when d is negative).
func (r Rect) Inset(d float64) Rect {
	return Rect{Min: r.Min.Add(-d, -d), Max: r.Max.Add(d, d)}
}

// BoundsOf returns the union of the primitives' bounds and false when ps is empty.
func BoundsOf(ps []Primitive) (Rect, bool) {
	if len(ps) == 0 {
		return Rect{}, false
	}
	r := ps[0].Bounds()
	for _, p := range ps[1:] {
		r = r.Union(p.Bounds())
	}
	return r, true
}
