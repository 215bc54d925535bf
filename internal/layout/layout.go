// Package layout computes non-overlapping canvas positions for generated
// diagrams. Every function is pure and returns top-left box corners.
package layout

import (
	"math"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

const (
	BaseRadius        = 350.0
	RadiusStep        = 40.0
	ChildRadius       = 220.0 // minimum; grows with node size and child count
	ChildSpreadMax    = 90.0  // degrees
	NodeGap           = 20.0
	GridSpacing       = 24.0
	SequenceSpacing   = 60.0
	LayerColumnGap    = 40.0
	radialCrowdingCap = 4
	maxRadiusSteps    = 1000
)

var (
	MindMapNodeSize = diagram.Size{W: 200, H: 80}
	NoteSize        = diagram.Size{W: 200, H: 200}
	FlowNodeSize    = diagram.Size{W: 240, H: 80}
)

// Strategy selects the flow diagram layout.
type Strategy string

const (
	StrategySequence Strategy = "sequence"
	StrategyLayered  Strategy = "layered"
)

// ParseStrategy returns StrategySequence for anything it does not recognise.
func ParseStrategy(s string) Strategy {
	if Strategy(s) == StrategyLayered {
		return StrategyLayered
	}
	return StrategySequence
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }

func polar(c diagram.Position, r, angle float64) diagram.Position {
	return diagram.Position{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

// CalculateMindMapLayout runs Radial with the default node size.
func CalculateMindMapLayout(m *diagram.MindMap, anchor diagram.Position) diagram.RadialLayout {
	return Radial(m, anchor, MindMapNodeSize)
}

// CalculateStickyNotesLayout runs Grid with the default note size.
func CalculateStickyNotesLayout(count int, anchor diagram.Position) []diagram.Position {
	return Grid(count, anchor, NoteSize)
}

// CalculateFlowDiagramLayout places f's nodes with the given strategy and the
// default flow node size. The result is index-aligned with f.Nodes.
func CalculateFlowDiagramLayout(f *diagram.FlowDiagram, anchor diagram.Position, s Strategy) []diagram.Position {
	if f == nil {
		return []diagram.Position{}
	}
	if s == StrategyLayered {
		return Layered(f, anchor, FlowNodeSize)
	}
	return Sequence(len(f.Nodes), anchor, FlowNodeSize)
}
