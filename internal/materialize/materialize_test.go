package materialize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-canvas/internal/canvas"
	"github.com/justsurfingit/job-canvas/internal/diagram"
	"github.com/justsurfingit/job-canvas/internal/layout"
	"github.com/justsurfingit/job-canvas/internal/parser"
)

func assertFrameEncloses(t *testing.T, r Result) {
	t.Helper()
	frame := r.Frame.Bounds()
	for _, p := range append(append([]canvas.Primitive{}, r.Nodes...), r.Edges...) {
		b := p.Bounds()
		assert.LessOrEqual(t, frame.Min.X, b.Min.X-FramePadding+1e-9, p.ID)
		assert.LessOrEqual(t, frame.Min.Y, b.Min.Y-FramePadding+1e-9, p.ID)
		assert.GreaterOrEqual(t, frame.Max.X, b.Max.X+FramePadding-1e-9, p.ID)
		assert.GreaterOrEqual(t, frame.Max.Y, b.Max.Y+FramePadding-1e-9, p.ID)
	}
}

func assertIDSets(t *testing.T, r Result) {
	t.Helper()
	var want []string
	for _, p := range r.Nodes {
		want = append(want, p.ID)
	}
	for _, p := range r.Edges {
		want = append(want, p.ID)
	}
	assert.ElementsMatch(t, want, r.ContainmentIDs)
	assert.NotContains(t, r.ContainmentIDs, r.Frame.ID)
	assert.ElementsMatch(t, append([]string{r.Frame.ID}, want...), r.ViewportFitIDs)
}

func TestMindMap(t *testing.T) {
	m := parser.FallbackMindMap("Entretien")
	anchor := diagram.Position{X: 0, Y: 0}
	r := MindMap(m, layout.CalculateMindMapLayout(m, anchor), Options{Key: "mm"})

	children := 0
	for _, b := range m.Branches {
		children += len(b.Children)
	}
	require.Len(t, r.Nodes, 1+len(m.Branches)+children)
	assert.Len(t, r.Edges, len(m.Branches)+children)

	assert.Equal(t, canvas.KindFrame, r.Frame.Kind)
	assert.Equal(t, "Entretien", r.Frame.Text)
	assert.Equal(t, "mm-frame", r.Frame.ID)

	center := r.Nodes[0]
	assert.Equal(t, diagram.ColorViolet, center.Color)
	assert.Equal(t, m.Branches[0].Color, r.Nodes[1].Color)
	assert.Equal(t, diagram.Light(m.Branches[0].Color), r.Nodes[2].Color)

	first := r.Edges[0]
	require.NotNil(t, first.Start)
	assert.Equal(t, center.Size.Center(center.Position), *first.Start, "connectors attach at node centres")
	assert.Equal(t, center.ID, first.FromID)

	assertFrameEncloses(t, r)
	assertIDSets(t, r)
}

func TestStickyNotes(t *testing.T) {
	notes := []diagram.StickyNote{{Text: "a", Color: diagram.ColorBlue}, {Text: "b", Color: "mauve"}, {Text: "c"}}
	r := StickyNotes(notes, layout.CalculateStickyNotesLayout(len(notes), diagram.Position{}), "risques", Options{})

	require.Len(t, r.Nodes, 3)
	assert.Empty(t, r.Edges)
	assert.Equal(t, diagram.ColorBlue, r.Nodes[0].Color)
	assert.Equal(t, diagram.ColorYellow, r.Nodes[1].Color)
	assert.Equal(t, "risques", r.Frame.Text)
	assert.True(t, strings.HasPrefix(r.Nodes[0].ID, "diagram-"))
	assertFrameEncloses(t, r)
	assertIDSets(t, r)
}

func TestFlowDiagramDropsDanglingConnections(t *testing.T) {
	f := &diagram.FlowDiagram{
		Title: "Recrutement",
		Nodes: []diagram.FlowNode{
			{ID: "a", Text: "Début", Type: diagram.FlowStart},
			{ID: "b", Text: "Tri", Type: diagram.FlowProcess},
			{ID: "c", Text: "OK ?", Type: diagram.FlowDecision},
			{ID: "d", Text: "Fin", Type: diagram.FlowEnd},
		},
		Connections: []diagram.FlowConnection{
			{From: "a", To: "b"},
			{From: "b", To: "c"},
			{From: "c", To: "d", Label: "Oui"},
			{From: "c", To: "nowhere"},
			{From: "ghost", To: "a"},
		},
	}
	r := FlowDiagram(f, layout.Sequence(len(f.Nodes), diagram.Position{}, layout.FlowNodeSize), Options{Key: "run1"})

	require.Len(t, r.Nodes, 4)
	assert.Len(t, r.Arrows(), 3)
	assert.Len(t, r.Edges, 4, "three arrows plus one label")
	assert.Equal(t, 2, r.Dropped)

	assert.Equal(t, diagram.ColorGreen, r.Nodes[0].Color)
	assert.Equal(t, diagram.ColorBlue, r.Nodes[1].Color)
	assert.Equal(t, diagram.ColorOrange, r.Nodes[2].Color)
	assert.Equal(t, diagram.ColorRed, r.Nodes[3].Color)
	for i, n := range f.Nodes {
		_, glyph := FlowStyle(n.Type)
		assert.Equal(t, glyph+" "+n.Text, r.Nodes[i].Text)
	}

	label := r.Edges[3]
	assert.Equal(t, canvas.KindText, label.Kind)
	assert.Equal(t, "Oui", label.Text)
	assert.Equal(t, r.Edges[2].ID, label.FromID)

	assertFrameEncloses(t, r)
	assertIDSets(t, r)
}

func TestFlowDiagramFallbackShape(t *testing.T) {
	f := parser.FallbackFlowDiagram("onboarding")
	r := FlowDiagram(f, layout.CalculateFlowDiagramLayout(f, diagram.Position{}, layout.StrategyLayered), Options{})
	assert.GreaterOrEqual(t, len(r.Nodes), 4)
	assert.GreaterOrEqual(t, len(r.Arrows()), 3)
	assert.Zero(t, r.Dropped)
	assertIDSets(t, r)
}

func TestEmptyInputsStillYieldAFrame(t *testing.T) {
	r := FlowDiagram(&diagram.FlowDiagram{}, nil, Options{})
	assert.Empty(t, r.Nodes)
	assert.Equal(t, []string{r.Frame.ID}, r.ViewportFitIDs)

	r = StickyNotes(nil, nil, "", Options{})
	assert.Empty(t, r.ContainmentIDs)

	assert.NotPanics(t, func() { MindMap(nil, diagram.RadialLayout{}, Options{}) })
}

func TestPrimitivesApplyToBoardWithoutGrouping(t *testing.T) {
	f := parser.FallbackFlowDiagram("x")
	r := FlowDiagram(f, layout.Sequence(len(f.Nodes), diagram.Position{}, layout.FlowNodeSize), Options{})

	b := canvas.NewBoard(canvas.WithGrouping(false))
	ids, err := b.Apply(r.Primitives())
	require.NoError(t, err)

	err = b.Reparent(ids[r.Frame.ID], nil)
	assert.ErrorIs(t, err, canvas.ErrGroupingUnsupported)
	assert.Equal(t, 1+len(r.Nodes)+len(r.Edges), b.Len())
}
