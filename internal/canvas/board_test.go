package canvas

import (
	"bytes"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

func sampleBatch() []Primitive {
	return []Primitive{
		{ID: "f", Kind: KindFrame, Position: diagram.Position{X: -100, Y: -100}, Size: diagram.Size{W: 600, H: 400}, Text: "Topic"},
		{ID: "a", Kind: KindNote, Position: diagram.Position{X: 0, Y: 0}, Size: diagram.Size{W: 100, H: 50}, Color: diagram.ColorBlue, Text: "A"},
		{ID: "b", Kind: KindNote, Position: diagram.Position{X: 300, Y: 200}, Size: diagram.Size{W: 100, H: 50}, Color: diagram.ColorGreen, Text: "B"},
		{ID: "ab", Kind: KindArrow, Start: &diagram.Position{X: 50, Y: 25}, End: &diagram.Position{X: 350, Y: 225}, FromID: "a", ToID: "b"},
		{ID: "lbl", Kind: KindText, Position: diagram.Position{X: 200, Y: 120}, Size: diagram.Size{W: 80, H: 20}, Text: "yes"},
	}
}

func TestApplyAllocatesUUIDsAndRewritesReferences(t *testing.T) {
	b := NewBoard()
	ids, err := b.Apply(sampleBatch())
	require.NoError(t, err)
	require.Len(t, ids, 5)

	for local, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err, local)
	}

	arrow, ok := b.Get(ids["ab"])
	require.True(t, ok)
	assert.Equal(t, ids["a"], arrow.FromID)
	assert.Equal(t, ids["b"], arrow.ToID)
	assert.Equal(t, 5, b.Len())
	assert.Equal(t, ids["f"], b.Shapes()[0].ID)
}

func TestApplyRejectsDuplicateIDs(t *testing.T) {
	b := NewBoard()
	_, err := b.Apply([]Primitive{{ID: "x", Kind: KindNote}, {ID: "x", Kind: KindNote}})
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Zero(t, b.Len())
}

func TestReparent(t *testing.T) {
	b := NewBoard()
	ids, err := b.Apply(sampleBatch())
	require.NoError(t, err)

	require.NoError(t, b.Reparent(ids["f"], []string{ids["a"], ids["b"], ids["f"]}))
	a, _ := b.Get(ids["a"])
	assert.Equal(t, ids["f"], a.ParentID)
	f, _ := b.Get(ids["f"])
	assert.Empty(t, f.ParentID)

	err = b.Reparent(ids["a"], []string{ids["b"]})
	assert.ErrorIs(t, err, ErrUnknownShape, "a note is not a frame")

	err = b.Reparent(ids["f"], []string{ids["lbl"], "missing"})
	assert.ErrorIs(t, err, ErrUnknownShape)
	lbl, _ := b.Get(ids["lbl"])
	assert.Empty(t, lbl.ParentID, "failed reparent changes nothing")
}

func TestReparentUnsupportedKeepsShapes(t *testing.T) {
	b := NewBoard(WithGrouping(false))
	ids, err := b.Apply(sampleBatch())
	require.NoError(t, err)

	err = b.Reparent(ids["f"], []string{ids["a"]})
	assert.ErrorIs(t, err, ErrGroupingUnsupported)
	assert.Equal(t, 5, b.Len())
	a, ok := b.Get(ids["a"])
	require.True(t, ok)
	assert.Empty(t, a.ParentID)
}

func TestFitViewport(t *testing.T) {
	b := NewBoard(WithViewportMargin(10), WithScreen(100, 100))
	ids, err := b.Apply(sampleBatch())
	require.NoError(t, err)

	v := b.FitViewport([]string{ids["a"], ids["b"], "unknown"})
	assert.Equal(t, -10.0, v.X)
	assert.Equal(t, -10.0, v.Y)
	assert.Equal(t, 420.0, v.Width)
	assert.Equal(t, 270.0, v.Height)
	assert.InDelta(t, 100.0/420.0, v.Zoom, 1e-12)

	assert.Equal(t, Viewport{}, b.FitViewport(nil))
}

func TestBoundsOfArrowUsesEndpoints(t *testing.T) {
	r := Primitive{Kind: KindArrow, Start: &diagram.Position{X: 10, Y: 50}, End: &diagram.Position{X: -5, Y: 0}}.Bounds()
	assert.Equal(t, Rect{Min: diagram.Position{X: -5, Y: 0}, Max: diagram.Position{X: 10, Y: 50}}, r)
}

func TestConcurrentApply(t *testing.T) {
	b := NewBoard()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := b.Apply(sampleBatch())
			assert.NoError(t, err)
			b.FitViewport(nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, 16*5, b.Len())
}

func TestRenderPNG(t *testing.T) {
	pngMagic := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

	b := NewBoard()
	_, err := b.Apply(sampleBatch())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, b.RenderPNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	buf.Reset()
	require.NoError(t, Render(&buf, nil))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "empty board still renders")
}

func TestRenderKeepsWrappedTextInsideNotesWhenDownscaled(t *testing.T) {
	note := Primitive{
		ID: "n", Kind: KindNote, Color: diagram.ColorWhite,
		Position: diagram.Position{X: 0, Y: 0}, Size: diagram.Size{W: 400, H: 400},
		Text: strings.Repeat("overflowing words ", 20),
	}
	// A distant shape forces the preview to shrink by a factor of about four.
	far := Primitive{ID: "far", Kind: KindNote, Color: diagram.ColorWhite,
		Position: diagram.Position{X: 9000, Y: 0}, Size: diagram.Size{W: 10, H: 10}}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []Primitive{note, far}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)

	r, _ := BoundsOf([]Primitive{note, far})
	r = r.Inset(renderPadding)
	scale := maxRenderSide / r.Width()
	require.Less(t, scale, 0.5)

	toPx := func(x, y float64) (int, int) {
		return int((x - r.Min.X) * scale), int((y - r.Min.Y) * scale)
	}
	right, top := toPx(note.Position.X+note.Size.W, note.Position.Y)
	_, bottom := toPx(0, note.Position.Y+note.Size.H)
	farLeft, _ := toPx(far.Position.X, 0)

	for x := right + 3; x < farLeft-3; x++ {
		for y := top; y <= bottom; y++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			require.True(t, cr > 0xF000 && cg > 0xF000 && cb > 0xF000, "ink outside the note at (%d,%d)", x, y)
		}
	}
}
