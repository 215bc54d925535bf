package canvas

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

const (
	renderPadding = 40.0
	maxRenderSide = 2400.0
	fontSize      = 14.0
)

var colorHex = map[diagram.ColorTag]string{
	diagram.ColorYellow:      "#FFE066",
	diagram.ColorBlue:        "#4D96FF",
	diagram.ColorGreen:       "#6BCB77",
	diagram.ColorOrange:      "#FFA94D",
	diagram.ColorRed:         "#FF6B6B",
	diagram.ColorViolet:      "#9775FA",
	diagram.ColorGrey:        "#ADB5BD",
	diagram.ColorBlack:       "#212529",
	diagram.ColorWhite:       "#FFFFFF",
	diagram.ColorLightBlue:   "#D0EBFF",
	diagram.ColorLightGreen:  "#D3F9D8",
	diagram.ColorLightRed:    "#FFE3E3",
	diagram.ColorLightViolet: "#E5DBFF",
}

// Hex returns the preview fill for c, white for unknown tags.
func Hex(c diagram.ColorTag) string { return hexFor(c, "#FFFFFF") }

func hexFor(c diagram.ColorTag, def string) string {
	if h, ok := colorHex[c]; ok {
		return h
	}
	return def
}

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
	fontErr  error
)

func loadFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = truetype.Parse(gomono.TTF)
	})
	return fontTTF, fontErr
}

// RenderPNG draws every primitive on the board as a PNG image.
func (b *Board) RenderPNG(w io.Writer) error {
	return Render(w, b.Shapes())
}

// Render draws ps as a PNG. Frames go first, then arrows, then boxes and text
// so connectors sit behind the notes they join.
func Render(w io.Writer, ps []Primitive) error {
	r, ok := BoundsOf(ps)
	if !ok {
		r = Rect{Max: diagram.Position{X: 1, Y: 1}}
	}
	r = r.Inset(renderPadding)

	scale := math.Min(1, maxRenderSide/math.Max(r.Width(), r.Height()))
	width := max(1, int(math.Ceil(r.Width()*scale)))
	height := max(1, int(math.Ceil(r.Height()*scale)))

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	ttf, err := loadFont()
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	dc.Scale(scale, scale)
	dc.Translate(-r.Min.X, -r.Min.Y)

	for _, p := range ps {
		if p.Kind == KindFrame {
			drawFrame(dc, p)
		}
	}
	for _, p := range ps {
		if p.Kind == KindArrow {
			drawArrow(dc, p)
		}
	}
	for _, p := range ps {
		switch p.Kind {
		case KindNote:
			drawNote(dc, p, scale)
		case KindText:
			drawText(dc, p, scale)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	return nil
}

// inDevice runs draw with the transform cleared and (x, y) mapped to device
// pixels. gg measures text with the current face, which is already sized for
// the output, so text layout must not pass through dc.Scale again.
func inDevice(dc *gg.Context, x, y float64, draw func(px, py float64)) {
	px, py := dc.TransformPoint(x, y)
	dc.Push()
	dc.Identity()
	draw(px, py)
	dc.Pop()
}

func drawFrame(dc *gg.Context, p Primitive) {
	dc.SetHexColor("#F8F9FA")
	dc.DrawRoundedRectangle(p.Position.X, p.Position.Y, p.Size.W, p.Size.H, 16)
	dc.FillPreserve()
	dc.SetHexColor(hexFor(p.Color, "#CED4DA"))
	dc.SetLineWidth(2)
	dc.Stroke()

	if p.Text != "" {
		dc.SetHexColor("#495057")
		inDevice(dc, p.Position.X+16, p.Position.Y-12, func(px, py float64) {
			dc.DrawStringAnchored(p.Text, px, py, 0, 0)
		})
	}
}

func drawArrow(dc *gg.Context, p Primitive) {
	if p.Start == nil || p.End == nil {
		return
	}
	fx, fy := p.Start.X, p.Start.Y
	tx, ty := p.End.X, p.End.Y

	dc.SetHexColor(hexFor(p.Color, "#868E96"))
	dc.SetLineWidth(2)
	dc.DrawLine(fx, fy, tx, ty)
	dc.Stroke()

	dx, dy := tx-fx, ty-fy
	length := math.Hypot(dx, dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	const arrowSize, arrowAngle = 12.0, 0.5
	dc.MoveTo(tx, ty)
	dc.LineTo(tx-arrowSize*dx+arrowSize*dy*arrowAngle, ty-arrowSize*dy-arrowSize*dx*arrowAngle)
	dc.LineTo(tx-arrowSize*dx-arrowSize*dy*arrowAngle, ty-arrowSize*dy+arrowSize*dx*arrowAngle)
	dc.ClosePath()
	dc.Fill()
}

func drawNote(dc *gg.Context, p Primitive, scale float64) {
	dc.SetHexColor(hexFor(p.Color, colorHex[diagram.ColorYellow]))
	dc.DrawRoundedRectangle(p.Position.X, p.Position.Y, p.Size.W, p.Size.H, 8)
	dc.FillPreserve()
	dc.SetHexColor("#343A40")
	dc.SetLineWidth(1)
	dc.Stroke()

	c := p.Size.Center(p.Position)
	inDevice(dc, c.X, c.Y, func(px, py float64) {
		dc.DrawStringWrapped(p.Text, px, py, 0.5, 0.5, (p.Size.W-16)*scale, 1.3, gg.AlignCenter)
	})
}

func drawText(dc *gg.Context, p Primitive, scale float64) {
	dc.SetHexColor(hexFor(p.Color, "#212529"))
	inDevice(dc, p.Position.X, p.Position.Y, func(px, py float64) {
		dc.DrawStringWrapped(p.Text, px, py, 0, 0, math.Max(p.Size.W, 40)*scale, 1.2, gg.AlignLeft)
	})
}
