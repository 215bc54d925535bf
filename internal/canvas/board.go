package canvas

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrGroupingUnsupported is returned by Reparent on boards created without grouping.
	ErrGroupingUnsupported = errors.New("canvas: grouping not supported")
	// ErrUnknownShape is returned when an id does not name a shape on the board.
	ErrUnknownShape = errors.New("canvas: unknown shape")
	ErrDuplicateID  = errors.New("canvas: duplicate primitive id in batch")
)

const (
	DefaultViewportMargin = 40.0
	defaultScreenW        = 1600.0
	defaultScreenH        = 900.0
)

// Viewport is the world rectangle to show and the zoom that fits it on screen.
type Viewport struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Zoom   float64 `json:"zoom"`
}

type Option func(*Board)

// WithGrouping toggles frame containment support.
func WithGrouping(enabled bool) Option {
	return func(b *Board) { b.grouping = enabled }
}

func WithViewportMargin(m float64) Option {
	return func(b *Board) { b.margin = m }
}

// WithScreen sets the screen size used to compute viewport zoom.
func WithScreen(w, h float64) Option {
	return func(b *Board) { b.screenW, b.screenH = w, h }
}

// Board holds applied primitives keyed by allocated id. Safe for concurrent use.
type Board struct {
	mu       sync.RWMutex
	shapes   map[string]Primitive
	order    []string
	grouping bool
	margin   float64
	screenW  float64
	screenH  float64
}

func NewBoard(opts ...Option) *Board {
	b := &Board{
		shapes:   make(map[string]Primitive),
		grouping: true,
		margin:   DefaultViewportMargin,
		screenW:  defaultScreenW,
		screenH:  defaultScreenH,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Apply stores ps under freshly allocated ids and returns the mapping from
// each requested id to its board id. References between primitives in the
// same batch (FromID, ToID, ParentID) are rewritten to board ids.
func (b *Board) Apply(ps []Primitive) (map[string]string, error) {
	ids := make(map[string]string, len(ps))
	for _, p := range ps {
		if _, dup := ids[p.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
		}
		ids[p.ID] = uuid.NewString()
	}
	remap := func(ref string) string {
		if id, ok := ids[ref]; ok {
			return id
		}
		return ref
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range ps {
		p.ID = ids[p.ID]
		p.FromID = remap(p.FromID)
		p.ToID = remap(p.ToID)
		p.ParentID = remap(p.ParentID)
		b.shapes[p.ID] = p
		b.order = append(b.order, p.ID)
	}
	return ids, nil
}

// Reparent places ids inside frameID. It changes nothing unless every id is known.
func (b *Board) Reparent(frameID string, ids []string) error {
	if !b.grouping {
		return ErrGroupingUnsupported
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	frame, ok := b.shapes[frameID]
	if !ok || frame.Kind != KindFrame {
		return fmt.Errorf("%w: frame %q", ErrUnknownShape, frameID)
	}
	for _, id := range ids {
		if _, ok := b.shapes[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownShape, id)
		}
	}
	for _, id := range ids {
		if id == frameID {
			continue
		}
		s := b.shapes[id]
		s.ParentID = frameID
		b.shapes[id] = s
	}
	return nil
}

// FitViewport returns the viewport framing ids plus the board margin.
// Unknown ids are skipped; with nothing to fit the zero Viewport is returned.
func (b *Board) FitViewport(ids []string) Viewport {
	b.mu.RLock()
	ps := make([]Primitive, 0, len(ids))
	for _, id := range ids {
		if s, ok := b.shapes[id]; ok {
			ps = append(ps, s)
		}
	}
	b.mu.RUnlock()

	r, ok := BoundsOf(ps)
	if !ok {
		return Viewport{}
	}
	r = r.Inset(b.margin)
	zoom := 1.0
	if r.Width() > 0 && r.Height() > 0 {
		zoom = math.Min(1, math.Min(b.screenW/r.Width(), b.screenH/r.Height()))
	}
	return Viewport{X: r.Min.X, Y: r.Min.Y, Width: r.Width(), Height: r.Height(), Zoom: zoom}
}

func (b *Board) Get(id string) (Primitive, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.shapes[id]
	return p, ok
}

// Shapes returns a copy of every primitive in application order.
func (b *Board) Shapes() []Primitive {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Primitive, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.shapes[id])
	}
	return out
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.order)
}
