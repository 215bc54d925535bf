package diagram

// Kind is the closed set of content types the assistant can produce.
type Kind string

const (
	KindMindMap     Kind = "mind_map"
	KindStickyNotes Kind = "sticky_notes"
	KindFlowDiagram Kind = "flow_diagram"
	KindText        Kind = "text"
	KindFrame       Kind = "frame"
	KindBrainstorm  Kind = "brainstorm"
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{KindMindMap, KindStickyNotes, KindFlowDiagram, KindText, KindFrame, KindBrainstorm}

// Generated reports whether the kind is produced through the completion pipeline.
// Text, frame and brainstorm requests are answered by the chat flow directly.
func (k Kind) Generated() bool {
	switch k {
	case KindMindMap, KindStickyNotes, KindFlowDiagram:
		return true
	}
	return false
}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Intent is the classifier's reading of a single user utterance.
type Intent struct {
	Kind       Kind    `json:"kind"`
	Confidence float64 `json:"confidence"`
	Topic      string  `json:"topic"`
	Count      *int    `json:"count,omitempty"`
	RawText    string  `json:"raw_text"`
}

// Position is a point in canvas (world) coordinates.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Position) Add(dx, dy float64) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the centre of a box whose top-left corner is p.
func (s Size) Center(p Position) Position {
	return Position{X: p.X + s.W/2, Y: p.Y + s.H/2}
}

// TopLeft returns the top-left corner of a box centred on c.
func (s Size) TopLeft(c Position) Position {
	return Position{X: c.X - s.W/2, Y: c.Y - s.H/2}
}

type MindMap struct {
	CenterTopic string   `json:"centerTopic"`
	Branches    []Branch `json:"branches"`
}

type Branch struct {
	Text     string   `json:"text"`
	Color    ColorTag `json:"color"`
	Children []Leaf   `json:"children"`
}

type Leaf struct {
	Text string `json:"text"`
}

type StickyNote struct {
	Text  string   `json:"text"`
	Color ColorTag `json:"color"`
}

type FlowNodeType string

const (
	FlowStart    FlowNodeType = "start"
	FlowEnd      FlowNodeType = "end"
	FlowProcess  FlowNodeType = "process"
	FlowDecision FlowNodeType = "decision"
)

// NormalizeFlowNodeType maps unknown node types to process.
func NormalizeFlowNodeType(t FlowNodeType) FlowNodeType {
	switch t {
	case FlowStart, FlowEnd, FlowProcess, FlowDecision:
		return t
	}
	return FlowProcess
}

type FlowNode struct {
	ID   string       `json:"id"`
	Text string       `json:"text"`
	Type FlowNodeType `json:"type"`
}

type FlowConnection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

type FlowDiagram struct {
	Title       string           `json:"title,omitempty"`
	Nodes       []FlowNode       `json:"nodes"`
	Connections []FlowConnection `json:"connections"`
}

// PlacedNode is a radial layout slot: a box position plus the angle (radians)
// it was placed at relative to its parent.
type PlacedNode struct {
	Position Position `json:"position"`
	Angle    float64  `json:"angle"`
}

type RadialLayout struct {
	Center   Position       `json:"center"`
	Radius   float64        `json:"radius"`
	Branches []PlacedNode   `json:"branches"`
	Children [][]PlacedNode `json:"children"`
}

// Content is one generated structure tagged with its kind. Exactly one of
// MindMap, StickyNotes or Flow is set, matching Kind.
type Content struct {
	Kind        Kind         `json:"kind"`
	Topic       string       `json:"topic"`
	MindMap     *MindMap     `json:"mind_map,omitempty"`
	StickyNotes []StickyNote `json:"sticky_notes,omitempty"`
	Flow        *FlowDiagram `json:"flow,omitempty"`
}
