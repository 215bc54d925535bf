package layout

import (
	"math"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

// RadiusFor returns the starting branch circle radius for n branches.
func RadiusFor(n int) float64 {
	return BaseRadius + float64(max(0, n-radialCrowdingCap))*RadiusStep
}

// MinSeparation is the smallest centre distance at which two boxes of size
// cannot come within NodeGap of each other, whatever their direction.
func MinSeparation(size diagram.Size) float64 {
	return math.Hypot(size.W+NodeGap, size.H+NodeGap)
}

// ChildSpread returns the circle radius and angular step used for k children
// of one branch. Neighbouring children are MinSeparation apart, the window
// (k-1)*step never exceeds ChildSpreadMax, and the radius is at least
// ChildRadius.
func ChildSpread(k int, size diagram.Size) (radius, step float64) {
	d := MinSeparation(size)
	radius = math.Max(ChildRadius, d)
	if k < 2 {
		return radius, 0
	}
	step = 2 * math.Asin(math.Min(1, d/(2*radius)))
	limit := degToRad(ChildSpreadMax) / float64(k-1)
	if step > limit {
		step = limit
		radius = d / (2 * math.Sin(step/2))
	}
	return radius, step
}

// Radial places the centre on anchor, branches evenly on a circle starting
// straight up, and each branch's children on a smaller circle around it,
// spread over a window centred on the branch angle. The branch radius starts
// at RadiusFor and grows by RadiusStep until no two boxes overlap; it is
// fixed before anything is placed.
func Radial(m *diagram.MindMap, anchor diagram.Position, nodeSize diagram.Size) diagram.RadialLayout {
	out := diagram.RadialLayout{
		Center:   nodeSize.TopLeft(anchor),
		Branches: []diagram.PlacedNode{},
		Children: [][]diagram.PlacedNode{},
	}
	if m == nil {
		out.Radius = RadiusFor(0)
		return out
	}

	n := len(m.Branches)
	out.Radius = RadiusFor(n)
	if n == 0 {
		return out
	}

	counts := make([]int, n)
	for i, b := range m.Branches {
		counts[i] = len(b.Children)
	}
	for i := 0; i < maxRadiusSteps; i++ {
		branches, children := placeRadial(anchor, out.Radius, counts, nodeSize)
		if !anyOverlap(out.Center, branches, children, nodeSize) {
			break
		}
		out.Radius += RadiusStep
	}
	out.Branches, out.Children = placeRadial(anchor, out.Radius, counts, nodeSize)
	return out
}

func placeRadial(anchor diagram.Position, radius float64, counts []int, nodeSize diagram.Size) ([]diagram.PlacedNode, [][]diagram.PlacedNode) {
	n := len(counts)
	branches := make([]diagram.PlacedNode, 0, n)
	children := make([][]diagram.PlacedNode, 0, n)

	step := 2 * math.Pi / float64(n)
	start := degToRad(-90)
	for i, k := range counts {
		angle := start + float64(i)*step
		bc := polar(anchor, radius, angle)
		branches = append(branches, diagram.PlacedNode{Position: nodeSize.TopLeft(bc), Angle: angle})
		children = append(children, placeChildren(bc, angle, k, nodeSize))
	}
	return branches, children
}

func placeChildren(branchCenter diagram.Position, branchAngle float64, k int, nodeSize diagram.Size) []diagram.PlacedNode {
	placed := make([]diagram.PlacedNode, 0, k)
	if k == 0 {
		return placed
	}
	radius, step := ChildSpread(k, nodeSize)
	first := branchAngle - step*float64(k-1)/2
	for j := 0; j < k; j++ {
		angle := first + float64(j)*step
		if k == 1 {
			angle = branchAngle
		}
		placed = append(placed, diagram.PlacedNode{
			Position: nodeSize.TopLeft(polar(branchCenter, radius, angle)),
			Angle:    angle,
		})
	}
	return placed
}

func anyOverlap(center diagram.Position, branches []diagram.PlacedNode, children [][]diagram.PlacedNode, size diagram.Size) bool {
	boxes := []diagram.Position{center}
	for i, b := range branches {
		boxes = append(boxes, b.Position)
		for _, c := range children[i] {
			boxes = append(boxes, c.Position)
		}
	}
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if boxesOverlap(boxes[i], boxes[j], size) {
				return true
			}
		}
	}
	return false
}

// boxesOverlap reports whether two same-sized boxes at top-left corners a and
// b are closer than NodeGap on both axes.
func boxesOverlap(a, b diagram.Position, size diagram.Size) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < size.W+NodeGap-eps && math.Abs(a.Y-b.Y) < size.H+NodeGap-eps
}
