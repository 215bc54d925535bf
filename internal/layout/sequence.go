package layout

import "github.com/justsurfingit/job-canvas/internal/diagram"

// Sequence stacks count boxes in input order, one column centred on anchor.
func Sequence(count int, anchor diagram.Position, nodeSize diagram.Size) []diagram.Position {
	if count <= 0 {
		return []diagram.Position{}
	}
	totalH := float64(count)*nodeSize.H + float64(count-1)*SequenceSpacing
	x := anchor.X - nodeSize.W/2
	top := anchor.Y - totalH/2

	out := make([]diagram.Position, count)
	for i := range out {
		out[i] = diagram.Position{X: x, Y: top + float64(i)*(nodeSize.H+SequenceSpacing)}
	}
	return out
}
