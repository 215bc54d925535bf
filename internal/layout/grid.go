package layout

import (
	"math"

	"github.com/justsurfingit/job-canvas/internal/diagram"
)

// GridColumns favours grids wider than they are tall.
func GridColumns(count int) int {
	if count <= 0 {
		return 0
	}
	c := int(math.Ceil(math.Sqrt(float64(count) * 1.5)))
	return min(count, max(3, c))
}

// Grid fills count cells row-major in input order, with the block's centre on anchor.
func Grid(count int, anchor diagram.Position, noteSize diagram.Size) []diagram.Position {
	if count <= 0 {
		return []diagram.Position{}
	}
	cols := GridColumns(count)
	rows := (count + cols - 1) / cols

	totalW := float64(cols)*noteSize.W + float64(cols-1)*GridSpacing
	totalH := float64(rows)*noteSize.H + float64(rows-1)*GridSpacing
	origin := anchor.Add(-totalW/2, -totalH/2)

	out := make([]diagram.Position, count)
	for i := range out {
		col, row := i%cols, i/cols
		out[i] = origin.Add(
			float64(col)*(noteSize.W+GridSpacing),
			float64(row)*(noteSize.H+GridSpacing),
		)
	}
	return out
}
