package layout

import "github.com/justsurfingit/job-canvas/internal/diagram"

// Layered assigns each flow node to a row by longest path from the sources
// and centres every row on anchor.X. Nodes that Kahn's algorithm cannot reach
// (cycle members and their descendants) keep input order, one per row, below
// the last layer. The result is index-aligned with f.Nodes.
func Layered(f *diagram.FlowDiagram, anchor diagram.Position, nodeSize diagram.Size) []diagram.Position {
	if f == nil || len(f.Nodes) == 0 {
		return []diagram.Position{}
	}
	rows := Layers(f)

	totalH := float64(len(rows))*nodeSize.H + float64(len(rows)-1)*SequenceSpacing
	top := anchor.Y - totalH/2

	out := make([]diagram.Position, len(f.Nodes))
	for r, row := range rows {
		rowW := float64(len(row))*nodeSize.W + float64(len(row)-1)*LayerColumnGap
		left := anchor.X - rowW/2
		y := top + float64(r)*(nodeSize.H+SequenceSpacing)
		for c, idx := range row {
			out[idx] = diagram.Position{X: left + float64(c)*(nodeSize.W+LayerColumnGap), Y: y}
		}
	}
	return out
}

// Layers returns node indices grouped by row. Duplicate node ids resolve to
// their first occurrence; self loops and dangling connections are ignored.
func Layers(f *diagram.FlowDiagram) [][]int {
	n := len(f.Nodes)
	index := make(map[string]int, n)
	for i, node := range f.Nodes {
		if _, dup := index[node.ID]; !dup {
			index[node.ID] = i
		}
	}

	succ := make([][]int, n)
	pred := make([][]int, n)
	seen := make(map[[2]int]bool, len(f.Connections))
	for _, c := range f.Connections {
		from, ok1 := index[c.From]
		to, ok2 := index[c.To]
		if !ok1 || !ok2 || from == to || seen[[2]int{from, to}] {
			continue
		}
		seen[[2]int{from, to}] = true
		succ[from] = append(succ[from], to)
		pred[to] = append(pred[to], from)
	}

	inDegree := make([]int, n)
	queue := make([]int, 0, n)
	for i := range f.Nodes {
		inDegree[i] = len(pred[i])
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	sorted := make([]int, 0, n)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		sorted = append(sorted, node)
		for _, next := range succ[node] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	depth := make([]int, n)
	placed := make([]bool, n)
	maxDepth := -1
	for _, id := range sorted {
		d := 0
		for _, p := range pred[id] {
			if depth[p]+1 > d {
				d = depth[p] + 1
			}
		}
		depth[id] = d
		placed[id] = true
		maxDepth = max(maxDepth, d)
	}

	rows := make([][]int, maxDepth+1)
	for i := range f.Nodes {
		if placed[i] {
			rows[depth[i]] = append(rows[depth[i]], i)
		}
	}
	for i := range f.Nodes {
		if !placed[i] {
			rows = append(rows, []int{i})
		}
	}
	return rows
}
