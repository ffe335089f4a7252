package maze

// Reachable returns every open cell 4-connected to from, from included,
// as a set keyed by Position. A wall or out-of-bounds from yields an empty
// set. The search treats goal cells as ordinary open cells and keeps
// expanding past them.
//
// Time:   O(R×C).
// Memory: O(R×C) for the seen flags and output.
func (g *Grid) Reachable(from Position) map[Position]bool {
	out := make(map[Position]bool)
	if !g.IsOpen(from) {
		return out
	}
	seen := make([]bool, g.rows*g.cols)
	i0 := g.index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.Coordinate(queue[qi])
		out[u] = true
		for _, nb := range g.Neighbors(u) {
			vi := g.index(nb.Pos)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return out
}

// GoalReachable reports whether any goal cell is connected to from.
func (g *Grid) GoalReachable(from Position) bool {
	for p := range g.Reachable(from) {
		if g.IsGoal(p) {
			return true
		}
	}
	return false
}
