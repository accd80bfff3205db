package grid

// StepDistances runs a breadth-first flood fill from src and returns, for every
// cell (row-major), the minimum number of steps from src, or -1 if the cell is
// blocked or unreachable. A nil blocked predicate treats every cell as free.
// If src is out of bounds or blocked, every entry is -1.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H).
func (g *Grid) StepDistances(src Point, blocked func(Point) bool) []int {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(src) || (blocked != nil && blocked(src)) {
		return dist
	}

	queue := []int{g.Index(src)}
	dist[queue[0]] = 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		up := g.Coordinate(u)
		for _, d := range g.directions {
			vp := up.Add(d)
			if !g.InBounds(vp) {
				continue
			}
			v := g.Index(vp)
			if dist[v] >= 0 || (blocked != nil && blocked(vp)) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist
}

// ReachableCount returns how many cells (src included) are reachable from src
// without entering a blocked cell.
func (g *Grid) ReachableCount(src Point, blocked func(Point) bool) int {
	n := 0
	for _, d := range g.StepDistances(src, blocked) {
		if d >= 0 {
			n++
		}
	}

	return n
}
