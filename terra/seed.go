package terra

// zigzagPath lists, in placement order, the river cells of the seeding
// heuristic: start at the top-left corner and alternate a step right
// with a step up or down, bouncing the vertical direction off the grid
// edges, until the path reaches the last column. Consecutive cells are
// always orthogonally adjacent, so the path carves as a legal river.
func zigzagPath(rows, cols int) []int {
	path := make([]int, 0, 2*cols)
	r, c, dir := 0, 0, 1
	path = append(path, 0)
	for c < cols-1 {
		c++
		path = append(path, r*cols+c)
		if c == cols-1 {
			break
		}
		if rows > 1 {
			if r+dir < 0 || r+dir >= rows {
				dir = -dir
			}
			r += dir
			path = append(path, r*cols+c)
		}
	}
	return path
}

// SeedGrid builds the heuristic starting arrangement: the zig-zag river
// across the grid with every remaining cell filled with terrain. Its
// score gives the search a nonzero incumbent so hopeless branches are
// pruned from the first node.
func SeedGrid(rows, cols int) *Grid {
	g := New(rows, cols)
	for _, idx := range zigzagPath(rows, cols) {
		if g.KindAt(idx) != Empty {
			continue
		}
		if !g.PlaceRiver(idx) {
			panic("terra: seed river carve rejected a path cell")
		}
	}
	for i := 0; i < g.Capacity(); i++ {
		g.PlaceTerrain(i)
	}
	return g
}
