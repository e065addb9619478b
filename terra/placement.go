package terra

// PlaceRiver marks index as a river cell. It fails (returns false with
// no mutation) when the cell is occupied or out of range, when the
// river has not started and index is off the border, or when the river
// has started and index is not orthogonally adjacent to the head. The
// river is therefore always a single simple path grown head-first.
func (g *Grid) PlaceRiver(index int) bool {
	if !g.Usable(index) {
		return false
	}
	if g.unstarted {
		if !g.OnBorder(index) {
			return false
		}
	} else if !g.adjacentToHead(index) {
		return false
	}
	g.tiles[index].Kind = River
	g.filled++
	g.prevHead = g.head
	g.head = index
	g.unstarted = false
	g.bumpNeighbors(index, River, 1)
	return true
}

// PlaceTerrain marks index as a terrain cell. It fails only when the
// cell is occupied or out of range.
func (g *Grid) PlaceTerrain(index int) bool {
	if !g.Usable(index) {
		return false
	}
	g.tiles[index].Kind = Terrain
	g.filled++
	g.bumpNeighbors(index, Terrain, 1)
	return true
}

// Remove sets the cell back to Empty, undoing whichever placement
// produced it: fill count and neighbor adjacency counts are decremented
// symmetrically, and removing the river head rolls the head back one
// step, spending the history (re-arming the border-start rule if that
// empties the river). Only one step of head history exists, so at most
// one not-yet-undone river placement may be outstanding; the searcher
// enforces this.
func (g *Grid) Remove(index int) {
	if index < 0 || index >= len(g.tiles) {
		return
	}
	k := g.tiles[index].Kind
	if k == Empty {
		return
	}
	g.tiles[index].Kind = Empty
	g.filled--
	g.bumpNeighbors(index, k, -1)
	if k == River && index == g.head {
		g.head = g.prevHead
		g.prevHead = -1
		if g.head == -1 {
			g.unstarted = true
		}
	}
}

func (g *Grid) adjacentToHead(index int) bool {
	hr, hc := g.RowCol(g.head)
	r, c := g.RowCol(index)
	dr, dc := r-hr, c-hc
	return dr*dr+dc*dc == 1
}
