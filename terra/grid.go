// Package terra finds the highest-value arrangement of one terrain type
// plus a connecting river on a small rectangular grid.
//
// Cells are addressed by row-major linear index:
//
//	0 | 1 | 2 | 3
//	4 | 5 | 6 | 7
//	8 | 9 | ...
package terra

import "fmt"

type Kind uint8

const (
	Empty Kind = iota
	River
	Terrain
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case River:
		return "river"
	case Terrain:
		return "terrain"
	}
	return "?"
}

// Tile is one grid cell. AdjRivers and AdjTerrain count orthogonal
// neighbors of each kind; the placement mutators keep them exact so
// scoring never rescans the board.
type Tile struct {
	Kind       Kind
	AdjRivers  int
	AdjTerrain int
}

// Grid is the mutable board plus river-head tracking and fill accounting.
// The river is a single simple path; head is the most recently placed
// river cell and prevHead the head before that (one step of undo history).
type Grid struct {
	rows, cols int
	tiles      []Tile
	filled     int
	head       int
	prevHead   int
	unstarted  bool
}

var orthogonal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// New allocates an all-Empty grid. Dimensions must be positive; callers
// go through Searcher.Solve, which validates them.
func New(rows, cols int) *Grid {
	return &Grid{
		rows:      rows,
		cols:      cols,
		tiles:     make([]Tile, rows*cols),
		head:      -1,
		prevHead:  -1,
		unstarted: true,
	}
}

func (g *Grid) Rows() int        { return g.rows }
func (g *Grid) Cols() int        { return g.cols }
func (g *Grid) Capacity() int    { return g.rows * g.cols }
func (g *Grid) FilledCount() int { return g.filled }

func (g *Grid) IsFull() bool { return g.filled == g.Capacity() }

// RiverHead returns the linear index of the river head, or -1 if no
// river cell has been placed.
func (g *Grid) RiverHead() int { return g.head }

func (g *Grid) RiverStarted() bool { return !g.unstarted }

func (g *Grid) Tile(index int) Tile { return g.tiles[index] }

func (g *Grid) KindAt(index int) Kind { return g.tiles[index].Kind }

func (g *Grid) Index(r, c int) int { return r*g.cols + c }

func (g *Grid) RowCol(index int) (int, int) {
	return index / g.cols, index % g.cols
}

func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && c >= 0 && r < g.rows && c < g.cols
}

// Usable reports whether a tile may be placed at index: true only when
// the index is in range and the cell is still Empty.
func (g *Grid) Usable(index int) bool {
	return index >= 0 && index < len(g.tiles) && g.tiles[index].Kind == Empty
}

func (g *Grid) OnBorder(index int) bool {
	r, c := g.RowCol(index)
	return r == 0 || c == 0 || r == g.rows-1 || c == g.cols-1
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g *Grid) Clone() *Grid {
	dup := New(g.rows, g.cols)
	dup.CopyFrom(g)
	return dup
}

// CopyFrom overwrites the receiver with src's state. Both grids must
// have the same dimensions; the search's scratch pool guarantees this.
func (g *Grid) CopyFrom(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic(fmt.Sprintf("terra: copy between %dx%d and %dx%d grids", src.rows, src.cols, g.rows, g.cols))
	}
	copy(g.tiles, src.tiles)
	g.filled = src.filled
	g.head = src.head
	g.prevHead = src.prevHead
	g.unstarted = src.unstarted
}

// bumpNeighbors adjusts the cached adjacency counts of the four
// orthogonal neighbors of index by delta for the given kind.
func (g *Grid) bumpNeighbors(index int, k Kind, delta int) {
	r, c := g.RowCol(index)
	for _, d := range orthogonal {
		nr, nc := r+d[0], c+d[1]
		if !g.InBounds(nr, nc) {
			continue
		}
		n := &g.tiles[g.Index(nr, nc)]
		if k == River {
			n.AdjRivers += delta
		} else {
			n.AdjTerrain += delta
		}
	}
}

func (g *Grid) String() string {
	out := make([]byte, 0, (g.cols+1)*g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch g.tiles[g.Index(r, c)].Kind {
			case River:
				out = append(out, 'R')
			case Terrain:
				out = append(out, 'T')
			default:
				out = append(out, '_')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
