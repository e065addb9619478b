package terra

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ProgressUpdate is a point-in-time snapshot of the search, sent on the
// Searcher's Progress channel for display.
type ProgressUpdate struct {
	Nodes     uint64
	Pruned    uint64
	BestValue int
}

// Searcher runs the branch-and-bound search for one terrain family.
// It owns the incumbent, the node counters, and a per-depth pool of
// scratch grids so the recursion allocates nothing after warmup. A
// Searcher is single-threaded; Progress is the only concurrent surface.
type Searcher struct {
	family  Family
	maxTile int

	rows, cols int
	pool       []*Grid

	bestVal int
	best    *Grid

	nodes  uint64
	pruned uint64

	// pending tracks the single placement awaiting undo on the live
	// grid. The grid only keeps one step of river-head history, so a
	// second outstanding placement would corrupt the undo.
	pending int

	// Progress, if non-nil, receives periodic updates. Sends never
	// block; a slow reader just misses snapshots.
	Progress chan ProgressUpdate

	Watch *Stopwatch
}

func NewSearcher(f Family) *Searcher {
	return &Searcher{
		family:  f,
		maxTile: f.MaxTileValue(),
		pending: -1,
		Watch:   NewStopwatch(),
	}
}

func (s *Searcher) Family() Family { return s.family }

func (s *Searcher) Nodes() uint64  { return s.nodes }
func (s *Searcher) Pruned() uint64 { return s.pruned }

// Solve finds the highest-scoring full arrangement of the family's
// terrain plus a river on a rows x cols grid. It returns the winning
// grid and its value. The heuristic zig-zag arrangement seeds the
// incumbent, so the returned value is at least the seed's score.
func (s *Searcher) Solve(rows, cols int) (*Grid, int, error) {
	if rows < 1 || cols < 1 {
		return nil, 0, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, rows, cols)
	}
	if !s.family.Valid() {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownFamily, int(s.family))
	}
	if rows != s.rows || cols != s.cols {
		s.rows, s.cols = rows, cols
		s.pool = nil
	}
	s.nodes, s.pruned = 0, 0
	s.pending = -1

	s.Watch.Start("seed")
	seed := SeedGrid(rows, cols)
	s.bestVal = Score(s.family, seed)
	s.best = seed
	s.Watch.Stop("seed")
	log.Debug().
		Stringer("family", s.family).
		Int("value", s.bestVal).
		Msg("seeded incumbent")

	s.Watch.Start("search")
	s.explore(New(rows, cols), 0)
	s.Watch.Stop("search")
	s.report()
	log.Debug().
		Uint64("nodes", s.nodes).
		Uint64("pruned", s.pruned).
		Int("value", s.bestVal).
		Msg("search finished")

	return s.best, s.bestVal, nil
}

// explore expands one node: adopt full grids that beat the incumbent,
// prune branches whose optimistic bound cannot, and otherwise try a
// river then a terrain tile on every still-empty cell in ascending
// index order. Each successful placement is copied onto a scratch grid
// and undone on the live grid before recursing, so the live grid is
// bit-for-bit unchanged when the cell loop advances.
func (s *Searcher) explore(g *Grid, depth int) {
	s.nodes++
	if s.nodes&0x3fff == 0 {
		s.report()
	}

	if g.IsFull() {
		val := Score(s.family, g)
		if val > s.bestVal {
			s.bestVal = val
			s.best = g.Clone()
			s.report()
		}
		return
	}

	val := Score(s.family, g)
	remaining := g.Capacity() - g.FilledCount()
	if val+s.maxTile*remaining <= s.bestVal {
		s.pruned++
		return
	}

	child := s.scratch(depth)
	for i := 0; i < g.Capacity(); i++ {
		if g.KindAt(i) != Empty {
			continue
		}
		if g.PlaceRiver(i) {
			s.markPending(i)
			child.CopyFrom(g)
			g.Remove(i)
			s.clearPending(i)
			s.explore(child, depth+1)
		}
		if g.PlaceTerrain(i) {
			s.markPending(i)
			child.CopyFrom(g)
			g.Remove(i)
			s.clearPending(i)
			s.explore(child, depth+1)
		}
	}
}

// scratch returns the reusable grid for the given recursion depth,
// growing the pool on first visit. Depth d recurses only into depths
// greater than d, so no two live frames share a scratch grid.
func (s *Searcher) scratch(depth int) *Grid {
	for len(s.pool) <= depth {
		s.pool = append(s.pool, New(s.rows, s.cols))
	}
	return s.pool[depth]
}

func (s *Searcher) markPending(index int) {
	if s.pending != -1 {
		panic(fmt.Sprintf("terra: placement at %d outstanding while placing %d", s.pending, index))
	}
	s.pending = index
}

func (s *Searcher) clearPending(index int) {
	if s.pending != index {
		panic(fmt.Sprintf("terra: undo of %d does not match outstanding placement %d", index, s.pending))
	}
	s.pending = -1
}

func (s *Searcher) report() {
	if s.Progress == nil {
		return
	}
	select {
	case s.Progress <- ProgressUpdate{Nodes: s.nodes, Pruned: s.pruned, BestValue: s.bestVal}:
	default:
	}
}
