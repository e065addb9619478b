package terra

import (
	"fmt"
	"strings"
)

// Family selects which terrain type the optimizer places alongside the
// river. Exactly one family is active per search.
type Family int

const (
	Meadow Family = iota
	Thicket
	Mountain
	Suburb
	familyCount
)

// Base tile values per family.
const (
	meadowBase   = 3
	thicketBase  = 2
	mountainBase = 6
	suburbBase   = 1
)

func (f Family) Valid() bool { return f >= 0 && f < familyCount }

func (f Family) String() string {
	switch f {
	case Meadow:
		return "meadow"
	case Thicket:
		return "thicket"
	case Mountain:
		return "mountain"
	case Suburb:
		return "suburb"
	}
	return "?"
}

// Label is the single-letter cell marker used by the board renderer.
func (f Family) Label() string {
	switch f {
	case Meadow:
		return "M"
	case Thicket:
		return "T"
	case Mountain:
		return "M"
	case Suburb:
		return "S"
	}
	return "?"
}

// Base returns the family's base tile value.
func (f Family) Base() int {
	switch f {
	case Meadow:
		return meadowBase
	case Thicket:
		return thicketBase
	case Mountain:
		return mountainBase
	case Suburb:
		return suburbBase
	}
	return 0
}

// ParseFamily accepts a family name (case-insensitive) or the numeric
// menu choice 0-3 (meadow, thicket, mountain, suburb).
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "meadow", "0":
		return Meadow, nil
	case "thicket", "1":
		return Thicket, nil
	case "mountain", "2":
		return Mountain, nil
	case "suburb", "3":
		return Suburb, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFamily, s)
}

// TileValue scores a single terrain tile of this family given its
// orthogonal river and terrain neighbor counts.
//
// Meadow and Thicket double their base per adjacent river; Suburb peaks
// when boxed in by its own kind; Mountain compounds terrain adjacency
// with river adjacency.
func (f Family) TileValue(adjRivers, adjTerrain int) int {
	b := f.Base()
	switch f {
	case Meadow, Thicket:
		if adjRivers == 0 {
			return b
		}
		return 2 * b * adjRivers
	case Suburb:
		if adjTerrain == 4 {
			return 2 * b
		}
		if adjRivers != 0 {
			return 2 * b * adjRivers
		}
		return b
	case Mountain:
		return adjTerrain*b + adjTerrain*adjRivers*b
	}
	return 0
}

// Score totals TileValue over every terrain tile, reading the cached
// adjacency counts. River and empty tiles contribute nothing.
func Score(f Family, g *Grid) int {
	total := 0
	for i := 0; i < g.Capacity(); i++ {
		t := g.Tile(i)
		if t.Kind != Terrain {
			continue
		}
		total += f.TileValue(t.AdjRivers, t.AdjTerrain)
	}
	return total
}

// MaxTileValue is the largest value any single tile of this family can
// take, found by enumerating every feasible neighbor split (at most
// four orthogonal neighbors). The search uses it as the optimistic
// per-tile bound, so it must never undercount.
func (f Family) MaxTileValue() int {
	best := 0
	for r := 0; r <= 4; r++ {
		for t := 0; r+t <= 4; t++ {
			if v := f.TileValue(r, t); v > best {
				best = v
			}
		}
	}
	return best
}
