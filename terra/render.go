package terra

import "strings"

// Render draws the grid as boxed ASCII rows, river cells as R and
// terrain cells as the family's letter:
//
//	  ---------
//	  | R | M |
//	  ---------
func Render(g *Grid, f Family) string {
	ruling := "  " + strings.Repeat("----", g.Cols()) + "-\n"
	var b strings.Builder
	b.WriteString(ruling)
	for r := 0; r < g.Rows(); r++ {
		b.WriteString("  ")
		for c := 0; c < g.Cols(); c++ {
			cell := " "
			switch g.KindAt(g.Index(r, c)) {
			case River:
				cell = "R"
			case Terrain:
				cell = f.Label()
			}
			b.WriteString("| " + cell + " ")
		}
		b.WriteString("|\n")
		b.WriteString(ruling)
	}
	return b.String()
}
