package solver

import "github.com/bft-labs/nfgame/pkg/game"

// ParetoDominates reports whether b strictly dominates a: both players are
// strictly better off at b. A tie in either coordinate is not dominance.
func ParetoDominates(b, a game.Payoff) bool {
	return b.Row > a.Row && b.Col > a.Col
}

// ParetoEfficient returns the cells not strictly dominated by any other cell,
// in row-major order.
func ParetoEfficient(m game.Matrix) []game.Cell {
	var out []game.Cell
	for _, c := range game.AllCells {
		current := m.At(c)
		dominated := false
		// self-comparison never satisfies the strict predicate
		for _, other := range game.AllCells {
			if ParetoDominates(m.At(other), current) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, c)
		}
	}
	return out
}
