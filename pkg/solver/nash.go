package solver

import "github.com/bft-labs/nfgame/pkg/game"

// IsNashEquilibrium reports whether c is a pure-strategy Nash equilibrium.
// Ties count as best responses, so weak equilibria are included.
func IsNashEquilibrium(m game.Matrix, c game.Cell) bool {
	current := m.At(c)
	for r := 0; r < game.Size; r++ {
		if m[r][c.Col].Row > current.Row {
			return false
		}
	}
	for col := 0; col < game.Size; col++ {
		if m[c.Row][col].Col > current.Col {
			return false
		}
	}
	return true
}

// NashEquilibria returns every pure-strategy Nash equilibrium in row-major order.
func NashEquilibria(m game.Matrix) []game.Cell {
	var out []game.Cell
	for _, c := range game.AllCells {
		if IsNashEquilibrium(m, c) {
			out = append(out, c)
		}
	}
	return out
}
