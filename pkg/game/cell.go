package game

import "fmt"

var (
	rowStrategies = [Size]string{"a1", "b1"}
	colStrategies = [Size]string{"a2", "b2"}
)

// Cell identifies one outcome of the game.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// AllCells lists every cell in row-major order. Solvers enumerate cells in
// this order so their results are deterministic.
var AllCells = [Size * Size]Cell{
	{Row: 0, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
}

// RowStrategy returns the name of the row player's strategy r ("a1" or "b1").
func RowStrategy(r int) string {
	return rowStrategies[r]
}

// ColStrategy returns the name of the column player's strategy c ("a2" or "b2").
func ColStrategy(c int) string {
	return colStrategies[c]
}

// Label renders the cell as a strategy profile, e.g. "(a1, b2)".
func (c Cell) Label() string {
	return fmt.Sprintf("(%s, %s)", RowStrategy(c.Row), ColStrategy(c.Col))
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return c.Label()
}
