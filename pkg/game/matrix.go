package game

// Size is the number of strategies available to each player.
const Size = 2

// Payoff is the pair of payoffs attached to one outcome.
type Payoff struct {
	// Row is the row player's payoff.
	Row int `json:"row" yaml:"row"`

	// Col is the column player's payoff.
	Col int `json:"col" yaml:"col"`
}

// Matrix is a 2x2 grid of payoffs indexed by [row strategy][column strategy].
type Matrix [Size][Size]Payoff

// Record is one raw game as read from input: four payoffs in row-major order.
type Record struct {
	P00 Payoff
	P01 Payoff
	P10 Payoff
	P11 Payoff
}

// BuildMatrix places the record's payoffs into a matrix, p00 at [0][0],
// p01 at [0][1], p10 at [1][0] and p11 at [1][1].
func BuildMatrix(r Record) Matrix {
	return Matrix{
		{r.P00, r.P01},
		{r.P10, r.P11},
	}
}

// At returns the payoff of the given cell.
func (m Matrix) At(c Cell) Payoff {
	return m[c.Row][c.Col]
}

// SwapRows returns the matrix with the row player's strategies exchanged.
func (m Matrix) SwapRows() Matrix {
	return Matrix{m[1], m[0]}
}

// SwapCols returns the matrix with the column player's strategies exchanged.
func (m Matrix) SwapCols() Matrix {
	return Matrix{
		{m[0][1], m[0][0]},
		{m[1][1], m[1][0]},
	}
}
