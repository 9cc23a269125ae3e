package solver

import "github.com/bft-labs/nfgame/pkg/game"

// Analysis bundles the three solution concepts for one game.
type Analysis struct {
	// Dominant holds each player's dominance result.
	Dominant DominantStrategies

	// DSE is the dominant-strategy equilibrium, or nil when there is none.
	DSE *game.Cell

	// Nash lists the pure-strategy Nash equilibria in row-major order.
	Nash []game.Cell

	// Pareto lists the Pareto-efficient outcomes in row-major order.
	Pareto []game.Cell
}

// Analyze runs every solver on m.
func Analyze(m game.Matrix) Analysis {
	a := Analysis{
		Dominant: FindDominantStrategies(m),
		Nash:     NashEquilibria(m),
		Pareto:   ParetoEfficient(m),
	}
	if c, ok := a.Dominant.Equilibrium(); ok {
		a.DSE = &c
	}
	return a
}
