package solver

import "github.com/bft-labs/nfgame/pkg/game"

// Dominance records which of a player's two strategies strictly dominates
// the other, if either does.
type Dominance int

const (
	// DominanceNone means neither strategy strictly dominates.
	DominanceNone Dominance = iota
	// DominanceFirst means strategy index 0 (a1 or a2) dominates.
	DominanceFirst
	// DominanceSecond means strategy index 1 (b1 or b2) dominates.
	DominanceSecond
)

// Index returns the dominant strategy's index and whether there is one.
func (d Dominance) Index() (int, bool) {
	switch d {
	case DominanceFirst:
		return 0, true
	case DominanceSecond:
		return 1, true
	default:
		return 0, false
	}
}

// String implements fmt.Stringer.
func (d Dominance) String() string {
	switch d {
	case DominanceFirst:
		return "first"
	case DominanceSecond:
		return "second"
	default:
		return "none"
	}
}

// MarshalText renders the dominance by name in logs and encoded output.
func (d Dominance) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DominantStrategies holds the dominance result for both players.
type DominantStrategies struct {
	Row Dominance
	Col Dominance
}

// Equilibrium returns the dominant-strategy equilibrium, which exists only
// when both players have a strictly dominant strategy.
func (d DominantStrategies) Equilibrium() (game.Cell, bool) {
	r, okRow := d.Row.Index()
	c, okCol := d.Col.Index()
	if !okRow || !okCol {
		return game.Cell{}, false
	}
	return game.Cell{Row: r, Col: c}, true
}

// FindDominantStrategies checks each player for a strategy that pays strictly
// more than the other against every opposing choice.
func FindDominantStrategies(m game.Matrix) DominantStrategies {
	return DominantStrategies{
		Row: rowDominance(m),
		Col: colDominance(m),
	}
}

func rowDominance(m game.Matrix) Dominance {
	switch {
	case m[0][0].Row > m[1][0].Row && m[0][1].Row > m[1][1].Row:
		return DominanceFirst
	case m[1][0].Row > m[0][0].Row && m[1][1].Row > m[0][1].Row:
		return DominanceSecond
	default:
		return DominanceNone
	}
}

func colDominance(m game.Matrix) Dominance {
	switch {
	case m[0][0].Col > m[0][1].Col && m[1][0].Col > m[1][1].Col:
		return DominanceFirst
	case m[0][1].Col > m[0][0].Col && m[1][1].Col > m[1][0].Col:
		return DominanceSecond
	default:
		return DominanceNone
	}
}
