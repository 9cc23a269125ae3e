package domain

import (
	"github.com/bft-labs/nfgame/pkg/game"
	"github.com/bft-labs/nfgame/pkg/solver"
)

// GameReport is the analysis of one game, ready for rendering.
// Outcomes are stored as strategy-profile labels such as "(a1, b2)".
type GameReport struct {
	// Index is the game's 1-based position in the input file.
	Index int `json:"index" yaml:"index"`

	// Label is the game's descriptive name, if any.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	Matrix game.Matrix `json:"matrix" yaml:"matrix,flow"`

	// DSE is nil when no dominant-strategy equilibrium exists.
	DSE    *string  `json:"dse" yaml:"dse"`
	Nash   []string `json:"nash" yaml:"nash"`
	Pareto []string `json:"pareto" yaml:"pareto"`
}

// Report holds every game's analysis for one input file.
type Report struct {
	Source string       `json:"source" yaml:"source"`
	Games  []GameReport `json:"games" yaml:"games"`
}

// NewGameReport converts a solver result into its reportable form.
func NewGameReport(index int, label string, m game.Matrix, a solver.Analysis) GameReport {
	r := GameReport{
		Index:  index,
		Label:  label,
		Matrix: m,
		Nash:   cellLabels(a.Nash),
		Pareto: cellLabels(a.Pareto),
	}
	if a.DSE != nil {
		dse := a.DSE.Label()
		r.DSE = &dse
	}
	return r
}

func cellLabels(cells []game.Cell) []string {
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		out = append(out, c.Label())
	}
	return out
}
