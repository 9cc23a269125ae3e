package solver

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/bft-labs/nfgame/pkg/game"
)

func matrix(p00, p01, p10, p11 [2]int) game.Matrix {
	return game.BuildMatrix(game.Record{
		P00: game.Payoff{Row: p00[0], Col: p00[1]},
		P01: game.Payoff{Row: p01[0], Col: p01[1]},
		P10: game.Payoff{Row: p10[0], Col: p10[1]},
		P11: game.Payoff{Row: p11[0], Col: p11[1]},
	})
}

var (
	a1a2 = game.Cell{Row: 0, Col: 0}
	a1b2 = game.Cell{Row: 0, Col: 1}
	b1a2 = game.Cell{Row: 1, Col: 0}
	b1b2 = game.Cell{Row: 1, Col: 1}
)

func TestAnalyze_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		m       game.Matrix
		wantDSE *game.Cell
		nash    []game.Cell
		pareto  []game.Cell
	}{
		{
			name:    "prisoners dilemma",
			m:       matrix([2]int{-1, -1}, [2]int{-3, 0}, [2]int{0, -3}, [2]int{-2, -2}),
			wantDSE: &b1b2,
			nash:    []game.Cell{b1b2},
			pareto:  []game.Cell{a1a2, a1b2, b1a2},
		},
		{
			name:   "battle of the sexes",
			m:      matrix([2]int{2, 1}, [2]int{0, 0}, [2]int{0, 0}, [2]int{1, 2}),
			nash:   []game.Cell{a1a2, b1b2},
			pareto: []game.Cell{a1a2, b1b2},
		},
		{
			name:    "both players dominant on first strategy",
			m:       matrix([2]int{3, 3}, [2]int{2, 0}, [2]int{0, 2}, [2]int{1, 1}),
			wantDSE: &a1a2,
			nash:    []game.Cell{a1a2},
			pareto:  []game.Cell{a1a2},
		},
		{
			// a1 beats b1 against a2 but loses against b2, so no dominance
			name:   "coordination without dominance",
			m:      matrix([2]int{3, 3}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 2}),
			nash:   []game.Cell{a1a2, b1b2},
			pareto: []game.Cell{a1a2},
		},
		{
			name:   "all ties",
			m:      matrix([2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}, [2]int{0, 0}),
			nash:   []game.Cell{a1a2, a1b2, b1a2, b1b2},
			pareto: []game.Cell{a1a2, a1b2, b1a2, b1b2},
		},
		{
			name:   "matching pennies has no pure equilibrium",
			m:      matrix([2]int{1, -1}, [2]int{-1, 1}, [2]int{-1, 1}, [2]int{1, -1}),
			nash:   nil,
			pareto: []game.Cell{a1a2, a1b2, b1a2, b1b2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(tt.m)

			if (a.DSE == nil) != (tt.wantDSE == nil) {
				t.Fatalf("DSE = %v, want %v", a.DSE, tt.wantDSE)
			}
			if a.DSE != nil && *a.DSE != *tt.wantDSE {
				t.Errorf("DSE = %v, want %v", *a.DSE, *tt.wantDSE)
			}
			if !reflect.DeepEqual(a.Nash, tt.nash) {
				t.Errorf("Nash = %v, want %v", a.Nash, tt.nash)
			}
			if !reflect.DeepEqual(a.Pareto, tt.pareto) {
				t.Errorf("Pareto = %v, want %v", a.Pareto, tt.pareto)
			}
		})
	}
}

func TestParetoEfficient_TieIsNotDominance(t *testing.T) {
	// (1,3) beats (1,2) only in the column payoff
	m := matrix([2]int{1, 2}, [2]int{1, 3}, [2]int{0, 0}, [2]int{0, 0})

	got := ParetoEfficient(m)
	want := []game.Cell{a1a2, a1b2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParetoEfficient() = %v, want %v", got, want)
	}
}

func TestParetoDominates(t *testing.T) {
	tests := []struct {
		b, a game.Payoff
		want bool
	}{
		{game.Payoff{Row: 2, Col: 2}, game.Payoff{Row: 1, Col: 1}, true},
		{game.Payoff{Row: 2, Col: 1}, game.Payoff{Row: 1, Col: 1}, false},
		{game.Payoff{Row: 1, Col: 2}, game.Payoff{Row: 1, Col: 1}, false},
		{game.Payoff{Row: 1, Col: 1}, game.Payoff{Row: 1, Col: 1}, false},
		{game.Payoff{Row: 0, Col: 5}, game.Payoff{Row: 1, Col: 1}, false},
	}
	for _, tt := range tests {
		if got := ParetoDominates(tt.b, tt.a); got != tt.want {
			t.Errorf("ParetoDominates(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestFindDominantStrategies(t *testing.T) {
	tests := []struct {
		name string
		m    game.Matrix
		want DominantStrategies
	}{
		{
			name: "row only",
			m:    matrix([2]int{2, 0}, [2]int{2, 1}, [2]int{1, 1}, [2]int{1, 0}),
			want: DominantStrategies{Row: DominanceFirst, Col: DominanceNone},
		},
		{
			name: "column only",
			m:    matrix([2]int{0, 0}, [2]int{1, 1}, [2]int{1, 0}, [2]int{0, 1}),
			want: DominantStrategies{Row: DominanceNone, Col: DominanceSecond},
		},
		{
			name: "weak dominance is not enough",
			m:    matrix([2]int{1, 1}, [2]int{1, 0}, [2]int{1, 0}, [2]int{0, 0}),
			want: DominantStrategies{Row: DominanceNone, Col: DominanceNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindDominantStrategies(tt.m)
			if got != tt.want {
				t.Errorf("FindDominantStrategies() = %+v, want %+v", got, tt.want)
			}
			if _, ok := got.Equilibrium(); ok {
				t.Error("Equilibrium() should not exist when a player has no dominant strategy")
			}
		})
	}
}

func randomMatrix(r *rand.Rand) game.Matrix {
	var m game.Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = game.Payoff{Row: r.IntN(7) - 3, Col: r.IntN(7) - 3}
		}
	}
	return m
}

func flipRow(c game.Cell) game.Cell { return game.Cell{Row: 1 - c.Row, Col: c.Col} }
func flipCol(c game.Cell) game.Cell { return game.Cell{Row: c.Row, Col: 1 - c.Col} }

func TestAnalyze_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 500; i++ {
		m := randomMatrix(r)
		a := Analyze(m)

		// idempotent
		if again := Analyze(m); !reflect.DeepEqual(a, again) {
			t.Fatalf("Analyze not deterministic for %v", m)
		}

		// results are row-major subsets of the four cells
		for _, cells := range [][]game.Cell{a.Nash, a.Pareto} {
			for k := 1; k < len(cells); k++ {
				prev, cur := cells[k-1], cells[k]
				if prev.Row*game.Size+prev.Col >= cur.Row*game.Size+cur.Col {
					t.Fatalf("cells not in row-major order: %v", cells)
				}
			}
		}

		// a DSE is always a Nash equilibrium
		if a.DSE != nil && !IsNashEquilibrium(m, *a.DSE) {
			t.Fatalf("DSE %v is not a Nash equilibrium of %v", *a.DSE, m)
		}

		// relabelling the row player's strategies relabels the DSE
		swapped := Analyze(m.SwapRows())
		if (a.DSE == nil) != (swapped.DSE == nil) {
			t.Fatalf("row swap changed DSE existence for %v", m)
		}
		if a.DSE != nil && flipRow(*a.DSE) != *swapped.DSE {
			t.Fatalf("row swap: DSE %v, want %v", *swapped.DSE, flipRow(*a.DSE))
		}

		swapped = Analyze(m.SwapCols())
		if (a.DSE == nil) != (swapped.DSE == nil) {
			t.Fatalf("column swap changed DSE existence for %v", m)
		}
		if a.DSE != nil && flipCol(*a.DSE) != *swapped.DSE {
			t.Fatalf("column swap: DSE %v, want %v", *swapped.DSE, flipCol(*a.DSE))
		}

		// Pareto efficiency matches the pairwise definition directly
		efficient := map[game.Cell]bool{}
		for _, c := range a.Pareto {
			efficient[c] = true
		}
		for _, c := range game.AllCells {
			dominated := false
			for _, o := range game.AllCells {
				if m.At(o).Row > m.At(c).Row && m.At(o).Col > m.At(c).Col {
					dominated = true
				}
			}
			if efficient[c] == dominated {
				t.Fatalf("cell %v efficient=%v but dominated=%v in %v", c, efficient[c], dominated, m)
			}
		}
	}
}
