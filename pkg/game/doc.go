// Package game models two-player, two-strategy normal-form games.
//
// A game is a fixed 2x2 grid of payoff pairs. The row player picks a row
// ("a1" or "b1"), the column player picks a column ("a2" or "b2"), and the
// cell at the intersection holds both players' payoffs.
//
// # Usage
//
//	m := game.BuildMatrix(game.Record{
//	    P00: game.Payoff{Row: -1, Col: -1},
//	    P01: game.Payoff{Row: -3, Col: 0},
//	    P10: game.Payoff{Row: 0, Col: -3},
//	    P11: game.Payoff{Row: -2, Col: -2},
//	})
//	fmt.Println(m.At(game.Cell{Row: 1, Col: 1})) // {-2 -2}
//
// Matrices are plain arrays and are passed by value; nothing in this package
// mutates a matrix after it is built.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package game
