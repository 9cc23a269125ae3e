// Package solver computes pure-strategy solution concepts for 2x2 games.
//
// Three independent functions operate on a [game.Matrix]:
//
//   - [NashEquilibria]: cells where neither player gains by deviating alone
//   - [ParetoEfficient]: cells no other cell strictly improves for both players
//   - [DominantStrategies]: each player's strictly dominant strategy, if any
//
// [Analyze] runs all three. Every function is pure: the same matrix always
// yields the same result, and cell lists come back in row-major order.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package solver
