// Package domain contains the core entities of the nfgame pipeline that sit
// around the solver: load errors, game labels and the report model.
//
// This package has no dependencies on infrastructure concerns (TOML, file
// system, logging). The game model itself lives in pkg/game and the solution
// concepts in pkg/solver.
//
// # Entities
//
//   - [LoadError]: a fatal failure to read or parse the games file
//   - [Labels]: descriptive names keyed by 1-based game index
//   - [Report]: analysis results for every game of one input file
package domain
