// Package ports defines the interfaces that connect the analysis pipeline
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [GameSource]: loads the ordered list of games to analyze
//   - [ReportWriter]: renders analysis results
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with TOML
// decoding and text, YAML or JSON rendering.
package ports
