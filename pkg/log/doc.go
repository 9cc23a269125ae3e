// Package log provides the logging abstraction used by nfgame components.
//
// Library code (the analysis pipeline and the file watcher) logs through the
// Logger interface so it can run silently under test or inside another
// program. The CLI wires in the zerolog adapter.
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("analysis complete", log.Int("games", 3))
//
// Use the no-op logger when no output is wanted:
//
//	logger := log.NewNoopLogger()
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package log
