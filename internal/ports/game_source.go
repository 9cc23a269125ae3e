package ports

import (
	"context"

	"github.com/bft-labs/nfgame/internal/domain"
	"github.com/bft-labs/nfgame/pkg/game"
)

// GameSet is the fully parsed content of one games file.
type GameSet struct {
	// Path identifies where the games were loaded from.
	Path string

	// Games are the raw records in file order.
	Games []game.Record

	// Labels overrides the default game labels when non-nil.
	Labels domain.Labels
}

// GameSource loads games for analysis.
type GameSource interface {
	// Load reads and parses every game before returning.
	// Errors are *domain.LoadError values of kind ErrFileRead or ErrParse;
	// on error no games are returned.
	Load(ctx context.Context) (GameSet, error)
}
