// Package tomlsource loads games from a TOML file.
//
// The file holds an array of [[game]] tables, each with four payoff pairs,
// and an optional [labels] table keyed by 1-based game index:
//
//	[labels]
//	"12" = "Prisoners' dilemma"
//
//	[[game]]
//	p00 = [-1, -1]
//	p01 = [-3, 0]
//	p10 = [0, -3]
//	p11 = [-2, -2]
package tomlsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/nfgame/internal/domain"
	"github.com/bft-labs/nfgame/internal/ports"
	"github.com/bft-labs/nfgame/pkg/game"
)

// fileDoc mirrors the games file layout. Pointers and slices let us tell a
// missing key apart from a zero value.
type fileDoc struct {
	Game   *[]gameDoc        `toml:"game"`
	Labels map[string]string `toml:"labels"`
}

type gameDoc struct {
	P00 []int `toml:"p00"`
	P01 []int `toml:"p01"`
	P10 []int `toml:"p10"`
	P11 []int `toml:"p11"`
}

// Source implements ports.GameSource for a TOML file on disk.
type Source struct {
	path string
}

// New returns a Source reading the file at path.
func New(path string) *Source {
	return &Source{path: path}
}

// Path returns the file this source reads.
func (s *Source) Path() string {
	return s.path
}

// Load reads and decodes the whole file.
func (s *Source) Load(ctx context.Context) (ports.GameSet, error) {
	if err := ctx.Err(); err != nil {
		return ports.GameSet{}, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		return ports.GameSet{}, domain.NewReadError(s.path, err)
	}

	set, err := Decode(b)
	if err != nil {
		return ports.GameSet{}, domain.NewParseError(s.path, err)
	}
	set.Path = s.path
	return set, nil
}

// Decode parses games file content. Errors describe the first schema
// violation found.
func Decode(b []byte) (ports.GameSet, error) {
	var doc fileDoc
	if err := toml.NewDecoder(bytes.NewReader(b)).Decode(&doc); err != nil {
		return ports.GameSet{}, err
	}
	if doc.Game == nil {
		return ports.GameSet{}, errors.New("missing field game")
	}

	games := make([]game.Record, 0, len(*doc.Game))
	for i, g := range *doc.Game {
		rec, err := g.record()
		if err != nil {
			return ports.GameSet{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		games = append(games, rec)
	}

	labels, err := parseLabels(doc.Labels)
	if err != nil {
		return ports.GameSet{}, err
	}

	return ports.GameSet{Games: games, Labels: labels}, nil
}

func (g gameDoc) record() (game.Record, error) {
	var rec game.Record
	fields := []struct {
		name string
		raw  []int
		dst  *game.Payoff
	}{
		{"p00", g.P00, &rec.P00},
		{"p01", g.P01, &rec.P01},
		{"p10", g.P10, &rec.P10},
		{"p11", g.P11, &rec.P11},
	}
	for _, f := range fields {
		if f.raw == nil {
			return game.Record{}, fmt.Errorf("missing field %s", f.name)
		}
		if len(f.raw) != 2 {
			return game.Record{}, fmt.Errorf("field %s: expected 2 payoffs, got %d", f.name, len(f.raw))
		}
		*f.dst = game.Payoff{Row: f.raw[0], Col: f.raw[1]}
	}
	return rec, nil
}

func parseLabels(raw map[string]string) (domain.Labels, error) {
	if raw == nil {
		return nil, nil
	}
	labels := make(domain.Labels, len(raw))
	for k, v := range raw {
		idx, err := strconv.Atoi(k)
		if err != nil || idx <= 0 {
			return nil, fmt.Errorf("labels: key %q is not a positive game index", k)
		}
		labels[idx] = v
	}
	return labels, nil
}
