package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bft-labs/nfgame/internal/domain"
	"github.com/bft-labs/nfgame/internal/ports"
	"github.com/bft-labs/nfgame/pkg/game"
	"github.com/bft-labs/nfgame/pkg/log"
	"github.com/bft-labs/nfgame/pkg/solver"
)

// Analyzer runs the pipeline: load games, build matrices, solve, report.
type Analyzer struct {
	source ports.GameSource
	writer ports.ReportWriter
	out    io.Writer
	opts   options
}

// Option configures optional behavior of an Analyzer.
type Option func(*options)

type options struct {
	logger     log.Logger
	labels     domain.Labels
	fileLabels bool
}

func defaultOptions() options {
	return options{
		logger:     log.NewNoopLogger(),
		labels:     domain.DefaultLabels(),
		fileLabels: true,
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLabels sets the labels used when the games file carries none.
// Pass nil to leave games unlabeled. Defaults to domain.DefaultLabels.
func WithLabels(labels domain.Labels) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// WithFileLabels controls whether a games file's own labels replace the
// configured ones. Enabled by default.
func WithFileLabels(enabled bool) Option {
	return func(o *options) {
		o.fileLabels = enabled
	}
}

// NewAnalyzer creates an Analyzer that reads from source and renders with
// writer to out.
func NewAnalyzer(source ports.GameSource, writer ports.ReportWriter, out io.Writer, opts ...Option) *Analyzer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Analyzer{
		source: source,
		writer: writer,
		out:    out,
		opts:   o,
	}
}

// Analyze loads every game and solves each one. Loading happens in full
// before any analysis, so a load error yields no partial report.
func (a *Analyzer) Analyze(ctx context.Context) (domain.Report, error) {
	set, err := a.source.Load(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	labels := a.opts.labels
	if a.opts.fileLabels && set.Labels != nil {
		labels = set.Labels
	}

	report := domain.Report{
		Source: set.Path,
		Games:  make([]domain.GameReport, 0, len(set.Games)),
	}
	for i, rec := range set.Games {
		index := i + 1
		m := game.BuildMatrix(rec)
		result := solver.Analyze(m)
		a.opts.logger.Debug("game analyzed",
			log.Int("game", index),
			log.Int("nash", len(result.Nash)),
			log.Int("pareto", len(result.Pareto)),
			log.Any("dominant", result.Dominant),
		)
		report.Games = append(report.Games, domain.NewGameReport(index, labels.Get(index), m, result))
	}
	return report, nil
}

// Run analyzes every game and writes the report.
func (a *Analyzer) Run(ctx context.Context) error {
	start := time.Now()

	report, err := a.Analyze(ctx)
	if err != nil {
		return fmt.Errorf("load games: %w", err)
	}
	if err := a.writer.Write(a.out, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	a.opts.logger.Info("analysis complete",
		log.String("source", report.Source),
		log.Int("games", len(report.Games)),
		log.Duration("elapsed", time.Since(start)),
	)
	return nil
}
