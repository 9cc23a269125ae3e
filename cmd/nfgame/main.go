package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/nfgame/internal/adapters/fswatch"
	"github.com/bft-labs/nfgame/internal/adapters/report"
	"github.com/bft-labs/nfgame/internal/adapters/tomlsource"
	"github.com/bft-labs/nfgame/internal/app"
	"github.com/bft-labs/nfgame/internal/cliconfig"
	"github.com/bft-labs/nfgame/pkg/log"
)

var longHelp = strings.TrimSpace(`
Analyze 2x2 normal-form games loaded from a TOML file.

For every game nfgame reports:
  - the dominant-strategy equilibrium (DSE), if both players have a strictly dominant strategy
  - every pure-strategy Nash equilibrium
  - every Pareto-efficient outcome

The row player chooses a1 or b1, the column player a2 or b2.
`)

var exampleUsage = strings.TrimSpace(`
  nfgame game.toml
  nfgame --format yaml --output report.yaml game.toml
  nfgame --watch --log-level info game.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	bootLog := cliconfig.Logger(cfg.LogLevel)

	root := &cobra.Command{
		Use:           "nfgame [games-file]",
		Short:         "Compute DSE, Nash equilibria and Pareto efficiency for 2x2 games",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// A positional games file behaves like an explicit --games flag
			if len(args) == 1 {
				cfg.GamesFile = args[0]
				changed["games"] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zl := cliconfig.Logger(cfg.LogLevel)
			zl.Debug().Interface("config", cfg).Msg("configuration")
			logger := log.NewZerologAdapterWithLogger(zl)

			return run(cmd.Context(), cfg, logger)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.nfgame/config.toml)")
	root.Flags().StringVar(&cfg.GamesFile, "games", cfg.GamesFile, "TOML file with [[game]] entries")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "report format: text, yaml or json")
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "write the report to this file instead of stdout")
	root.Flags().BoolVar(&cfg.NoLabels, "no-labels", cfg.NoLabels, "do not print descriptive game names")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run the analysis whenever the games file changes")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after a change before re-running (watch mode)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		bootLog.Error().Err(err).Msg("nfgame")
		stop()
		os.Exit(1)
	}
}

// run performs the initial analysis and, in watch mode, keeps re-running it.
// Only the initial run's errors are fatal.
func run(ctx context.Context, cfg cliconfig.Config, logger log.Logger) error {
	writer, err := report.New(cfg.Format)
	if err != nil {
		return err
	}

	opts := []app.Option{app.WithLogger(logger)}
	if cfg.NoLabels {
		opts = append(opts, app.WithLabels(nil), app.WithFileLabels(false))
	}

	once := func(ctx context.Context) error {
		var buf bytes.Buffer
		if err := app.NewAnalyzer(tomlsource.New(cfg.GamesFile), writer, &buf, opts...).Run(ctx); err != nil {
			return err
		}
		return writeOutput(cfg.Output, buf.Bytes())
	}

	if err := once(ctx); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}

	w := fswatch.New(cfg.GamesFile, cfg.Debounce, logger)
	return w.Run(ctx, func(ctx context.Context) {
		if err := once(ctx); err != nil {
			logger.Error("reload failed", log.Err(err))
		}
	})
}

// writeOutput writes a finished report to path, or to stdout when path is empty.
func writeOutput(path string, b []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
