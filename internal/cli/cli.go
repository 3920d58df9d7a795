// Package cli implements the dashctl command line tool: exports, backups,
// summaries and queries over the dashboard store.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rs/zerolog"

	"github.com/simaogato/lifedash-backend/internal/app"
	"github.com/simaogato/lifedash-backend/internal/config"
	"github.com/simaogato/lifedash-backend/internal/pkg/logger"
	"github.com/simaogato/lifedash-backend/internal/usecase/calendar"
)

// Register the subcommands.
// A main package will call Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&exportCmd{}, "data")
	c.Register(&backupCmd{}, "data")
	c.Register(&queryCmd{}, "data")

	c.Register(&summaryCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var envFile = flag.String("env-file", ".env", "Path to an optional .env file with the store settings")
var verbose = flag.Bool("v", false, "Log store activity to stderr")

// Completion returns the shell completion tree of every subcommand
func Completion() *complete.Command {
	jsonFiles := predict.Files("*.json")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"env-file": predict.Files("*"),
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"export": {Flags: map[string]complete.Predictor{
				"o": jsonFiles,
			}},
			"backup": {},
			"query": {
				Flags: map[string]complete.Predictor{"f": jsonFiles},
				Args:  predict.Set{"$.stats", "$.data.tasks[*].title", "$.data.finance.holdings[*].symbol"},
			},
			"summary": {Flags: map[string]complete.Predictor{
				"html":     predict.Nothing,
				"currency": predict.Set{"USD", "EUR", "GBP"},
				"width":    predict.Something,
			}},
		},
	}
}

// session is an opened store with its services
type session struct {
	cfg      *config.Config
	log      zerolog.Logger
	services *app.Services
	close    func()
}

// openSession loads the configuration and opens the store it names
func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}

	level := "warn"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stderr, level, "console")

	cal, err := calendar.Load(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	repos, closeStore, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}

	return &session{
		cfg:      cfg,
		log:      log,
		services: app.New(repos, cal),
		close:    closeStore,
	}, nil
}

// output opens path for writing, or returns stdout when path is "" or "-"
func output(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
