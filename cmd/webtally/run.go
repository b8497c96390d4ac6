package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/webtally/webtally/internal/analyzer"
	"github.com/webtally/webtally/internal/fetch"
	"github.com/webtally/webtally/internal/logparse"
	"github.com/webtally/webtally/internal/report"
)

// run is the report driver: fetch, parse, analyze, print. It is the only
// place the pipeline touches I/O.
func run(cfg appConfig, lg *zap.Logger) error {
	ctx := context.Background()
	out := report.NewWriter(os.Stdout)
	textMode := cfg.Format != "json"

	if textMode {
		out.Progress("Downloading data from %s...", cfg.URL)
	}
	raw, err := fetch.New(cfg.Timeout, lg.Named("fetch")).Fetch(ctx, cfg.URL)
	if err != nil {
		return err
	}

	if textMode {
		out.Progress("Processing CSV data...")
	}
	records := logparse.ParseRecords(raw)
	if textMode {
		out.Progress("Processed %d log entries", len(records))
	}
	lg.Debug("parsed records", zap.Int("count", len(records)))

	rep := analyzer.Analyze(records)

	if !textMode {
		return out.WriteJSON(rep)
	}
	out.WriteText(rep)
	return nil
}
