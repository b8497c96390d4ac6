package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/webtally/webtally/internal/logger"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

var flags struct {
	configPath  string
	url         string
	format      string
	timeout     time.Duration
	verbose     bool
	showVersion bool
}

func main() {
	flag.StringVar(&flags.configPath, "config", "", "config file (default is $HOME/.config/webtally/config.yml)")
	flag.StringVar(&flags.url, "url", "", "URL of the weblog CSV file (required)")
	flag.StringVar(&flags.format, "format", defaultFormat, "output format: text or json")
	flag.DurationVar(&flags.timeout, "timeout", defaultTimeout, "HTTP fetch timeout")
	flag.BoolVar(&flags.verbose, "verbose", false, "enable debug logging")
	flag.BoolVar(&flags.showVersion, "version", false, "print version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: webtally --url <value> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Downloads a comma-delimited web access log and reports image-request share,\n")
		fmt.Fprintf(os.Stderr, "the most popular browser, and hits by hour of day.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flags.showVersion {
		fmt.Printf("webtally - Web Access Log Reporter\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(flags.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	applyFlagOverrides(&cfg)

	if cfg.URL == "" {
		fmt.Fprintf(os.Stderr, "Error: --url is required\n\n")
		flag.Usage()
		os.Exit(2)
	}

	lg := logger.New(cfg.Verbose).Named("webtally")
	defer lg.Sync()

	// Boundary for the whole run: any failure is logged and turned into a
	// clean non-zero exit, never a stack trace.
	if err := run(cfg, lg); err != nil {
		lg.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

// applyFlagOverrides lets explicitly passed flags win over config file and
// environment values.
func applyFlagOverrides(cfg *appConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.URL = flags.url
		case "format":
			cfg.Format = flags.format
		case "timeout":
			cfg.Timeout = flags.timeout
		case "verbose":
			cfg.Verbose = flags.verbose
		}
	})
}
