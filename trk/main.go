// Command trk is an interactive portfolio tracker.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/tracker"
	"github.com/etnz/tracker/cmd"
	"github.com/etnz/tracker/eodhd"
	"github.com/etnz/tracker/internal/common"
	"github.com/etnz/tracker/yahoo"
)

var (
	configFile = flag.String("config", "trk.toml", "Path to the TOML configuration file")
	logLevel   = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the configuration")
	chartDir   = flag.String("chart-dir", "", "Directory where charts are written, overrides the configuration")
	style      = flag.String("style", cmd.StyleAuto, "Markdown style: auto, raw, dark, light, notty")
)

func main() {
	comp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":    predict.Files("*.toml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"chart-dir": predict.Dirs("*"),
			"style":     predict.Set{cmd.StyleAuto, cmd.StyleRaw, "dark", "light", "notty"},
		},
	}
	comp.Complete("trk")

	flag.Parse()

	// the user configuration is overridden by the local one.
	var paths []string
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "trk", "config.toml"))
	}
	paths = append(paths, *configFile)
	cfg, err := common.LoadConfig(paths...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *chartDir != "" {
		cfg.Charts.Dir = *chartDir
	}

	logger := common.NewLogger(cfg.Logging.Level)
	provider := newProvider(cfg, logger)
	logger.Debug().Str("portfolio", cfg.Portfolio.Name).Str("currency", cfg.Portfolio.Currency).Str("provider", cfg.Portfolio.Provider).Msg("starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := cmd.NewSession(cfg, provider, logger)
	s.Style = *style
	if err := s.Run(ctx, os.Stdin); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("session failed")
		os.Exit(1)
	}
}

// newProvider returns the configured quote provider.
func newProvider(cfg *common.Config, logger *common.Logger) tracker.Provider {
	if cfg.Portfolio.Provider == common.ProviderEODHD {
		return eodhd.New(cfg.EODHD.APIKey, cfg.Portfolio.Currency,
			eodhd.WithLogger(logger),
			eodhd.WithBaseURL(cfg.EODHD.BaseURL),
			eodhd.WithExchange(cfg.EODHD.Exchange),
			eodhd.WithRateLimit(cfg.EODHD.RateLimit),
			eodhd.WithTimeout(cfg.EODHD.GetTimeout()),
			eodhd.WithCacheDir(cfg.EODHD.CacheDir),
		)
	}
	return yahoo.New(cfg.Portfolio.Currency,
		yahoo.WithLogger(logger),
		yahoo.WithRateLimit(cfg.Yahoo.RateLimit),
		yahoo.WithTimeout(cfg.Yahoo.GetTimeout()),
		yahoo.WithProfileURL(cfg.Yahoo.ProfileURL),
		yahoo.WithCacheDir(cfg.Yahoo.CacheDir),
	)
}
