package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wilbanksalexis/Powering/internal/config"
	"github.com/wilbanksalexis/Powering/internal/dashboard"
	"github.com/wilbanksalexis/Powering/internal/dataset"
	"github.com/wilbanksalexis/Powering/internal/logger"
	"github.com/wilbanksalexis/Powering/internal/mapview"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `powering init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger. --verbose forces debug level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level, string(cfg.Log.Format))
}

func mapOptions(cfg *config.Config) mapview.Options {
	return mapview.Options{
		Center:     mapview.LatLng{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng},
		Zoom:       cfg.Map.Zoom,
		FitPadding: cfg.Map.FitPadding,
	}
}

func pageConfig(cfg *config.Config) dashboard.PageConfig {
	return dashboard.PageConfig{
		Title:       cfg.Title,
		TileURL:     cfg.Map.TileURL,
		Attribution: cfg.Map.Attribution,
		MaxZoom:     cfg.Map.MaxZoom,
	}
}

// loadState fetches the dataset into a new map state. The state is returned
// even when loading failed; it then carries the error in its legend.
func loadState(ctx context.Context, cfg *config.Config, log *zap.Logger) (*mapview.State, error) {
	state := mapview.NewState(mapOptions(cfg), log)
	loader := dataset.NewLoader(cfg.Data.Locations, cfg.Data.Commentary, cfg.Data.Timeout)
	err := state.Load(ctx, loader)
	return state, err
}
