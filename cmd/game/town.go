package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"town-explorer/internal/engineconfig"
	"town-explorer/internal/logger"
	"town-explorer/internal/scatter"
	"town-explorer/internal/world"
)

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (*engineconfig.Config, error) {
	cfg, err := engineconfig.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if dataSource != "" {
		cfg.Data.Entities = dataSource
	}
	if forceTouch {
		cfg.Mobile.Force = true
	}
	return cfg, nil
}

func newLogger(cfg engineconfig.LogConfig, path string) (*logger.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	return logger.New(path, level)
}

// buildTown loads the entity list and plans decoration around it. A missing or broken entity
// source yields an empty town, never an error.
func buildTown(ctx context.Context, cfg *engineconfig.Config, log *logger.Logger) ([]*world.Entity, []scatter.Instance) {
	records := world.LoadRecordsOrEmpty(ctx, cfg.Data.Entities, cfg.Data.Fetch(), log)
	entities := world.Build(records, log)
	instances := scatter.PlanAll(cfg.Scatter.Options(world.Occupied(entities)))
	log.Info("town built",
		zap.Int("entities", len(entities)),
		zap.Int("decorations", len(instances)),
		zap.String("source", cfg.Data.Entities))
	return entities, instances
}
