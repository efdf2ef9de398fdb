package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/config"
	"github.com/KirkDiggler/dungeon-layout/internal/engine/placement"
	"github.com/KirkDiggler/dungeon-layout/internal/engine/seed"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/idgen"
	layoutrepo "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
)

// localFlags are shared by the commands that generate without a server
type localFlags struct {
	configPath string
	seed       string
	seedFile   string
}

func (f *localFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "configs/example.yaml", "Zone config file")
	flags.StringVar(&f.seed, "seed", "", "Seed to generate from; overrides the seed file and config")
	flags.StringVar(&f.seedFile, "seed-file", "", "File the seed is read from and written back to")
}

// resolveSeed picks the seed in order: flag, seed file, config. Empty lets the
// service draw a random one.
func (f *localFlags) resolveSeed(cfg *config.Config) (string, error) {
	if f.seed != "" {
		return f.seed, nil
	}
	if f.seedFile != "" {
		stored, err := seed.Load(f.seedFile)
		if err != nil {
			return "", err
		}
		if stored != "" {
			return stored, nil
		}
	}
	return cfg.Seed, nil
}

// generateLocal loads the config and generates a layout in process
func generateLocal(ctx context.Context, f *localFlags) (*entities.Layout, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	seedValue, err := f.resolveSeed(cfg)
	if err != nil {
		return nil, err
	}

	svc, err := newLocalService(cfg)
	if err != nil {
		return nil, err
	}

	out, err := svc.GenerateLayout(ctx, &dungeon.GenerateLayoutInput{
		Seed:    seedValue,
		Zones:   cfg.Zones,
		Options: &cfg.Options,
	})
	if err != nil {
		return nil, err
	}

	if f.seedFile != "" {
		if err := seed.Save(f.seedFile, out.Layout.Seed); err != nil {
			return nil, err
		}
		slog.Debug("Saved seed", "path", f.seedFile, "seed", out.Layout.Seed)
	}

	return out.Layout, nil
}

func newLocalService(cfg *config.Config) (dungeon.Service, error) {
	eng, err := placement.New(&placement.Config{Defaults: &cfg.Options})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	clk := clock.New()
	return dungeon.NewOrchestrator(&dungeon.Config{
		Engine:      eng,
		LayoutRepo:  layoutrepo.NewInMemory(clk),
		IDGenerator: idgen.NewUUID("layout"),
		Clock:       clk,
	})
}
