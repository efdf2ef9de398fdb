// Package dungeon implements the layout orchestrator: it resolves seeds, runs
// the placement engine and stores the results
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/engine/seed"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/idgen"
	layoutrepo "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
)

// Service defines the interface for layout operations
type Service interface {
	GenerateLayout(ctx context.Context, input *GenerateLayoutInput) (*GenerateLayoutOutput, error)
	GetLayout(ctx context.Context, input *GetLayoutInput) (*GetLayoutOutput, error)

	// RegenerateLayout rebuilds every zone of a stored layout and stores the
	// result under a new ID; the original is left untouched
	RegenerateLayout(ctx context.Context, input *RegenerateLayoutInput) (*RegenerateLayoutOutput, error)
	DeleteLayout(ctx context.Context, input *DeleteLayoutInput) (*DeleteLayoutOutput, error)
}

// Config holds the dependencies for the layout orchestrator
type Config struct {
	Engine      engine.Engine
	LayoutRepo  layoutrepo.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// SeedRoller draws random seed symbols; nil uses the toolkit dice roller
	SeedRoller seed.SymbolRoller

	// DefaultTTL applies to requests without a TTL; zero leaves it to the repository
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.LayoutRepo == nil {
		vb.RequiredField("LayoutRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DefaultTTL < 0 {
		vb.Field("DefaultTTL", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	layoutRepo layoutrepo.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	roller     seed.SymbolRoller
	defaultTTL time.Duration
}

// NewOrchestrator creates a new layout orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.SeedRoller
	if roller == nil {
		roller = seed.ToolkitRoller
	}

	return &orchestrator{
		engine:     cfg.Engine,
		layoutRepo: cfg.LayoutRepo,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		roller:     roller,
		defaultTTL: cfg.DefaultTTL,
	}, nil
}

// GenerateLayout resolves the seed, runs the engine and stores the layout
func (o *orchestrator) GenerateLayout(ctx context.Context, input *GenerateLayoutInput) (*GenerateLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if len(input.Zones) == 0 {
		vb.RequiredField("zones")
	}
	if input.TTL < 0 {
		vb.Field("ttl", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := seed.Resolve(input.Seed, o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve seed")
	}

	layout, err := o.generate(ctx, resolved, input)
	if err != nil {
		return nil, err
	}

	slog.Info("Generated layout",
		"layout_id", layout.ID,
		"seed", layout.Seed,
		"zones", len(layout.Reports),
		"rooms", len(layout.Rooms),
	)

	return &GenerateLayoutOutput{Layout: layout}, nil
}

func (o *orchestrator) generate(ctx context.Context, seedValue string, input *GenerateLayoutInput) (*entities.Layout, error) {
	out, err := o.engine.Generate(ctx, &engine.GenerateInput{
		Seed:    seedValue,
		Zones:   input.Zones,
		Options: input.Options,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate layout for seed %s", seedValue)
	}
	if out == nil || out.Layout == nil {
		return nil, errors.Internal("engine returned no layout")
	}

	layout := out.Layout
	layout.ID = o.idGen.Generate()
	layout.CreatedAt = o.clock.Now()

	ttl := input.TTL
	if ttl == 0 {
		ttl = o.defaultTTL
	}

	created, err := o.layoutRepo.Create(ctx, layoutrepo.CreateInput{
		Layout: layout,
		TTL:    ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store layout")
	}

	return created.Layout, nil
}

// GetLayout loads a stored layout
func (o *orchestrator) GetLayout(ctx context.Context, input *GetLayoutInput) (*GetLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	out, err := o.layoutRepo.Get(ctx, layoutrepo.GetInput{ID: input.LayoutID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get layout %s", input.LayoutID)
	}

	return &GetLayoutOutput{Layout: out.Layout}, nil
}

// RegenerateLayout rebuilds a stored layout from its zone configuration
func (o *orchestrator) RegenerateLayout(ctx context.Context, input *RegenerateLayoutInput) (*RegenerateLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}
	if input.NewSeed != "" && input.FreshSeed {
		return nil, errors.InvalidArgument("new seed and fresh seed are mutually exclusive")
	}

	existing, err := o.layoutRepo.Get(ctx, layoutrepo.GetInput{ID: input.LayoutID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get layout %s", input.LayoutID)
	}

	seedValue := existing.Layout.Seed
	switch {
	case input.NewSeed != "":
		seedValue = input.NewSeed
	case input.FreshSeed:
		seedValue, err = seed.Resolve("", o.roller)
		if err != nil {
			return nil, errors.Wrap(err, "failed to draw seed")
		}
	}

	options := input.Options
	if options == nil {
		options = engine.OptionsFromLayout(existing.Layout)
	}

	layout, err := o.generate(ctx, seedValue, &GenerateLayoutInput{
		Zones:   existing.Layout.Zones,
		Options: options,
		TTL:     input.TTL,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Regenerated layout",
		"previous_id", input.LayoutID,
		"layout_id", layout.ID,
		"seed", layout.Seed,
	)

	return &RegenerateLayoutOutput{
		Layout:     layout,
		PreviousID: input.LayoutID,
	}, nil
}

// DeleteLayout removes a stored layout
func (o *orchestrator) DeleteLayout(ctx context.Context, input *DeleteLayoutInput) (*DeleteLayoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.LayoutID == "" {
		return nil, errors.InvalidArgument("layout ID is required")
	}

	out, err := o.layoutRepo.Delete(ctx, layoutrepo.DeleteInput{ID: input.LayoutID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete layout %s", input.LayoutID)
	}

	slog.Info("Deleted layout", "layout_id", input.LayoutID)

	return &DeleteLayoutOutput{Deleted: out.Deleted}, nil
}
