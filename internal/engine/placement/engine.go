// Package placement implements the zone-based room placement engine.
//
// A run builds the grid, then walks every zone through five passes in order:
// start room, frontier growth, connectors or surface exits, required-room
// backfill and connectivity repair. Problems inside a zone abandon that zone
// only; the run itself fails only on bad input or when its context ends.
package placement

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/engine/grid"
	"github.com/KirkDiggler/dungeon-layout/internal/engine/seed"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

// Config holds the defaults for the placement engine
type Config struct {
	// Defaults are used when a request carries no options; zero value uses
	// engine.DefaultOptions
	Defaults *engine.Options
}

// Validate ensures the configured defaults are usable
func (c *Config) Validate() error {
	if c.Defaults == nil {
		return nil
	}
	return c.Defaults.WithDefaults().Validate()
}

// Engine is the placement implementation of engine.Engine
type Engine struct {
	defaults engine.Options
}

// New creates a placement engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	defaults := engine.DefaultOptions()
	if cfg.Defaults != nil {
		defaults = cfg.Defaults.WithDefaults()
	}

	return &Engine{defaults: defaults}, nil
}

var _ engine.Engine = (*Engine)(nil)

type pass struct {
	name string
	run  func(*zoneRun) error
}

// Generate runs the full pipeline for one seed
func (e *Engine) Generate(ctx context.Context, input *engine.GenerateInput) (*engine.GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Seed == "" {
		return nil, errors.InvalidArgument("seed is required")
	}

	opts := e.defaults
	if input.Options != nil {
		opts = input.Options.WithDefaults()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	g, err := grid.Build(input.Zones, grid.WithCellSize(opts.CellSize), grid.WithOrigin(opts.Origin))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build grid")
	}

	r := newRun(ctx, g, seed.NewRand(input.Seed), opts, input.Zones)

	passes := []pass{
		{name: "start", run: r.placeStart},
		{name: "growth", run: r.grow},
		{name: "connectors", run: r.placeConnectors},
		{name: "backfill", run: r.backfill},
		{name: "repair", run: r.repair},
	}
	for _, p := range passes {
		for _, z := range r.zones {
			if z.abandoned() {
				continue
			}
			if err := ctx.Err(); err != nil {
				return nil, contextError(err, p.name)
			}
			if err := p.run(z); err != nil {
				return nil, contextError(err, p.name)
			}
		}
	}

	layout := r.layout(input.Seed)

	slog.Info("Layout generated",
		"seed", input.Seed,
		"zones", len(layout.Reports),
		"rooms", len(layout.Rooms),
		"doors", len(layout.Doors),
	)

	return &engine.GenerateOutput{Layout: layout}, nil
}

func contextError(err error, passName string) error {
	if errors.Is(err, context.Canceled) {
		return errors.WrapWithCodef(err, errors.CodeCanceled, "layout generation canceled during %s pass", passName)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCodef(err, errors.CodeDeadlineExceeded, "layout generation timed out during %s pass", passName)
	}
	return errors.Wrapf(err, "%s pass failed", passName)
}

func (r *run) layout(seedValue string) *entities.Layout {
	reports := make([]entities.ZoneReport, 0, len(r.zones))
	for _, z := range r.zones {
		rep := *z.report
		for _, room := range r.rooms {
			if room.ZoneID == z.zone.ID {
				rep.RoomCount++
			}
		}
		for _, d := range r.doors {
			if d.ZoneID == z.zone.ID {
				rep.DoorCount++
			}
		}
		reports = append(reports, rep)
	}

	zones := make([]entities.Zone, len(r.zones))
	for i, z := range r.zones {
		zones[i] = *z.zone
	}

	return &entities.Layout{
		Seed:       seedValue,
		SeedHash:   seed.Hash(seedValue),
		CellSize:   r.grid.CellSize(),
		Origin:     r.grid.Origin(),
		ZoneStartY: r.grid.ZoneStarts(),
		Zones:      zones,
		Rooms:      r.rooms,
		Doors:      r.doors,
		Reports:    reports,
		Tuning:     r.opts.Tuning(),
	}
}
