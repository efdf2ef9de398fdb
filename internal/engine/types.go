package engine

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

// Generation defaults
const (
	DefaultDeadEndChance        = 0.15
	DefaultRequiredBias         = 0.5
	DefaultMaxPlacementAttempts = 20
	DefaultMaxStartAttempts     = 32
	DefaultCellSize             = 1.0
	DefaultTimeout              = 5 * time.Second
)

// Options tunes the placement passes
type Options struct {
	// DeadEndChance is the probability a branch first tries single-entrance rooms
	DeadEndChance float64 `json:"dead_end_chance" yaml:"dead_end_chance"`

	// RequiredBias is the probability the candidate pool is narrowed to
	// unplaced required rooms when any of them fit
	RequiredBias float64 `json:"required_bias" yaml:"required_bias"`

	MaxPlacementAttempts int           `json:"max_placement_attempts" yaml:"max_placement_attempts"`
	MaxStartAttempts     int           `json:"max_start_attempts" yaml:"max_start_attempts"`
	CellSize             float64       `json:"cell_size" yaml:"cell_size"`
	Origin               entities.Vec3 `json:"origin" yaml:"origin"`

	// Timeout bounds total wall time of one run; zero means DefaultTimeout
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultOptions returns the stock tuning
func DefaultOptions() Options {
	return Options{
		DeadEndChance:        DefaultDeadEndChance,
		RequiredBias:         DefaultRequiredBias,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
		MaxStartAttempts:     DefaultMaxStartAttempts,
		CellSize:             DefaultCellSize,
		Timeout:              DefaultTimeout,
	}
}

// UnmarshalJSON starts from DefaultOptions so a partial object only overrides
// the fields it names. An explicit zero chance stays zero.
func (o *Options) UnmarshalJSON(data []byte) error {
	type plain Options
	p := plain(DefaultOptions())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*o = Options(p)
	return nil
}

// WithDefaults fills zero counts, sizes and timeout with defaults. The two
// chances are left alone since zero is a meaningful setting for them.
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	if o.MaxPlacementAttempts == 0 {
		o.MaxPlacementAttempts = def.MaxPlacementAttempts
	}
	if o.MaxStartAttempts == 0 {
		o.MaxStartAttempts = def.MaxStartAttempts
	}
	if o.CellSize == 0 {
		o.CellSize = def.CellSize
	}
	if o.Timeout == 0 {
		o.Timeout = def.Timeout
	}
	return o
}

// Tuning returns the part of o a layout records
func (o Options) Tuning() *entities.Tuning {
	return &entities.Tuning{
		DeadEndChance:        o.DeadEndChance,
		RequiredBias:         o.RequiredBias,
		MaxPlacementAttempts: o.MaxPlacementAttempts,
		MaxStartAttempts:     o.MaxStartAttempts,
		Timeout:              o.Timeout,
	}
}

// OptionsFromLayout rebuilds the options a stored layout was generated with.
// It returns nil when the layout carries no tuning.
func OptionsFromLayout(l *entities.Layout) *Options {
	if l == nil || l.Tuning == nil {
		return nil
	}
	return &Options{
		DeadEndChance:        l.Tuning.DeadEndChance,
		RequiredBias:         l.Tuning.RequiredBias,
		MaxPlacementAttempts: l.Tuning.MaxPlacementAttempts,
		MaxStartAttempts:     l.Tuning.MaxStartAttempts,
		CellSize:             l.CellSize,
		Origin:               l.Origin,
		Timeout:              l.Tuning.Timeout,
	}
}

// Validate checks option ranges
func (o Options) Validate() error {
	vb := errors.NewValidationBuilder()

	if o.DeadEndChance < 0 || o.DeadEndChance > 1 {
		vb.Field("dead_end_chance", "must be between 0 and 1")
	}
	if o.RequiredBias < 0 || o.RequiredBias > 1 {
		vb.Field("required_bias", "must be between 0 and 1")
	}
	if o.MaxPlacementAttempts < 1 {
		vb.Field("max_placement_attempts", "must be at least 1")
	}
	if o.MaxStartAttempts < 1 {
		vb.Field("max_start_attempts", "must be at least 1")
	}
	if o.CellSize <= 0 {
		vb.Field("cell_size", "must be positive")
	}
	if o.Timeout < 0 {
		vb.Field("timeout", "must not be negative")
	}

	return vb.Build()
}

// GenerateInput contains one generation request
type GenerateInput struct {
	Seed  string
	Zones []entities.Zone

	// Options overrides the engine defaults when set
	Options *Options
}

// GenerateOutput contains the emitted layout. ID and timestamps are left to
// the caller.
type GenerateOutput struct {
	Layout *entities.Layout
}
