package engine_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

func TestOptions_PartialJSONKeepsDefaults(t *testing.T) {
	var opts engine.Options
	require.NoError(t, json.Unmarshal([]byte(`{"cell_size": 4}`), &opts))

	assert.Equal(t, 4.0, opts.CellSize)
	assert.Equal(t, engine.DefaultDeadEndChance, opts.DeadEndChance)
	assert.Equal(t, engine.DefaultRequiredBias, opts.RequiredBias)
	assert.Equal(t, engine.DefaultMaxPlacementAttempts, opts.MaxPlacementAttempts)
	assert.Equal(t, engine.DefaultTimeout, opts.Timeout)
}

func TestOptions_ExplicitZeroChanceStays(t *testing.T) {
	var opts engine.Options
	require.NoError(t, json.Unmarshal([]byte(`{"dead_end_chance": 0, "required_bias": 0}`), &opts))

	assert.Zero(t, opts.DeadEndChance)
	assert.Zero(t, opts.RequiredBias)
	assert.Equal(t, engine.DefaultCellSize, opts.CellSize)
}

func TestOptions_PointerField(t *testing.T) {
	var req struct {
		Options *engine.Options `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"options": {"max_start_attempts": 3}}`), &req))
	require.NotNil(t, req.Options)
	assert.Equal(t, 3, req.Options.MaxStartAttempts)
	assert.Equal(t, engine.DefaultRequiredBias, req.Options.RequiredBias)
}

func TestOptions_WithDefaultsAndValidate(t *testing.T) {
	opts := engine.Options{DeadEndChance: 0.2}.WithDefaults()
	assert.Equal(t, 0.2, opts.DeadEndChance)
	assert.Zero(t, opts.RequiredBias)
	assert.Equal(t, engine.DefaultMaxStartAttempts, opts.MaxStartAttempts)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.NoError(t, opts.Validate())

	bad := engine.DefaultOptions()
	bad.DeadEndChance = 1.5
	bad.CellSize = -1
	err := bad.Validate()
	assert.True(t, errors.IsInvalidArgument(err))
	assert.ErrorContains(t, err, "dead_end_chance")
	assert.ErrorContains(t, err, "cell_size")
}

func TestOptionsFromLayout(t *testing.T) {
	assert.Nil(t, engine.OptionsFromLayout(nil))
	assert.Nil(t, engine.OptionsFromLayout(&entities.Layout{}))

	opts := engine.DefaultOptions()
	opts.DeadEndChance = 0
	opts.CellSize = 3
	opts.Origin = entities.Vec3{X: 1}

	layout := &entities.Layout{CellSize: opts.CellSize, Origin: opts.Origin, Tuning: opts.Tuning()}
	back := engine.OptionsFromLayout(layout)
	require.NotNil(t, back)
	assert.Equal(t, opts, *back)
}
