package clock_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
)

func TestReal_SurvivesJSON(t *testing.T) {
	now := clock.New().Now()
	assert.Equal(t, time.UTC, now.Location())

	raw, err := json.Marshal(now)
	require.NoError(t, err)
	var back time.Time
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, now.Equal(back))
}

func TestFixed(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.Fixed{At: at}
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now())
}
