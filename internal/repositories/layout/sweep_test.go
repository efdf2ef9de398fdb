package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/testutils"
)

func TestSweep(t *testing.T) {
	ctx := context.Background()
	client, mr := testutils.CreateTestRedis(t)

	repo, err := layout.NewRedis(&layout.RedisConfig{Client: client, Clock: clock.New()})
	require.NoError(t, err)
	_, err = repo.Create(ctx, layout.CreateInput{Layout: testutils.CreateTestLayout("layout_good")})
	require.NoError(t, err)

	require.NoError(t, mr.Set("layout:layout_bad", "{not json"))
	require.NoError(t, mr.Set("layout:layout_moved", `{"id":"layout_other"}`))
	require.NoError(t, mr.Set("session:unrelated", "{not json"))

	out, err := layout.Sweep(ctx, client, layout.SweepInput{})
	require.NoError(t, err)
	assert.Equal(t, 3, out.Checked)
	assert.ElementsMatch(t, []string{"layout:layout_bad", "layout:layout_moved"}, out.Corrupt)
	assert.Empty(t, out.Deleted)
	assert.True(t, mr.Exists("layout:layout_bad"))

	out, err = layout.Sweep(ctx, client, layout.SweepInput{Delete: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, out.Corrupt, out.Deleted)
	assert.False(t, mr.Exists("layout:layout_bad"))
	assert.False(t, mr.Exists("layout:layout_moved"))
	assert.True(t, mr.Exists("layout:layout_good"))
	assert.True(t, mr.Exists("session:unrelated"))
}

func TestSweep_RequiresClient(t *testing.T) {
	_, err := layout.Sweep(context.Background(), nil, layout.SweepInput{})
	assert.True(t, errors.IsInvalidArgument(err))
}
