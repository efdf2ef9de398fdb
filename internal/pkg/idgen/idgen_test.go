package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("layout")
	assert.Equal(t, "layout_1", g.Generate())
	assert.Equal(t, "layout_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("layout")

	id := g.Generate()
	require.True(t, strings.HasPrefix(id, "layout_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "layout_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, g.Generate())
}
