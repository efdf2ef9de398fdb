package seed_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/engine/seed"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

func TestResolve_KeepsExistingSeed(t *testing.T) {
	called := false
	got, err := seed.Resolve("abcd", func(int) (int, error) {
		called = true
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abcd", got)
	assert.False(t, called, "roller must not be used for an existing seed")
}

func TestResolve_GeneratesFromRoller(t *testing.T) {
	rolls := []int{1, 26, 27, 62}
	i := 0
	got, err := seed.Resolve("", func(size int) (int, error) {
		assert.Equal(t, len(seed.Alphabet), size)
		v := rolls[i]
		i++
		return v, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "azA9", got)
}

func TestResolve_RollerErrors(t *testing.T) {
	_, err := seed.Resolve("", func(int) (int, error) {
		return 0, errors.Unavailable("no dice")
	})
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))

	_, err = seed.Resolve("", func(int) (int, error) { return 63, nil })
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}

func TestResolve_ToolkitRoller(t *testing.T) {
	got, err := seed.Resolve("", nil)
	require.NoError(t, err)
	require.Len(t, got, seed.Length)
	for _, c := range got {
		assert.True(t, strings.ContainsRune(seed.Alphabet, c), "unexpected symbol %q", c)
	}
}

func TestHash(t *testing.T) {
	testCases := []struct {
		name     string
		seed     string
		expected int32
	}{
		{name: "empty", seed: "", expected: 0},
		{name: "single char", seed: "a", expected: 97},
		{name: "two chars", seed: "ab", expected: 97*31 + 98},
		{name: "test", seed: "test", expected: 3556498},
		// "polygenelubricants" is a well known string whose 31-hash is MinInt32
		{name: "wraps around", seed: "polygenelubricants", expected: -2147483648},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, seed.Hash(tc.seed))
			assert.Equal(t, seed.Hash(tc.seed), seed.Hash(tc.seed))
		})
	}
}

func TestNewRand_Reproducible(t *testing.T) {
	a := seed.NewRand("test")
	b := seed.NewRand("test")
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.txt")

	got, err := seed.Load(path)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, seed.Save(path, "Zq42"))

	got, err = seed.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Zq42", got)
}
