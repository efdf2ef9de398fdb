// Package seed resolves, hashes and persists layout seeds
package seed

import (
	"math/rand"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

const (
	// Alphabet is the symbol set for generated seeds
	Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Length is the number of symbols in a generated seed
	Length = 4
)

// SymbolRoller returns a value in [1, size]
type SymbolRoller func(size int) (int, error)

// ToolkitRoller rolls a single die of the given size with rpg-toolkit
func ToolkitRoller(size int) (int, error) {
	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, errors.Wrap(err, "failed to create seed roll")
	}
	return roll.GetValue(), nil
}

// Resolve returns current unchanged, or a freshly generated seed when it is empty.
// A nil roller uses ToolkitRoller. The caller persists the result.
func Resolve(current string, roller SymbolRoller) (string, error) {
	if current != "" {
		return current, nil
	}
	if roller == nil {
		roller = ToolkitRoller
	}

	var sb strings.Builder
	for i := 0; i < Length; i++ {
		v, err := roller(len(Alphabet))
		if err != nil {
			return "", errors.Wrap(err, "failed to roll seed symbol")
		}
		if v < 1 || v > len(Alphabet) {
			return "", errors.Internalf("seed roll %d out of range", v)
		}
		sb.WriteByte(Alphabet[v-1])
	}
	return sb.String(), nil
}

// Hash folds the seed with h = h*31 + c using 32-bit wraparound
func Hash(seed string) int32 {
	var h int32
	for i := 0; i < len(seed); i++ {
		h = h*31 + int32(seed[i])
	}
	return h
}

// NewRand builds the generator owned by a single generation run
func NewRand(seed string) *rand.Rand {
	return rand.New(rand.NewSource(int64(Hash(seed))))
}

// Load reads a persisted seed. A missing file yields an empty seed.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "failed to read seed file %s", path)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save persists a seed so the next run reproduces the same layout
func Save(path, seed string) error {
	if err := os.WriteFile(path, []byte(seed+"\n"), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write seed file %s", path)
	}
	return nil
}
