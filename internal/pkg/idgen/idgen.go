// Package idgen hands out layout identifiers
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/dungeon-layout/internal/pkg/idgen Generator

// Generator returns a new unique identifier on every call
type Generator interface {
	Generate() string
}

// SequentialGenerator yields prefix_1, prefix_2, ... and is safe for
// concurrent use. Local runs and tests use it for readable ids.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

func (g *SequentialGenerator) Generate() string {
	return withPrefix(g.prefix, strconv.FormatUint(g.counter.Add(1), 10))
}

// UUIDGenerator yields prefix_<uuid v4>. The server stores layouts under
// these ids.
type UUIDGenerator struct {
	prefix string
}

func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	return withPrefix(g.prefix, uuid.NewString())
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
