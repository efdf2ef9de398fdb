// Package engine defines the layout generation engine boundary
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/dungeon-layout/internal/engine Engine

import (
	"context"
)

// Engine turns a seed and a zone configuration into an abstract layout
type Engine interface {
	// Generate builds the grid and runs every placement pass. Zone level
	// problems are reported in the output, not returned as errors.
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}
