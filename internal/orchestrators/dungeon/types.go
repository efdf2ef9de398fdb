package dungeon

import (
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// GenerateLayoutInput defines the request for generating a layout
type GenerateLayoutInput struct {
	// Seed is used as given; empty draws a fresh four symbol seed
	Seed    string
	Zones   []entities.Zone
	Options *engine.Options
	TTL     time.Duration // How long the stored layout should live
}

// GenerateLayoutOutput defines the response for generating a layout
type GenerateLayoutOutput struct {
	Layout *entities.Layout
}

// GetLayoutInput defines the request for getting a layout
type GetLayoutInput struct {
	LayoutID string
}

// GetLayoutOutput defines the response for getting a layout
type GetLayoutOutput struct {
	Layout *entities.Layout
}

// RegenerateLayoutInput defines the request for regenerating a stored layout
type RegenerateLayoutInput struct {
	LayoutID string

	// NewSeed replaces the stored seed when set
	NewSeed string

	// FreshSeed draws a random seed instead of reusing the stored one
	FreshSeed bool

	// Options overrides the tuning stored with the layout when set
	Options *engine.Options
	TTL     time.Duration
}

// RegenerateLayoutOutput defines the response for regenerating a layout
type RegenerateLayoutOutput struct {
	Layout     *entities.Layout
	PreviousID string
}

// DeleteLayoutInput defines the request for deleting a layout
type DeleteLayoutInput struct {
	LayoutID string
}

// DeleteLayoutOutput defines the response for deleting a layout
type DeleteLayoutOutput struct {
	Deleted bool
}
