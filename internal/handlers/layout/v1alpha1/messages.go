package v1alpha1

import (
	"github.com/KirkDiggler/dungeon-layout/internal/engine"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

// GenerateLayoutRequest asks for a new layout. An empty seed draws a random one.
type GenerateLayoutRequest struct {
	Seed       string          `json:"seed,omitempty"`
	Zones      []entities.Zone `json:"zones"`
	Options    *engine.Options `json:"options,omitempty"`
	TTLSeconds int64           `json:"ttl_seconds,omitempty"`
}

// GenerateLayoutResponse carries the stored layout
type GenerateLayoutResponse struct {
	Layout *entities.Layout `json:"layout"`
}

// GetLayoutRequest identifies a stored layout
type GetLayoutRequest struct {
	LayoutID string `json:"layout_id"`
}

// GetLayoutResponse carries the stored layout
type GetLayoutResponse struct {
	Layout *entities.Layout `json:"layout"`
}

// RegenerateLayoutRequest rebuilds a stored layout. NewSeed and FreshSeed are
// mutually exclusive; with neither the stored seed is reused.
type RegenerateLayoutRequest struct {
	LayoutID   string          `json:"layout_id"`
	NewSeed    string          `json:"new_seed,omitempty"`
	FreshSeed  bool            `json:"fresh_seed,omitempty"`
	Options    *engine.Options `json:"options,omitempty"`
	TTLSeconds int64           `json:"ttl_seconds,omitempty"`
}

// RegenerateLayoutResponse carries the new layout and the ID it replaced
type RegenerateLayoutResponse struct {
	Layout     *entities.Layout `json:"layout"`
	PreviousID string           `json:"previous_id"`
}

// DeleteLayoutRequest identifies a stored layout
type DeleteLayoutRequest struct {
	LayoutID string `json:"layout_id"`
}

// DeleteLayoutResponse reports whether anything was removed
type DeleteLayoutResponse struct {
	Deleted bool `json:"deleted"`
}
