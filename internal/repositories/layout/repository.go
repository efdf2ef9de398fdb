// Package layout provides the repository interface and implementations for
// generated layouts
package layout

import (
	"context"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=layoutmock github.com/KirkDiggler/dungeon-layout/internal/repositories/layout Repository

// DefaultTTL is used when a create request carries no TTL
const DefaultTTL = 24 * time.Hour

// CreateInput contains parameters for storing a layout
type CreateInput struct {
	Layout *entities.Layout
	TTL    time.Duration // How long the layout should live; zero uses DefaultTTL
}

// CreateOutput contains the stored layout with ExpiresAt set
type CreateOutput struct {
	Layout *entities.Layout
}

// GetInput contains parameters for retrieving a layout
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved layout
type GetOutput struct {
	Layout *entities.Layout
}

// DeleteInput contains parameters for deleting a layout
type DeleteInput struct {
	ID string
}

// DeleteOutput reports whether a layout was removed
type DeleteOutput struct {
	Deleted bool
}

// Repository defines the storage operations for layouts
type Repository interface {
	// Create stores a new layout; the ID must be set and unused
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a layout by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a layout
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errLayoutNil = "layout cannot be nil"
	errIDEmpty   = "layout ID cannot be empty"
)

func validateCreate(input CreateInput) error {
	if input.Layout == nil {
		return errors.InvalidArgument(errLayoutNil)
	}
	if input.Layout.ID == "" {
		return errors.InvalidArgument(errIDEmpty)
	}
	if input.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}
