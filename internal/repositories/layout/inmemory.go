package layout

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Expired
// layouts are dropped lazily on read.
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]entry
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// NewInMemory creates a new in-memory repository; a nil clock uses the real one
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]entry),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a layout. Layouts are kept serialized so callers never share
// slices with the store.
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	stored := *input.Layout
	stored.ExpiresAt = r.clock.Now().Add(ttl)

	data, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal layout")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.store[stored.ID]; ok && !r.expired(existing) {
		return nil, errors.AlreadyExistsf("layout %s already exists", stored.ID).
			WithMeta("layout_id", stored.ID)
	}
	r.store[stored.ID] = entry{data: data, expiresAt: stored.ExpiresAt}

	return &CreateOutput{Layout: &stored}, nil
}

// Get retrieves a layout by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.store[input.ID]
	if !ok || r.expired(e) {
		delete(r.store, input.ID)
		return nil, errors.NotFoundf("layout %s not found", input.ID).
			WithMeta("layout_id", input.ID)
	}

	var layout entities.Layout
	if err := json.Unmarshal(e.data, &layout); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal layout")
	}

	return &GetOutput{Layout: &layout}, nil
}

// Delete removes a layout
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.store[input.ID]
	if !ok || r.expired(e) {
		delete(r.store, input.ID)
		return nil, errors.NotFoundf("layout %s not found", input.ID).
			WithMeta("layout_id", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{Deleted: true}, nil
}

func (r *InMemoryRepository) expired(e entry) bool {
	return !r.clock.Now().Before(e.expiresAt)
}
