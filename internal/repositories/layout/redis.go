package layout

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-layout/internal/redis"
)

// Key pattern: layout:{id}
const keyPrefix = "layout:"

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis backed layout repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a layout with SETNX so an existing ID is never overwritten
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
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

	ok, err := r.client.SetNX(ctx, buildKey(stored.ID), data, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store layout in Redis")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("layout %s already exists", stored.ID).
			WithMeta("layout_id", stored.ID)
	}

	return &CreateOutput{Layout: &stored}, nil
}

// Get retrieves a layout by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("layout %s not found", input.ID).
				WithMeta("layout_id", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get layout from Redis")
	}

	var layout entities.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal layout")
	}

	return &GetOutput{Layout: &layout}, nil
}

// Delete removes a layout
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	removed, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete layout from Redis")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("layout %s not found", input.ID).
			WithMeta("layout_id", input.ID)
	}

	return &DeleteOutput{Deleted: true}, nil
}

func buildKey(id string) string {
	return keyPrefix + id
}
