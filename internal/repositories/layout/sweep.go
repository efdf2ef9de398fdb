package layout

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	redisclient "github.com/KirkDiggler/dungeon-layout/internal/redis"
)

// SweepInput configures a scan for corrupt stored layouts
type SweepInput struct {
	// Delete removes corrupt keys; otherwise they are only reported
	Delete bool
}

// SweepOutput reports what a sweep found
type SweepOutput struct {
	Checked int
	Corrupt []string
	Deleted []string
}

// Sweep scans every stored layout and finds entries that no longer decode or
// whose ID does not match their key
func Sweep(ctx context.Context, client redisclient.Client, input SweepInput) (*SweepOutput, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}

	out := &SweepOutput{}
	iter := client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		out.Checked++

		data, err := client.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				// expired between scan and get
				continue
			}
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}

		if reason := corruption(key, data); reason != "" {
			slog.Warn("Corrupt layout entry", "key", key, "reason", reason)
			out.Corrupt = append(out.Corrupt, key)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan layouts")
	}

	if !input.Delete {
		return out, nil
	}

	for _, key := range out.Corrupt {
		if err := client.Del(ctx, key).Err(); err != nil {
			return out, errors.Wrapf(err, "failed to delete %s", key)
		}
		out.Deleted = append(out.Deleted, key)
	}

	slog.Info("Layout sweep complete",
		"checked", out.Checked,
		"corrupt", len(out.Corrupt),
		"deleted", len(out.Deleted),
	)

	return out, nil
}

func corruption(key string, data []byte) string {
	var layout entities.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return "invalid json"
	}
	if layout.ID != strings.TrimPrefix(key, keyPrefix) {
		return "id does not match key"
	}
	return ""
}
