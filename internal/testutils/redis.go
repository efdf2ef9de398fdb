// Package testutils holds fixtures and a miniredis helper shared by tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dungeon-layout/internal/redis"
)

// CreateTestRedis creates an in-memory Redis client and returns the server so
// tests can inspect keys and move time forward. Both are closed when the test
// ends.
func CreateTestRedis(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
