package client

import (
	"bytes"
	"encoding/json"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/dungeon-layout/internal/engine/placement"
	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/handlers/layout/v1alpha1"
	"github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/idgen"
	layoutrepo "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
)

var exampleConfig = filepath.Join("..", "..", "..", "configs", "example.yaml")

// startServer runs a layout server with an in-memory store on a local port
func startServer(t *testing.T) string {
	t.Helper()

	eng, err := placement.New(nil)
	require.NoError(t, err)

	svc, err := dungeon.NewOrchestrator(&dungeon.Config{
		Engine:      eng,
		LayoutRepo:  layoutrepo.NewInMemory(nil),
		IDGenerator: idgen.NewSequential("layout"),
		Clock:       clock.New(),
	})
	require.NoError(t, err)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{LayoutService: svc})
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	v1alpha1.RegisterLayoutServiceServer(srv, handler)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // stopped in cleanup
	}()
	t.Cleanup(srv.Stop)

	return lis.Addr().String()
}

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	ClientCmd.SetOut(&out)
	ClientCmd.SetErr(&bytes.Buffer{})
	ClientCmd.SetArgs(args)
	require.NoError(t, ClientCmd.Execute())
	return out.String()
}

func TestClientCommands(t *testing.T) {
	addr := startServer(t)

	var generated entities.Layout
	out := run(t, "generate", "--server", addr, "--config", exampleConfig, "--seed", "azA9")
	require.NoError(t, json.Unmarshal([]byte(out), &generated))
	assert.Equal(t, "layout_1", generated.ID)
	assert.Equal(t, "azA9", generated.Seed)
	assert.Len(t, generated.Reports, 2)

	var fetched entities.Layout
	out = run(t, "get", "--server", addr, generated.ID)
	require.NoError(t, json.Unmarshal([]byte(out), &fetched))
	assert.Equal(t, generated.Rooms, fetched.Rooms)

	var regenerated entities.Layout
	out = run(t, "regenerate", "--server", addr, generated.ID)
	require.NoError(t, json.Unmarshal([]byte(out), &regenerated))
	assert.Equal(t, "layout_2", regenerated.ID)
	assert.Equal(t, generated.Rooms, regenerated.Rooms)
	assert.Equal(t, generated.Doors, regenerated.Doors)

	out = run(t, "delete", "--server", addr, generated.ID)
	assert.Contains(t, out, "Deleted layout_1: true")
}

func TestGetCommand_NotFound(t *testing.T) {
	addr := startServer(t)

	ClientCmd.SetOut(&bytes.Buffer{})
	ClientCmd.SetErr(&bytes.Buffer{})
	ClientCmd.SetArgs([]string{"get", "--server", addr, "layout_missing"})
	err := ClientCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}
