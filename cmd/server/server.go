package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/dungeon-layout/internal/engine/placement"
	"github.com/KirkDiggler/dungeon-layout/internal/errors"
	"github.com/KirkDiggler/dungeon-layout/internal/handlers/layout/v1alpha1"
	"github.com/KirkDiggler/dungeon-layout/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/clock"
	"github.com/KirkDiggler/dungeon-layout/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-layout/internal/redis"
	layoutrepo "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
)

var (
	grpcPort      int
	store         string
	redisAddr     string
	redisPassword string
	redisDB       int
	layoutTTL     time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the layout gRPC server. Layouts are kept in redis, or in memory for local use.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().StringVar(&store, "store", "redis", "Layout store (redis, memory)")
	serverCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	serverCmd.Flags().StringVar(&redisPassword, "redis-password", "", "Redis password")
	serverCmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database")
	serverCmd.Flags().DurationVar(&layoutTTL, "layout-ttl", layoutrepo.DefaultTTL, "How long stored layouts live")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	clk := clock.New()
	repo, closeRepo, err := newLayoutRepository(ctx, clk)
	if err != nil {
		return err
	}
	defer closeRepo()

	eng, err := placement.New(nil)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	layoutService, err := dungeon.NewOrchestrator(&dungeon.Config{
		Engine:      eng,
		LayoutRepo:  repo,
		IDGenerator: idgen.NewUUID("layout"),
		Clock:       clk,
		DefaultTTL:  layoutTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to create layout service: %w", err)
	}

	layoutHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		LayoutService: layoutService,
	})
	if err != nil {
		return fmt.Errorf("failed to create layout handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer()
	v1alpha1.RegisterLayoutServiceServer(srv, layoutHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", grpcPort, "store", store)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func newGRPCServer() *grpc.Server {
	logger := grpc_logging.LoggerFunc(logFunc)
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(recoverPanic)

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}

// newLayoutRepository builds the configured store and a func that releases it
func newLayoutRepository(ctx context.Context, clk clock.Clock) (layoutrepo.Repository, func(), error) {
	switch store {
	case "memory":
		return layoutrepo.NewInMemory(clk), func() {}, nil
	case "redis":
	default:
		return nil, nil, fmt.Errorf("unknown store %q", store)
	}

	client, err := redis.NewClient(redisAddr, &redis.Options{
		Password: redisPassword,
		DB:       redisDB,
	})
	if err != nil {
		return nil, nil, err
	}
	closeClient := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := redis.Ping(ctx, client); err != nil {
		closeClient()
		return nil, nil, err
	}

	repo, err := layoutrepo.NewRedis(&layoutrepo.RedisConfig{
		Client: client,
		Clock:  clk,
	})
	if err != nil {
		closeClient()
		return nil, nil, err
	}

	return repo, closeClient, nil
}

// logFunc bridges the middleware logger to slog; the level values line up
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}

func recoverPanic(ctx context.Context, p any) error {
	slog.ErrorContext(ctx, "Recovered from panic in gRPC handler", "panic", p)
	return errors.ToGRPCError(errors.Internalf("internal error: %v", p))
}
