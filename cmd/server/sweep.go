package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/redis"
	layoutrepo "github.com/KirkDiggler/dungeon-layout/internal/repositories/layout"
)

var sweepDelete bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Find corrupt layouts in redis",
	Long: `Scan stored layouts for entries that no longer decode. Nothing is removed
unless --delete is given.`,
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address")
	sweepCmd.Flags().StringVar(&redisPassword, "redis-password", "", "Redis password")
	sweepCmd.Flags().IntVar(&redisDB, "redis-db", 0, "Redis database")
	sweepCmd.Flags().BoolVar(&sweepDelete, "delete", false, "Delete the corrupt entries")
}

func runSweep(cmd *cobra.Command, args []string) error {
	client, err := redis.NewClient(redisAddr, &redis.Options{
		Password: redisPassword,
		DB:       redisDB,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if err := redis.Ping(cmd.Context(), client); err != nil {
		return err
	}

	out, err := layoutrepo.Sweep(cmd.Context(), client, layoutrepo.SweepInput{Delete: sweepDelete})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Checked %d layouts, found %d corrupt\n", out.Checked, len(out.Corrupt))
	for _, key := range out.Corrupt {
		fmt.Fprintf(w, "  - %s\n", key)
	}
	if len(out.Deleted) > 0 {
		fmt.Fprintf(w, "Deleted %d entries\n", len(out.Deleted))
	}
	return nil
}
