package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/config"
	"github.com/KirkDiggler/dungeon-layout/internal/handlers/layout/v1alpha1"
)

var (
	generateConfig string
	generateSeed   string
	generateTTL    int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store a layout on the server",
	Long: `Send the zones of a config file to the server. Examples:

  client generate --config configs/example.yaml
  client generate --config configs/example.yaml --seed azA9 --ttl 3600`,
	RunE: generateLayout,
}

func init() {
	generateCmd.Flags().StringVar(&generateConfig, "config", "configs/example.yaml", "Zone config file")
	generateCmd.Flags().StringVar(&generateSeed, "seed", "", "Seed; overrides the config, empty draws one")
	generateCmd.Flags().Int64Var(&generateTTL, "ttl", 0, "Seconds the layout is kept; 0 uses the server default")
}

func generateLayout(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(generateConfig)
	if err != nil {
		return err
	}

	seedValue := generateSeed
	if seedValue == "" {
		seedValue = cfg.Seed
	}

	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GenerateLayout(ctx, &v1alpha1.GenerateLayoutRequest{
		Seed:       seedValue,
		Zones:      cfg.Zones,
		Options:    &cfg.Options,
		TTLSeconds: generateTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to generate layout: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), resp.Layout)
}
