package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/handlers/layout/v1alpha1"
)

var getCmd = &cobra.Command{
	Use:   "get [layout-id]",
	Short: "Fetch a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  getLayout,
}

func getLayout(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.GetLayout(ctx, &v1alpha1.GetLayoutRequest{LayoutID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get layout: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), resp.Layout)
}
