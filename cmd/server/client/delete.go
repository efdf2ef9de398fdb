package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/handlers/layout/v1alpha1"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [layout-id]",
	Short: "Delete a stored layout",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteLayout,
}

func deleteLayout(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createLayoutClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := client.DeleteLayout(ctx, &v1alpha1.DeleteLayoutRequest{LayoutID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to delete layout: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s: %t\n", args[0], resp.Deleted)
	return nil
}
