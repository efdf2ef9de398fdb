package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
	"github.com/KirkDiggler/dungeon-layout/internal/render"
)

var (
	viewFlags localFlags
	viewFile  string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show a layout in the terminal",
	Long: `Generate a layout from a zone config, or load one saved with
"generate --output json", and browse it in the terminal.`,
	RunE: runView,
}

func init() {
	viewFlags.register(viewCmd)
	viewCmd.Flags().StringVar(&viewFile, "layout", "", "Layout JSON file to show instead of generating")
}

func runView(cmd *cobra.Command, args []string) error {
	layout, err := loadOrGenerate(cmd)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	render.NewViewer(screen, layout).Run()
	return nil
}

func loadOrGenerate(cmd *cobra.Command) (*entities.Layout, error) {
	if viewFile == "" {
		return generateLocal(cmd.Context(), &viewFlags)
	}

	data, err := os.ReadFile(viewFile) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	var layout entities.Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	return &layout, nil
}
