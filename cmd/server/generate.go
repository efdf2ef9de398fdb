package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dungeon-layout/internal/entities"
)

var (
	generateFlags  localFlags
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a layout from a zone config",
	Long: `Generate a layout locally and print it. The same config and seed always
produce the same layout.

  dungeon-layout generate --config configs/example.yaml --seed azA9
  dungeon-layout generate --seed-file .seed --output json`,
	RunE: runGenerate,
}

func init() {
	generateFlags.register(generateCmd)
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "summary", "Output format (summary, json)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generateOutput != "summary" && generateOutput != "json" {
		return fmt.Errorf("invalid output format %q", generateOutput)
	}

	layout, err := generateLocal(cmd.Context(), &generateFlags)
	if err != nil {
		return err
	}

	if generateOutput == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(layout)
	}

	writeSummary(cmd.OutOrStdout(), layout)
	return nil
}

// writeSummary prints one block per zone
func writeSummary(w io.Writer, l *entities.Layout) {
	fmt.Fprintf(w, "Layout %s (seed %s, hash %d)\n", l.ID, l.Seed, l.SeedHash)
	fmt.Fprintf(w, "%d rooms, %d doors\n", len(l.Rooms), len(l.Doors))

	for _, z := range l.Zones {
		name := z.Name
		if name == "" {
			name = fmt.Sprintf("zone %d", z.ID)
		}
		fmt.Fprintf(w, "\n%s [%d] %dx%d at y=%d\n", name, z.ID, z.Width, z.Height, l.ZoneStartY[z.ID])

		rep := l.Report(z.ID)
		if rep == nil {
			continue
		}
		fmt.Fprintf(w, "  state:  %s\n", rep.State)
		if rep.StartPosition != nil {
			fmt.Fprintf(w, "  start:  %s\n", rep.StartPosition)
		}
		fmt.Fprintf(w, "  rooms:  %d\n", rep.RoomCount)
		fmt.Fprintf(w, "  doors:  %d\n", rep.DoorCount)
		if len(rep.MissingRequired) > 0 {
			fmt.Fprintf(w, "  missing required: %s\n", strings.Join(rep.MissingRequired, ", "))
		}
		for _, p := range rep.Problems {
			fmt.Fprintf(w, "  problem: %s\n", p)
		}
	}
}
