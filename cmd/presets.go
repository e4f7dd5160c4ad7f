package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [level]",
	Short: "List preset levels, or the blocks of one level",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			fmt.Fprintf(out, "%-16s  %-6s  %s\n", "Level", "Blocks", "Questions")
			fmt.Fprintln(out, strings.Repeat("─", 36))
			for _, l := range paper.Levels() {
				if l == paper.LevelCustom {
					continue
				}
				blocks, err := paper.PresetBlocks(l)
				if err != nil {
					return err
				}
				total := 0
				for _, b := range blocks {
					total += problemgen.ExpectedCount(b)
				}
				fmt.Fprintf(out, "%-16s  %-6d  %d\n", l, len(blocks), total)
			}
			return nil
		}

		level, err := paper.ParseLevel(args[0])
		if err != nil {
			return err
		}
		blocks, err := paper.PresetBlocks(level)
		if err != nil {
			return err
		}
		if len(blocks) == 0 {
			fmt.Fprintf(out, "Level %s has no preset blocks.\n", level)
			return nil
		}

		fmt.Fprintf(out, "%s\n\n", level)
		fmt.Fprintf(out, "%-8s  %-36s  %-5s  %s\n", "Block", "Type", "Count", "Constraints")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, b := range blocks {
			c, err := json.Marshal(b.Constraints)
			if err != nil {
				return fmt.Errorf("encode constraints: %w", err)
			}
			fmt.Fprintf(out, "%-8s  %-36s  %-5d  %s\n", b.ID, b.Type, b.Count, c)
		}
		return nil
	},
}
