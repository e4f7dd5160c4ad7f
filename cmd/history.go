package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathpaper/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled papers",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		level, _ := cmd.Flags().GetString("level")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		recs, err := s.Previews().List(cmd.Context(), store.QueryOpts{Limit: limit, Level: level})
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(recs) == 0 {
			fmt.Fprintln(out, "No papers journaled yet.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-36s  %-14s  %-10s  %-4s  %s\n",
			"Seq", "Timestamp", "Preview", "Level", "Seed", "Qs", "Engine")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, r := range recs {
			fmt.Fprintf(out, "%-5d  %-19s  %-36s  %-14s  %-10d  %-4d  %s\n",
				r.Sequence,
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.PreviewID,
				r.Level,
				r.Seed,
				r.QuestionCount,
				r.EngineVersion,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of entries (0 = all)")
	historyCmd.Flags().String("level", "", "Only show papers of this level")
}
