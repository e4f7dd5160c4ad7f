package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/spf13/cobra"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Answer a generated paper interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildPreview(cmd.Context(), cmd, false)
		if err != nil {
			return err
		}

		s, err := practice.Run(cmd.Context(), p.Config.Title, p.Blocks)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d/%d correct (%d answered) in %s · seed %d\n",
			s.Correct, s.Total, s.Answered, s.Duration.Round(time.Second), p.Seed)
		return nil
	},
}

func init() {
	addPaperFlags(practiceCmd)
}
