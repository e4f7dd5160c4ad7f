package cmd

import (
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Generate a paper, print it and record it in the journal",
	Long: `Generate a paper from a level preset or a paper file and print it.

Without --seed a random seed is drawn. The seed and preview ID are printed
with the paper, and the paper is recorded in the journal so it can be
regenerated later with "mathpaper replay".`,
	Example: `  mathpaper preview --level AB-3
  mathpaper preview --paper drills.yaml --seed 42 --answers`,
	RunE: runPreview,
}

func init() {
	addPaperFlags(previewCmd)
	addPrintFlags(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	p, err := buildPreview(ctx, cmd, false)
	if err != nil {
		return err
	}
	if err := journal(ctx, cmd, p); err != nil {
		return err
	}
	log.Info().
		Str("preview", p.ID).
		Str("level", p.Config.Level.String()).
		Int64("seed", p.Seed).
		Int("questions", p.QuestionCount()).
		Msg("preview journaled")

	return printPreview(cmd, p)
}
