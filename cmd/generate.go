package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/abhisek/mathpaper/internal/worksheet"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a printable worksheet with its answer key",
	Long: `Generate a paper and write the worksheet followed by its answer key.

Without --seed the seed is derived from the paper config, so the same config
always yields the same worksheet.`,
	Example: `  mathpaper generate --level Junior --out junior.txt
  mathpaper generate --paper drills.yaml --format json`,
	RunE: runGenerate,
}

func init() {
	addPaperFlags(generateCmd)
	generateCmd.Flags().StringP("out", "o", "", "Output file (default stdout)")
	generateCmd.Flags().String("format", "text", "Output format: text or json")
	generateCmd.Flags().Bool("plain", false, "Disable colors (always on when writing to a file)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: must be text or json", format)
	}

	p, err := buildPreview(cmd.Context(), cmd, true)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	plain, _ := cmd.Flags().GetBool("plain")
	if path, _ := cmd.Flags().GetString("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
		plain = true
	}

	if format == "json" {
		err = writeJSON(w, p)
	} else {
		err = worksheet.Render(w, p, worksheet.Options{Answers: true, Plain: plain})
	}
	if err != nil {
		return fmt.Errorf("write worksheet: %w", err)
	}

	log.Info().
		Str("level", p.Config.Level.String()).
		Int64("seed", p.Seed).
		Int("questions", p.QuestionCount()).
		Msg("worksheet written")
	return nil
}
