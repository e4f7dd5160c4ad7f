package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/abhisek/mathpaper/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

var replayCmd = &cobra.Command{
	Use:   "replay <preview-id|latest>",
	Short: "Regenerate a journaled paper",
	Long: `Regenerate a paper recorded by "mathpaper preview" from its config and seed.

Papers recorded by an engine with a different major version may not match
the original questions; a warning is printed in that case.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	addPrintFlags(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	var rec *store.PreviewRecord
	if args[0] == "latest" {
		rec, err = s.Previews().Latest(ctx)
	} else {
		rec, err = s.Previews().Get(ctx, args[0])
	}
	if err != nil {
		return fmt.Errorf("find preview %q: %w", args[0], err)
	}

	if !sameMajor(rec.EngineVersion, problemgen.EngineVersion) {
		log.Warn().
			Str("recorded", rec.EngineVersion).
			Str("current", problemgen.EngineVersion).
			Msg("preview was generated by a different engine major version; questions may differ")
	}

	var pc paper.PaperConfig
	if err := json.Unmarshal(rec.Config, &pc); err != nil {
		return fmt.Errorf("decode journaled config: %w", err)
	}

	p, err := paper.NewPreview(ctx, pc, rec.Seed, generateOptions())
	if err != nil {
		return err
	}
	p.ID = rec.PreviewID
	p.CreatedAt = rec.Timestamp

	if p.QuestionCount() != rec.QuestionCount {
		log.Warn().
			Int("recorded", rec.QuestionCount).
			Int("replayed", p.QuestionCount()).
			Msg("question count differs from the journal")
	}
	return printPreview(cmd, p)
}

// sameMajor reports whether two engine versions share a major version.
// Invalid versions never match.
func sameMajor(a, b string) bool {
	if !semver.IsValid(a) || !semver.IsValid(b) {
		return false
	}
	return semver.Major(a) == semver.Major(b)
}
