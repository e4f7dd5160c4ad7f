package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/store"
	"github.com/abhisek/mathpaper/internal/worksheet"
	"github.com/spf13/cobra"
)

// addPaperFlags registers the flags that pick a paper and its seed.
func addPaperFlags(cmd *cobra.Command) {
	cmd.Flags().String("level", "", "Preset level, e.g. Junior, AB-3, Vedic-Level-2")
	cmd.Flags().String("paper", "", "Paper file (YAML or JSON)")
	cmd.Flags().Int64("seed", 0, "Seed for question generation")
	cmd.MarkFlagsMutuallyExclusive("level", "paper")
	cmd.MarkFlagsOneRequired("level", "paper")
}

// paperConfig returns the unresolved config named by --level or --paper.
func paperConfig(cmd *cobra.Command) (paper.PaperConfig, error) {
	if path, _ := cmd.Flags().GetString("paper"); path != "" {
		return paper.LoadFile(path)
	}
	val, _ := cmd.Flags().GetString("level")
	level, err := paper.ParseLevel(val)
	if err != nil {
		return paper.PaperConfig{}, err
	}
	return paper.ForLevel(level), nil
}

// seedFor returns --seed when given. Otherwise the seed is derived from the
// config when derive is set, or drawn at random.
func seedFor(cmd *cobra.Command, pc paper.PaperConfig, derive bool) (int64, error) {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		return seed, nil
	}
	if !derive {
		return paper.RandomSeed(), nil
	}
	resolved, err := paper.Resolve(pc)
	if err != nil {
		return 0, err
	}
	return paper.DeriveSeed(resolved)
}

func buildPreview(ctx context.Context, cmd *cobra.Command, derive bool) (*paper.Preview, error) {
	pc, err := paperConfig(cmd)
	if err != nil {
		return nil, err
	}
	seed, err := seedFor(cmd, pc, derive)
	if err != nil {
		return nil, err
	}
	return paper.NewPreview(ctx, pc, seed, generateOptions())
}

func generateOptions() paper.Options {
	return paper.Options{Concurrency: cfg.Concurrency, Logger: log}
}

// recordOf converts a preview into its journal entry.
func recordOf(p *paper.Preview) (*store.PreviewRecord, error) {
	raw, err := json.Marshal(p.Config)
	if err != nil {
		return nil, fmt.Errorf("encode paper config: %w", err)
	}
	return &store.PreviewRecord{
		PreviewID:     p.ID,
		Level:         p.Config.Level.String(),
		Title:         p.Config.Title,
		Seed:          p.Seed,
		EngineVersion: p.EngineVersion,
		QuestionCount: p.QuestionCount(),
		Config:        raw,
	}, nil
}

// journal appends p and trims the journal to the configured limit.
func journal(ctx context.Context, cmd *cobra.Command, p *paper.Preview) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	rec, err := recordOf(p)
	if err != nil {
		return err
	}
	if err := s.Previews().Append(ctx, rec); err != nil {
		return fmt.Errorf("journal preview: %w", err)
	}

	if cfg.JournalLimit > 0 {
		n, err := s.Previews().Prune(ctx, cfg.JournalLimit)
		if err != nil {
			return fmt.Errorf("prune journal: %w", err)
		}
		if n > 0 {
			log.Debug().Int64("removed", n).Int("keep", cfg.JournalLimit).Msg("journal pruned")
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printPreview writes p as JSON or as a worksheet followed by its seed and
// preview ID.
func printPreview(cmd *cobra.Command, p *paper.Preview) error {
	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, p)
	}

	answers, _ := cmd.Flags().GetBool("answers")
	plain, _ := cmd.Flags().GetBool("plain")
	if err := worksheet.Render(out, p, worksheet.Options{Answers: answers, Plain: plain}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "\nSeed: %d\nPreview: %s\n", p.Seed, p.ID)
	return err
}

func addPrintFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("answers", false, "Append the answer key")
	cmd.Flags().Bool("plain", false, "Disable colors")
	cmd.Flags().Bool("json", false, "Print the paper as JSON")
}
