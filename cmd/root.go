package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/mathpaper/internal/config"
	"github.com/abhisek/mathpaper/internal/logger"
	"github.com/abhisek/mathpaper/internal/store"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "mathpaper",
	Short: "Abacus and mental-math worksheet generator",
	Long: `mathpaper generates reproducible abacus and Vedic mental-math worksheets.

Every paper is built from a level preset or a paper file plus a seed. The same
config and seed always produce the same questions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			c.LogLevel = lvl
		}
		cfg = c
		log = logger.Setup(cfg.LogLevel, cfg.LogFormat)
		return nil
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHPAPER_DB env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides MATHPAPER_LOG_LEVEL)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the journal at the path from --db, MATHPAPER_DB or the
// default XDG location.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	flag, _ := cmd.Flags().GetString("db")
	dbPath, err := cfg.ResolveDBPath(flag)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Debug().Str("path", dbPath).Msg("journal opened")
	return s, nil
}
