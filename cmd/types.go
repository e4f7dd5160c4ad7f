package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/problemgen"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List every question type",
	RunE: func(cmd *cobra.Command, args []string) error {
		family, _ := cmd.Flags().GetString("family")
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-36s  %-16s  %-5s  %s\n", "Type", "Family", "Level", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, t := range problemgen.AllTypes() {
			if family != "" && string(t.Family()) != family {
				continue
			}
			level := "-"
			if n := t.Level(); n > 0 {
				level = fmt.Sprint(n)
			}
			fmt.Fprintf(out, "%-36s  %-16s  %-5s  %s\n", t, t.Family(), level, paper.TypeTitle(t))
		}
		return nil
	},
}

func init() {
	typesCmd.Flags().String("family", "", "Only list one family: chained, multiply_divide, roots, number_theory, junior, vedic")
}
