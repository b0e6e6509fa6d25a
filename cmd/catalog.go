package cmd

import (
	"fmt"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the question catalog",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the catalog and report suspicious records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		questions, err := catalog.Load(cmd.Context(), cfg.CatalogSource)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		problems := catalog.Lint(questions)
		for _, p := range problems {
			fmt.Fprintln(out, p)
		}
		fmt.Fprintf(out, "%s: %d questions, %d problem(s)\n", cfg.CatalogSource, len(questions), len(problems))
		if len(problems) > 0 {
			return fmt.Errorf("catalog check found %d problem(s)", len(problems))
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
}
