package cmd

import (
	"fmt"

	"github.com/abhisek/dsatrack/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write progress to an Excel workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		report := export.Report{
			Questions: s.tr.Questions(),
			Solved:    s.tr,
			Path:      s.tr.Path(),
			Stats:     s.tr.Stats(ctx),
		}
		if d, ok := s.tr.LastVisit(ctx); ok {
			report.LastVisit = d.String()
		}

		if err := export.WriteFile(output, report); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "dsatrack.xlsx", "Workbook path")
}
