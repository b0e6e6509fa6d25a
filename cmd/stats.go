package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		st := s.tr.Stats(ctx)
		last := "never"
		if d, ok := s.tr.LastVisit(ctx); ok {
			last = d.String()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Total:      %d\n", st.Total)
		fmt.Fprintf(out, "Solved:     %d\n", st.Solved)
		fmt.Fprintf(out, "Progress:   %d%%\n", st.Percent)
		fmt.Fprintf(out, "Streak:     %d day(s)\n", st.Streak)
		fmt.Fprintf(out, "Last visit: %s\n", last)
		return nil
	},
}
