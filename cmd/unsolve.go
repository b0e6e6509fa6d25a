package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var unsolveCmd = &cobra.Command{
	Use:   "unsolve",
	Short: "Mark every question matching the filters as unsolved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria, err := criteriaFromFlags(cmd)
		if err != nil {
			return err
		}
		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		visible, err := s.tr.Filter(criteria)
		if err != nil {
			return err
		}
		if len(visible) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No questions match.")
			return nil
		}

		ok, err := confirm(cmd, fmt.Sprintf("Mark all %d matching questions as unsolved?", len(visible)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		n, err := s.tr.MarkVisibleUnsolved(cmd.Context(), criteria)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Marked %d question(s) unsolved.\n", n)
		return nil
	},
}

func init() {
	addFilterFlags(unsolveCmd)
	unsolveCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
