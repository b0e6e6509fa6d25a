package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions (optionally filtered)",
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

		questions, err := s.tr.Filter(criteria)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%5s  %-3s  %-44s  %s\n", "ID", "", "Name", "Topic")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, q := range questions {
			mark := "[ ]"
			if s.tr.IsSolved(q.ID) {
				mark = "[x]"
			}
			fmt.Fprintf(out, "%5d  %s  %-44s  %s\n", q.ID, mark, truncate(q.Name, 44), q.Tag())
		}
		fmt.Fprintf(out, "\n%d of %d questions\n", len(questions), len(s.tr.Questions()))
		return nil
	},
}

func init() {
	addFilterFlags(listCmd)
}
