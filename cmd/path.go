package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show topics in catalog order with sub-topic progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		next, hasNext := s.tr.SuggestedNext()
		if hasNext {
			fmt.Fprintf(out, "Suggested next: %s\n\n", next.Topic)
		} else {
			fmt.Fprint(out, "All topics complete.\n\n")
		}

		for _, agg := range s.tr.Path() {
			badge := "  "
			switch {
			case agg.Complete():
				badge = " ✓"
			case hasNext && agg.Topic == next.Topic:
				badge = " *"
			}
			fmt.Fprintf(out, "%-30s%s  %d/%d  %3d%%\n", agg.Topic, badge, agg.Solved, agg.Total, agg.Percent)
			for _, sub := range agg.SubTopics {
				fmt.Fprintf(out, "    %-28s  %d/%d  %3d%%\n", sub.SubTopic, sub.Solved, sub.Total, sub.Percent)
			}
		}
		return nil
	},
}
