package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show completion per topic, sorted by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		for _, t := range s.tr.Map() {
			fmt.Fprintf(out, "%-30s  %s  %d/%d  %3d%%\n", t.Topic, bar(t.Percent, 20), t.Solved, t.Total, t.Percent)
		}
		return nil
	},
}

// bar renders percent as a fixed-width text bar.
func bar(percent, width int) string {
	filled := width * percent / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	b := make([]rune, width)
	for i := range b {
		b[i] = '░'
		if i < filled {
			b[i] = '█'
		}
	}
	return string(b)
}
