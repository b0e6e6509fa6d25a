package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics, or the sub-topics of one topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")

		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		names := s.tr.Topics()
		if topic != "" {
			names = s.tr.SubTopics(topic)
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().String("topic", "", "Show the sub-topics of this topic")
}
