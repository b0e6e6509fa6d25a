package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>...",
	Short: "Flip the solved state of one or more questions",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIDs(args)
		if err != nil {
			return err
		}
		s, err := openCatalogSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		for _, id := range ids {
			if _, ok := s.tr.Lookup(id); !ok {
				return fmt.Errorf("unknown question id %d", id)
			}
		}

		out := cmd.OutOrStdout()
		for _, id := range ids {
			solved, err := s.tr.Toggle(cmd.Context(), id)
			if err != nil {
				return err
			}
			q, _ := s.tr.Lookup(id)
			state := "unsolved"
			if solved {
				state = "solved"
			}
			fmt.Fprintf(out, "%5d  %-8s  %s\n", id, state, q.Name)
		}
		return nil
	},
}

func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid question id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
