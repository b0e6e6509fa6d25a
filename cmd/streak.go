package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the daily visit streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		last := "never"
		if d, ok := s.tr.LastVisit(ctx); ok {
			last = d.String()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Streak: %d day(s), last visit %s\n", s.tr.Streak(ctx), last)
		return nil
	},
}

var streakResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Set the streak back to zero",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.Close()

		ok, err := confirm(cmd, "Reset your streak to 0?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
		if err := s.tr.ResetStreak(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Streak reset.")
		return nil
	},
}

func init() {
	streakResetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	streakCmd.AddCommand(streakResetCmd)
}
