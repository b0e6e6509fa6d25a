package cmd

import (
	"github.com/abhisek/dsatrack/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens a session and launches the TUI. Logs go to the configured
// file only, since anything written to stderr would tear the screen.
func runApp(cmd *cobra.Command) error {
	s, err := openSession(cmd, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(app.Options{Tracker: s.tr})
}
