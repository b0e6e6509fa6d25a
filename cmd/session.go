package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/dsatrack/internal/logging"
	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/store"
	"github.com/abhisek/dsatrack/internal/tracker"
	"github.com/spf13/cobra"
)

// session bundles what a command needs once the store and tracker are open.
type session struct {
	st     *store.Store
	tr     *tracker.Tracker
	logOut io.Closer
}

// openSession loads configuration, sets up logging to logw, opens the
// store and starts a tracker session. Opening a session counts as a visit.
func openSession(cmd *cobra.Command, logw io.Writer) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logOut, err := logging.Setup(cfg.Log, logw)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}

	loc, err := cfg.Location()
	if err != nil {
		logOut.Close()
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		logOut.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logOut.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	tr, err := tracker.Open(cmd.Context(), tracker.Options{
		Source:   cfg.CatalogSource,
		KV:       st.KV(),
		Location: loc,
	})
	if err != nil {
		st.Close()
		logOut.Close()
		return nil, err
	}
	return &session{st: st, tr: tr, logOut: logOut}, nil
}

// openCatalogSession is openSession for commands that read the catalog.
// It fails when the catalog could not be loaded.
func openCatalogSession(cmd *cobra.Command) (*session, error) {
	s, err := openSession(cmd, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	if err := s.tr.LoadErr(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() error {
	err := s.st.Close()
	s.logOut.Close()
	return err
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("topic", "", "Only questions in this topic")
	cmd.Flags().String("sub-topic", "", "Only questions in this sub-topic")
	cmd.Flags().String("status", "all", "One of all, solved, unsolved")
	cmd.Flags().String("search", "", "Case-insensitive match on name, topic or sub-topic")
}

func criteriaFromFlags(cmd *cobra.Command) (progress.Criteria, error) {
	topic, _ := cmd.Flags().GetString("topic")
	subTopic, _ := cmd.Flags().GetString("sub-topic")
	rawStatus, _ := cmd.Flags().GetString("status")
	search, _ := cmd.Flags().GetString("search")

	status, err := progress.ParseStatus(rawStatus)
	if err != nil {
		return progress.Criteria{}, err
	}
	return progress.Criteria{
		Topic:    topic,
		SubTopic: subTopic,
		Status:   status,
		Search:   search,
	}, nil
}

// confirm asks a yes/no question on the command's input unless --yes was
// given. Anything but y or yes is a no.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true, nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
