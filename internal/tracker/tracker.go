// Package tracker holds the state of one dsatrack session: the catalog
// loaded at startup, the solved set, and the streak. Presentation layers
// talk to a Tracker instead of package-level state.
package tracker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/solved"
	"github.com/abhisek/dsatrack/internal/store"
	"github.com/abhisek/dsatrack/internal/streak"
)

// Options configures Open.
type Options struct {
	// Source is the catalog location: "builtin", a file path or an http(s) URL.
	Source string

	// KV persists the solved set and streak.
	KV store.KV

	// Now returns the wall-clock time. Defaults to time.Now.
	Now func() time.Time

	// Location decides which calendar day a visit falls on. Defaults to UTC.
	Location *time.Location
}

// Tracker is an open session.
type Tracker struct {
	id        string
	source    string
	questions []catalog.Question
	byID      map[int]catalog.Question
	loadErr   error

	solved *solved.Store
	streak *streak.Tracker
	log    *slog.Logger
}

// Open starts a session. It loads the solved set, records today's visit
// and loads the catalog. A catalog that fails to load does not fail Open;
// the session continues with an empty catalog and LoadErr reports why.
func Open(ctx context.Context, opts Options) (*Tracker, error) {
	if opts.KV == nil {
		return nil, fmt.Errorf("open tracker: nil key/value store")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Source == "" {
		opts.Source = catalog.BuiltinSource
	}

	id := uuid.NewString()
	t := &Tracker{
		id:     id,
		source: opts.Source,
		streak: streak.NewTracker(opts.KV),
		log:    slog.With("session_id", id),
	}

	set, err := solved.Load(ctx, opts.KV)
	if err != nil {
		return nil, fmt.Errorf("load solved set: %w", err)
	}
	t.solved = set

	count, err := t.streak.Visit(ctx, streak.Today(opts.Now(), opts.Location))
	if err != nil {
		return nil, fmt.Errorf("record visit: %w", err)
	}

	questions, err := catalog.Load(ctx, opts.Source)
	if err != nil {
		t.loadErr = err
		t.log.Error("catalog unavailable", "source", opts.Source, "error", err)
		questions = nil
	}
	t.setCatalog(questions)

	t.log.Info("session opened",
		"source", opts.Source,
		"questions", len(t.questions),
		"solved", t.solved.Len(),
		"streak", count,
	)
	return t, nil
}

func (t *Tracker) setCatalog(questions []catalog.Question) {
	t.questions = questions
	t.byID = make(map[int]catalog.Question, len(questions))
	for _, q := range questions {
		if _, dup := t.byID[q.ID]; !dup {
			t.byID[q.ID] = q
		}
	}
}

// ID returns the session id used in log records.
func (t *Tracker) ID() string { return t.id }

// Source returns the catalog source the session was opened with.
func (t *Tracker) Source() string { return t.source }

// LoadErr returns the catalog load failure, or nil.
func (t *Tracker) LoadErr() error { return t.loadErr }

// Questions returns the catalog in its original order.
func (t *Tracker) Questions() []catalog.Question { return t.questions }

// Lookup returns the first catalog question with id.
func (t *Tracker) Lookup(id int) (catalog.Question, bool) {
	q, ok := t.byID[id]
	return q, ok
}

// IsSolved reports whether id is solved.
func (t *Tracker) IsSolved(id int) bool { return t.solved.IsSolved(id) }

// Filter returns the questions matching c.
func (t *Tracker) Filter(c progress.Criteria) ([]catalog.Question, error) {
	return progress.Filter(t.questions, t.solved, c)
}

// Topics returns the sorted topic names.
func (t *Tracker) Topics() []string { return progress.Topics(t.questions) }

// SubTopics returns the sorted sub-topic names, optionally within topic.
func (t *Tracker) SubTopics(topic string) []string {
	return progress.SubTopics(t.questions, topic)
}

// Stats summarises progress using the persisted streak count.
func (t *Tracker) Stats(ctx context.Context) progress.Stats {
	return progress.ComputeStats(t.questions, t.solved, t.streak.Count(ctx))
}

// Path groups the catalog by topic in curriculum order.
func (t *Tracker) Path() []progress.TopicAggregate {
	return progress.GroupByTopic(t.questions, t.solved)
}

// SuggestedNext returns the first incomplete topic on the path.
func (t *Tracker) SuggestedNext() (progress.TopicAggregate, bool) {
	return progress.SuggestedNextTopic(t.Path())
}

// Map returns the per-topic tiles sorted by name.
func (t *Tracker) Map() []progress.TopicTile {
	return progress.TopicMap(t.questions, t.solved)
}

// Toggle flips the solved state of id and returns the new state.
func (t *Tracker) Toggle(ctx context.Context, id int) (bool, error) {
	now, err := t.solved.Toggle(ctx, id)
	if err != nil {
		return now, err
	}
	t.log.Debug("toggled question", "id", id, "solved", now)
	return now, nil
}

// MarkUnsolved clears ids from the solved set and returns how many were
// solved before.
func (t *Tracker) MarkUnsolved(ctx context.Context, ids []int) (int, error) {
	n, err := t.solved.MarkUnsolved(ctx, ids)
	if err != nil {
		return n, err
	}
	t.log.Info("marked unsolved", "requested", len(ids), "removed", n)
	return n, nil
}

// MarkVisibleUnsolved clears every question matched by c.
func (t *Tracker) MarkVisibleUnsolved(ctx context.Context, c progress.Criteria) (int, error) {
	visible, err := t.Filter(c)
	if err != nil {
		return 0, err
	}
	return t.MarkUnsolved(ctx, catalog.IDs(visible))
}

// ResetStreak sets the streak count to zero.
func (t *Tracker) ResetStreak(ctx context.Context) error {
	if err := t.streak.Reset(ctx); err != nil {
		return err
	}
	t.log.Info("streak reset")
	return nil
}

// Streak returns the persisted streak count.
func (t *Tracker) Streak(ctx context.Context) int { return t.streak.Count(ctx) }

// LastVisit returns the persisted last visit date.
func (t *Tracker) LastVisit(ctx context.Context) (streak.Date, bool) {
	return t.streak.LastVisit(ctx)
}

// ResetAll forgets the solved set and the streak.
func (t *Tracker) ResetAll(ctx context.Context) error {
	if err := t.solved.Clear(ctx); err != nil {
		return err
	}
	if err := t.streak.Clear(ctx); err != nil {
		return err
	}
	t.log.Warn("progress reset")
	return nil
}
