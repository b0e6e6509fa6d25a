package streak

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/abhisek/dsatrack/internal/store"
)

// Storage keys. The two values are independent scalars.
const (
	CountKey     = "dsa_tracker_streak"
	LastVisitKey = "dsa_tracker_last_visit"
)

// Next computes the streak count for a visit on today given the previous
// count and last visit date. A zero last means there was no prior visit.
//
//   - no prior visit: 0
//   - same day: unchanged
//   - next day: count + 1
//   - any other gap, including a negative one from clock skew: 1
func Next(count int, last, today Date) int {
	if last.IsZero() {
		return 0
	}
	switch last.DaysUntil(today) {
	case 0:
		return count
	case 1:
		return count + 1
	default:
		return 1
	}
}

// Tracker persists the visit streak.
type Tracker struct {
	kv store.KV
}

// NewTracker returns a Tracker backed by kv.
func NewTracker(kv store.KV) *Tracker {
	return &Tracker{kv: kv}
}

// Visit records a visit on today and returns the new count. The last visit
// date is overwritten unconditionally. Callers run it once per process start.
// A failed read returns the error and leaves the stored streak untouched.
func (t *Tracker) Visit(ctx context.Context, today Date) (int, error) {
	rawCount, hasCount, err := t.kv.Get(ctx, CountKey)
	if err != nil {
		return 0, fmt.Errorf("read streak count: %w", err)
	}
	rawLast, hasLast, err := t.kv.Get(ctx, LastVisitKey)
	if err != nil {
		return 0, fmt.Errorf("read last visit: %w", err)
	}

	last, _ := parseLastVisit(rawLast, hasLast)
	count := Next(parseCount(rawCount, hasCount), last, today)

	if err := t.kv.Set(ctx, CountKey, strconv.Itoa(count)); err != nil {
		return count, fmt.Errorf("persist streak count: %w", err)
	}
	if err := t.kv.Set(ctx, LastVisitKey, today.String()); err != nil {
		return count, fmt.Errorf("persist last visit: %w", err)
	}

	slog.Debug("streak updated", "streak", count, "last_visit", last.String(), "today", today.String())
	return count, nil
}

// Reset sets the count to zero and leaves the last visit date alone, so
// the next visit is still judged against the last real one.
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.kv.Set(ctx, CountKey, "0"); err != nil {
		return fmt.Errorf("reset streak: %w", err)
	}
	return nil
}

// Clear forgets both the count and the last visit.
func (t *Tracker) Clear(ctx context.Context) error {
	for _, key := range []string{CountKey, LastVisitKey} {
		if err := t.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear streak: %w", err)
		}
	}
	return nil
}

// Count reads the persisted count. Missing, unreadable or malformed
// values read as 0.
func (t *Tracker) Count(ctx context.Context) int {
	raw, ok, err := t.kv.Get(ctx, CountKey)
	if err != nil {
		slog.Warn("read streak count", "error", err)
		return 0
	}
	return parseCount(raw, ok)
}

// LastVisit reads the persisted last visit date. Missing, unreadable or
// malformed values report false.
func (t *Tracker) LastVisit(ctx context.Context) (Date, bool) {
	raw, ok, err := t.kv.Get(ctx, LastVisitKey)
	if err != nil {
		slog.Warn("read last visit", "error", err)
		return Date{}, false
	}
	return parseLastVisit(raw, ok)
}

func parseCount(raw string, ok bool) int {
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		slog.Warn("discarding malformed streak count", "value", raw)
		return 0
	}
	return n
}

func parseLastVisit(raw string, ok bool) (Date, bool) {
	if !ok || raw == "" {
		return Date{}, false
	}
	d, err := ParseDate(strings.TrimSpace(raw))
	if err != nil {
		slog.Warn("discarding malformed last visit", "value", raw)
		return Date{}, false
	}
	return d, true
}
