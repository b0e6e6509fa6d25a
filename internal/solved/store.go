package solved

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/abhisek/dsatrack/internal/store"
)

// StorageKey is the key holding the solved set as a JSON array of integers.
const StorageKey = "dsa_tracker_solved"

// errNotArray marks a persisted payload that is valid JSON but not an array.
var errNotArray = errors.New("solved set is not a JSON array")

// errTrailingData marks a payload with data after the JSON array.
var errTrailingData = errors.New("solved set has trailing data")

// Store is the persisted solved set. Every mutation writes the full set
// through to the underlying KV before returning.
//
// Store does not check IDs against the catalog; stale IDs are kept and
// ignored by consumers.
type Store struct {
	kv  store.KV
	set Set
}

// Load reads the solved set from kv. A missing or malformed payload yields
// an empty set. A failed read is returned, since starting empty would let
// the next toggle overwrite the stored set.
func Load(ctx context.Context, kv store.KV) (*Store, error) {
	raw, ok, err := kv.Get(ctx, StorageKey)
	if err != nil {
		return nil, fmt.Errorf("read solved set: %w", err)
	}

	s := &Store{kv: kv, set: make(Set)}
	if !ok {
		return s, nil
	}

	set, err := parseSet(raw)
	if err != nil {
		slog.Warn("discarding malformed solved set", "error", err)
		return s, nil
	}
	s.set = set
	return s, nil
}

// parseSet decodes a JSON array of IDs. Members that are not integers,
// including null, are dropped since they can never match a catalog ID.
// Integral floats such as 1.0 count as their integer.
func parseSet(raw string) (Set, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse solved set: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailingData
	}
	members, ok := doc.([]any)
	if !ok {
		return nil, errNotArray
	}

	set := make(Set, len(members))
	for _, m := range members {
		if id, ok := memberID(m); ok {
			set[id] = struct{}{}
		}
	}
	return set, nil
}

func memberID(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// IsSolved reports whether id is marked solved.
func (s *Store) IsSolved(id int) bool {
	return s.set.IsSolved(id)
}

// Len returns the number of solved IDs, including stale ones.
func (s *Store) Len() int {
	return len(s.set)
}

// IDs returns the solved IDs in ascending order.
func (s *Store) IDs() []int {
	return s.set.IDs()
}

// Snapshot returns a copy of the current set.
func (s *Store) Snapshot() Set {
	return s.set.Clone()
}

// Toggle flips id's membership, persists, and returns the new state.
func (s *Store) Toggle(ctx context.Context, id int) (bool, error) {
	solved := !s.set.IsSolved(id)
	if solved {
		s.set[id] = struct{}{}
	} else {
		delete(s.set, id)
	}
	if err := s.persist(ctx); err != nil {
		return solved, err
	}
	return solved, nil
}

// MarkUnsolved removes every id in ids with a single persist and returns
// how many were actually removed.
func (s *Store) MarkUnsolved(ctx context.Context, ids []int) (int, error) {
	removed := 0
	for _, id := range ids {
		if _, ok := s.set[id]; ok {
			delete(s.set, id)
			removed++
		}
	}
	if err := s.persist(ctx); err != nil {
		return removed, err
	}
	return removed, nil
}

// Clear empties the set and persists.
func (s *Store) Clear(ctx context.Context) error {
	s.set = make(Set)
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	b, err := json.Marshal(s.set.IDs())
	if err != nil {
		return fmt.Errorf("marshal solved set: %w", err)
	}
	if err := s.kv.Set(ctx, StorageKey, string(b)); err != nil {
		return fmt.Errorf("persist solved set: %w", err)
	}
	return nil
}
