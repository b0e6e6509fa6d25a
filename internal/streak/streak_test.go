package streak

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/dsatrack/internal/store"
)

func day(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNext(t *testing.T) {
	tests := []struct {
		name  string
		count int
		last  Date
		today string
		want  int
	}{
		{"first visit", 0, Date{}, "2024-03-10", 0},
		{"first visit ignores stale count", 9, Date{}, "2024-03-10", 0},
		{"same day", 4, day("2024-03-10"), "2024-03-10", 4},
		{"consecutive day", 4, day("2024-03-09"), "2024-03-10", 5},
		{"consecutive from zero", 0, day("2024-03-09"), "2024-03-10", 1},
		{"gap of two", 4, day("2024-03-08"), "2024-03-10", 1},
		{"long gap", 40, day("2023-01-01"), "2024-03-10", 1},
		{"clock moved back", 4, day("2024-03-11"), "2024-03-10", 1},
		{"month boundary", 2, day("2024-02-29"), "2024-03-01", 3},
		{"year boundary", 2, day("2023-12-31"), "2024-01-01", 3},
		{"earliest date is a real visit", 5, day("0001-01-01"), "2024-01-02", 1},
		{"day after earliest date", 5, day("0001-01-01"), "0001-01-02", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Next(tt.count, tt.last, day(tt.today))
			if got != tt.want {
				t.Errorf("Next(%d, %q, %s) = %d, want %d", tt.count, tt.last, tt.today, got, tt.want)
			}
		})
	}
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)

	if got := Today(now, nil).String(); got != "2024-03-10" {
		t.Errorf("Today(UTC) = %s, want 2024-03-10", got)
	}

	tokyo := time.FixedZone("JST", 9*60*60)
	if got := Today(now, tokyo).String(); got != "2024-03-11" {
		t.Errorf("Today(JST) = %s, want 2024-03-11", got)
	}
}

func TestDaysUntil(t *testing.T) {
	// Spans a DST change in zones that observe one; dates are UTC so it is exact.
	if got := day("2024-03-09").DaysUntil(day("2024-03-12")); got != 3 {
		t.Errorf("DaysUntil = %d, want 3", got)
	}
	if got := day("2024-03-12").DaysUntil(day("2024-03-09")); got != -3 {
		t.Errorf("DaysUntil = %d, want -3", got)
	}
	if got := day("0001-01-01").DaysUntil(day("2024-01-01")); got != 738885 {
		t.Errorf("DaysUntil across millennia = %d, want 738885", got)
	}
	if got := NewDate(2024, time.March, 9).AddDays(1).String(); got != "2024-03-10" {
		t.Errorf("AddDays = %s, want 2024-03-10", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "yesterday", "2024-13-01", "10/03/2024"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", s)
		}
	}
}

func TestVisit_Sequence(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(store.NewMemoryKV())

	steps := []struct {
		today string
		want  int
	}{
		{"2024-03-01", 0},
		{"2024-03-01", 0},
		{"2024-03-02", 1},
		{"2024-03-03", 2},
		{"2024-03-03", 2},
		{"2024-03-06", 1},
		{"2024-03-07", 2},
	}

	for i, st := range steps {
		got, err := tr.Visit(ctx, day(st.today))
		if err != nil {
			t.Fatalf("step %d: Visit: %v", i, err)
		}
		if got != st.want {
			t.Errorf("step %d (%s): Visit = %d, want %d", i, st.today, got, st.want)
		}
		if c := tr.Count(ctx); c != st.want {
			t.Errorf("step %d: Count = %d, want %d", i, c, st.want)
		}
		last, ok := tr.LastVisit(ctx)
		if !ok || last.String() != st.today {
			t.Errorf("step %d: LastVisit = %s, %v, want %s, true", i, last, ok, st.today)
		}
	}
}

func TestReset_KeepsLastVisit(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	_ = kv.Set(ctx, CountKey, "7")
	_ = kv.Set(ctx, LastVisitKey, "2024-01-01")
	tr := NewTracker(kv)

	if err := tr.Reset(ctx); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if got := tr.Count(ctx); got != 0 {
		t.Errorf("Count after reset = %d, want 0", got)
	}
	if last, ok := tr.LastVisit(ctx); !ok || last.String() != "2024-01-01" {
		t.Errorf("LastVisit after reset = %s, %v, want 2024-01-01, true", last, ok)
	}

	got, err := tr.Visit(ctx, day("2024-01-02"))
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if got != 1 {
		t.Errorf("Visit after reset = %d, want 1", got)
	}
}

func TestCorruptState(t *testing.T) {
	tests := []struct {
		name      string
		count     string
		last      string
		today     string
		wantCount int
	}{
		{"garbage count, consecutive day", "abc", "2024-03-09", "2024-03-10", 1},
		{"garbage count, same day", "abc", "2024-03-10", "2024-03-10", 0},
		{"negative count", "-3", "2024-03-09", "2024-03-10", 1},
		{"garbage date", "5", "not-a-date", "2024-03-10", 0},
		{"empty date", "5", "", "2024-03-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := store.NewMemoryKV()
			_ = kv.Set(ctx, CountKey, tt.count)
			_ = kv.Set(ctx, LastVisitKey, tt.last)

			got, err := NewTracker(kv).Visit(ctx, day(tt.today))
			if err != nil {
				t.Fatalf("Visit: %v", err)
			}
			if got != tt.wantCount {
				t.Errorf("Visit = %d, want %d", got, tt.wantCount)
			}
			if raw, _, _ := kv.Get(ctx, LastVisitKey); raw != tt.today {
				t.Errorf("persisted last visit = %q, want %q", raw, tt.today)
			}
		})
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	tr := NewTracker(store.NewMemoryKV())
	if _, err := tr.Visit(ctx, day("2024-03-01")); err != nil {
		t.Fatal(err)
	}
	if err := tr.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok := tr.LastVisit(ctx); ok {
		t.Error("LastVisit present after Clear")
	}
	if got := tr.Count(ctx); got != 0 {
		t.Errorf("Count after Clear = %d, want 0", got)
	}
}

// flakyKV wraps a MemoryKV and fails reads while failGet is set.
type flakyKV struct {
	*store.MemoryKV
	failGet bool
}

var errRead = errors.New("disk I/O error")

func (f *flakyKV) Get(ctx context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errRead
	}
	return f.MemoryKV.Get(ctx, key)
}

func TestVisit_ReadErrorKeepsStoredStreak(t *testing.T) {
	ctx := context.Background()
	kv := &flakyKV{MemoryKV: store.NewMemoryKV()}
	_ = kv.Set(ctx, CountKey, "42")
	_ = kv.Set(ctx, LastVisitKey, "2024-01-01")

	kv.failGet = true
	got, err := NewTracker(kv).Visit(ctx, day("2024-01-02"))
	if !errors.Is(err, errRead) {
		t.Fatalf("Visit error = %v, want %v", err, errRead)
	}
	if got != 0 {
		t.Errorf("Visit = %d, want 0 on error", got)
	}

	kv.failGet = false
	if raw, _, _ := kv.Get(ctx, CountKey); raw != "42" {
		t.Errorf("persisted count = %q, want 42", raw)
	}
	if raw, _, _ := kv.Get(ctx, LastVisitKey); raw != "2024-01-01" {
		t.Errorf("persisted last visit = %q, want 2024-01-01", raw)
	}

	got, err = NewTracker(kv).Visit(ctx, day("2024-01-02"))
	if err != nil || got != 43 {
		t.Errorf("Visit after recovery = (%d, %v), want (43, nil)", got, err)
	}
}

func TestDate_ZeroVersusEarliest(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Error("Date{}.IsZero() = false")
	}
	d := day("0001-01-01")
	if d.IsZero() {
		t.Error("0001-01-01 reads as no date")
	}
	if got := d.String(); got != "0001-01-01" {
		t.Errorf("String = %q, want 0001-01-01", got)
	}
	if d.AddDays(1).IsZero() {
		t.Error("AddDays lost the date")
	}
}
