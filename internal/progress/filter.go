// Package progress derives views from the question catalog and the solved
// set. Every function is pure: same inputs, same outputs, nothing cached.
package progress

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/abhisek/dsatrack/internal/catalog"
)

// ErrContractViolation marks a caller error, such as an unknown status.
var ErrContractViolation = errors.New("contract violation")

// Solved reports whether a question has been solved.
type Solved interface {
	IsSolved(id int) bool
}

// Status selects questions by solved state.
type Status string

const (
	StatusAll      Status = "all"
	StatusSolved   Status = "solved"
	StatusUnsolved Status = "unsolved"
)

// Statuses lists the accepted statuses in display order.
var Statuses = []Status{StatusAll, StatusSolved, StatusUnsolved}

// ParseStatus validates s. The empty string means StatusAll.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusSolved:
		return StatusSolved, nil
	case StatusUnsolved:
		return StatusUnsolved, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrContractViolation, s)
}

// Criteria narrows the question list. Zero values match everything.
type Criteria struct {
	Topic    string
	SubTopic string
	Status   Status
	Search   string
}

// IsZero reports whether c matches every question.
func (c Criteria) IsZero() bool {
	return c.Topic == "" && c.SubTopic == "" &&
		(c.Status == "" || c.Status == StatusAll) &&
		strings.TrimSpace(c.Search) == ""
}

// Filter returns the questions matching every criterion, in catalog order.
func Filter(questions []catalog.Question, solved Solved, c Criteria) ([]catalog.Question, error) {
	status, err := ParseStatus(string(c.Status))
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(c.Search))

	out := make([]catalog.Question, 0, len(questions))
	for _, q := range questions {
		if c.Topic != "" && q.Topic != c.Topic {
			continue
		}
		if c.SubTopic != "" && q.SubTopic != c.SubTopic {
			continue
		}
		if !matchStatus(status, solved, q.ID) {
			continue
		}
		if needle != "" && !matchSearch(fold, needle, q) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func matchStatus(status Status, solved Solved, id int) bool {
	switch status {
	case StatusSolved:
		return isSolved(solved, id)
	case StatusUnsolved:
		return !isSolved(solved, id)
	default:
		return true
	}
}

func matchSearch(fold cases.Caser, needle string, q catalog.Question) bool {
	for _, field := range []string{q.Name, q.Topic, q.SubTopic} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}

// isSolved treats a nil Solved as the empty set.
func isSolved(solved Solved, id int) bool {
	return solved != nil && solved.IsSolved(id)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Topics returns the distinct non-blank topics, sorted.
func Topics(questions []catalog.Question) []string {
	seen := make(map[string]struct{})
	for _, q := range questions {
		if !blank(q.Topic) {
			seen[q.Topic] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// SubTopics returns the distinct non-blank sub-topics, sorted. A non-empty
// topic restricts the result to that topic's questions.
func SubTopics(questions []catalog.Question, topic string) []string {
	seen := make(map[string]struct{})
	for _, q := range questions {
		if topic != "" && q.Topic != topic {
			continue
		}
		if !blank(q.SubTopic) {
			seen[q.SubTopic] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
