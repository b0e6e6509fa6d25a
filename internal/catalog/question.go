package catalog

import "strings"

// Question is a single practice question in the catalog.
// Every text field may be empty; ID is the only identity key.
type Question struct {
	ID       int
	Name     string
	Topic    string
	SubTopic string
	Link     string
	Solution string
}

// SolutionKind classifies a question's solution reference.
type SolutionKind string

const (
	SolutionNone SolutionKind = "none"
	SolutionURL  SolutionKind = "url"
	SolutionPath SolutionKind = "path"
)

// Tag returns the non-empty topic and sub-topic joined for display.
func (q Question) Tag() string {
	var parts []string
	if q.Topic != "" {
		parts = append(parts, q.Topic)
	}
	if q.SubTopic != "" {
		parts = append(parts, q.SubTopic)
	}
	return strings.Join(parts, " · ")
}

// ProblemURL returns the question link if it looks like a web URL.
func (q Question) ProblemURL() (string, bool) {
	link := strings.TrimSpace(q.Link)
	if !strings.HasPrefix(link, "http") {
		return "", false
	}
	return link, true
}

// SolutionKind reports whether the solution is a URL, an opaque path label,
// or absent. The reference is never dereferenced.
func (q Question) SolutionKind() SolutionKind {
	s := strings.TrimSpace(q.Solution)
	switch {
	case s == "":
		return SolutionNone
	case strings.HasPrefix(s, "http"):
		return SolutionURL
	default:
		return SolutionPath
	}
}

// IDs returns the question IDs in catalog order.
func IDs(questions []Question) []int {
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}
