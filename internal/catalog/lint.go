package catalog

import (
	"fmt"
	"strings"
)

// Lint reports records that load fine but are likely mistakes in the
// catalog source: duplicate or missing IDs and blank names.
func Lint(questions []Question) []string {
	var problems []string

	seen := make(map[int]int, len(questions))
	for i, q := range questions {
		pos := i + 1
		if q.ID == 0 {
			problems = append(problems, fmt.Sprintf("record %d: missing or non-integer id", pos))
		} else if first, ok := seen[q.ID]; ok {
			problems = append(problems, fmt.Sprintf("record %d: duplicate id %d (first at record %d)", pos, q.ID, first))
		} else {
			seen[q.ID] = pos
		}

		if strings.TrimSpace(q.Name) == "" {
			problems = append(problems, fmt.Sprintf("record %d: empty questionName", pos))
		}
	}
	return problems
}
