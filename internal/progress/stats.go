package progress

import (
	"math"

	"github.com/abhisek/dsatrack/internal/catalog"
)

// Percent returns solved/total as a rounded whole percentage.
// A zero total yields 0.
func Percent(solved, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(solved) / float64(total) * 100))
}

// Stats summarises overall progress.
type Stats struct {
	Total   int
	Solved  int
	Percent int
	Streak  int
}

// ComputeStats counts the catalog and the catalog questions that are
// solved. Solved ids missing from the catalog are ignored. A question id
// repeated in the catalog counts once toward Solved.
func ComputeStats(questions []catalog.Question, solved Solved, streak int) Stats {
	n := countSolved(questions, solved)
	return Stats{
		Total:   len(questions),
		Solved:  n,
		Percent: Percent(n, len(questions)),
		Streak:  streak,
	}
}
