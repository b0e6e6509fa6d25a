package export

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/abhisek/dsatrack/internal/progress"
	"github.com/abhisek/dsatrack/internal/solved"
)

func sampleReport() Report {
	qs := []catalog.Question{
		{ID: 1, Name: "Two Sum", Topic: "Arrays", SubTopic: "Basics", Link: "https://leetcode.com/problems/two-sum/"},
		{ID: 2, Name: "Rotate Array", Topic: "Arrays", SubTopic: "Basics"},
		{ID: 3, Name: "Max Depth", Topic: "Trees", SubTopic: "DFS", Solution: "trees/MaxDepth.java"},
	}
	set := solved.NewSet(1)
	return Report{
		Questions: qs,
		Solved:    set,
		Path:      progress.GroupByTopic(qs, set),
		Stats:     progress.ComputeStats(qs, set, 4),
		LastVisit: "2024-05-01",
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, QuestionsSheet, PathSheet}, f.GetSheetList())

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Total", "3"},
		{"Solved", "1"},
		{"Percent", "33"},
		{"Streak", "4"},
		{"Last visit", "2024-05-01"},
		{"Suggested next", "Arrays"},
	}, summary)

	questions, err := f.GetRows(QuestionsSheet)
	require.NoError(t, err)
	require.Len(t, questions, 4)
	assert.Equal(t, []string{"ID", "Question", "Topic", "Sub-topic", "Status", "Link", "Solution"}, questions[0])
	assert.Equal(t, "solved", questions[1][4])
	assert.Equal(t, "unsolved", questions[2][4])
	assert.Equal(t, "trees/MaxDepth.java", questions[3][6])

	ok, target, err := f.GetCellHyperLink(QuestionsSheet, "F2")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", target)

	path, err := f.GetRows(PathSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Topic", "Sub-topic", "Solved", "Total", "Percent"},
		{"Arrays", "", "1", "2", "50"},
		{"", "Basics", "1", "2", "50"},
		{"Trees", "", "0", "1", "0"},
		{"", "DFS", "0", "1", "0"},
	}, path)
}

func TestWriteFile_EmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.xlsx")
	require.NoError(t, WriteFile(path, Report{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(QuestionsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "header only")

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Len(t, summary, 5, "no suggestion without topics")
}
