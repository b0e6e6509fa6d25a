// Package export writes progress reports as Excel workbooks.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/dsatrack/internal/catalog"
	"github.com/abhisek/dsatrack/internal/progress"
)

// Sheet names, in workbook order.
const (
	SummarySheet   = "Summary"
	QuestionsSheet = "Questions"
	PathSheet      = "Path"
)

// Report is everything a workbook shows.
type Report struct {
	Questions []catalog.Question
	Solved    progress.Solved
	Path      []progress.TopicAggregate
	Stats     progress.Stats
	LastVisit string
}

// Write encodes r as an .xlsx workbook to w.
func Write(w io.Writer, r Report) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile saves r as an .xlsx workbook at path.
func WriteFile(path string, r Report) error {
	f, err := build(r)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func build(r Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for _, name := range []string{QuestionsSheet, PathSheet} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}

	w := &sheetWriter{f: f, header: bold}
	w.summary(r)
	w.questions(r)
	w.path(r)
	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

// sheetWriter keeps the first error so row writes read top to bottom.
type sheetWriter struct {
	f      *excelize.File
	header int
	err    error
}

func (w *sheetWriter) row(sheet string, n int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("write %s row %d: %w", sheet, n, err)
	}
}

func (w *sheetWriter) headerRow(sheet string, cols ...any) {
	w.row(sheet, 1, cols...)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(sheet, "A1", last, w.header); err != nil {
		w.err = fmt.Errorf("style %s header: %w", sheet, err)
		return
	}
	if err := w.f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		w.err = fmt.Errorf("freeze %s header: %w", sheet, err)
	}
}

func (w *sheetWriter) summary(r Report) {
	w.row(SummarySheet, 1, "Total", r.Stats.Total)
	w.row(SummarySheet, 2, "Solved", r.Stats.Solved)
	w.row(SummarySheet, 3, "Percent", r.Stats.Percent)
	w.row(SummarySheet, 4, "Streak", r.Stats.Streak)
	w.row(SummarySheet, 5, "Last visit", r.LastVisit)

	last := 5
	if next, ok := progress.SuggestedNextTopic(r.Path); ok {
		last++
		w.row(SummarySheet, last, "Suggested next", next.Topic)
	}
	if w.err == nil {
		w.err = w.f.SetCellStyle(SummarySheet, "A1", fmt.Sprintf("A%d", last), w.header)
	}
}

func (w *sheetWriter) questions(r Report) {
	w.headerRow(QuestionsSheet, "ID", "Question", "Topic", "Sub-topic", "Status", "Link", "Solution")
	for i, q := range r.Questions {
		n := i + 2
		w.row(QuestionsSheet, n, q.ID, q.Name, q.Topic, q.SubTopic, status(r.Solved, q.ID), q.Link, q.Solution)
		if link, ok := q.ProblemURL(); ok && w.err == nil {
			cell, _ := excelize.CoordinatesToCellName(6, n)
			if err := w.f.SetCellHyperLink(QuestionsSheet, cell, link, "External"); err != nil {
				w.err = fmt.Errorf("link question %d: %w", q.ID, err)
			}
		}
	}
	if w.err == nil {
		w.err = w.f.SetColWidth(QuestionsSheet, "B", "B", 40)
	}
}

func (w *sheetWriter) path(r Report) {
	w.headerRow(PathSheet, "Topic", "Sub-topic", "Solved", "Total", "Percent")
	n := 2
	for _, agg := range r.Path {
		w.row(PathSheet, n, agg.Topic, "", agg.Solved, agg.Total, agg.Percent)
		n++
		for _, sub := range agg.SubTopics {
			w.row(PathSheet, n, "", sub.SubTopic, sub.Solved, sub.Total, sub.Percent)
			n++
		}
	}
}

func status(solved progress.Solved, id int) string {
	if solved != nil && solved.IsSolved(id) {
		return "solved"
	}
	return "unsolved"
}
