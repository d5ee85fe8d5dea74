// Package export renders a window's time items as CSV or JSON for use
// outside the application.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/1cbyc/time-tracker/internal/report"
	"github.com/1cbyc/time-tracker/internal/task"
)

// Row is one exported time item.
type Row struct {
	TaskKey    string `json:"task_key"`
	TaskTitle  string `json:"task_title"`
	Project    string `json:"project,omitempty"`
	Start      string `json:"start"`
	End        string `json:"end,omitempty"`
	DurationMS int64  `json:"duration_ms"`
	Duration   string `json:"duration"`
}

type document struct {
	ExportedAt string `json:"exported_at"`
	Count      int    `json:"count"`
	Items      []Row  `json:"items"`
}

// buildRows flattens items into export rows. Open ranges carry an empty
// end and a duration evaluated at now.
func buildRows(items []report.TimeItem, projects map[string]*task.Project, now time.Time) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		projectTitle := ""
		if p, ok := projects[item.Task.ProjectID]; ok {
			projectTitle = p.Title
		}
		end := ""
		if item.Range.End != nil {
			end = item.Range.End.Format(time.RFC3339)
		}
		d := item.Range.Duration(now)
		rows = append(rows, Row{
			TaskKey:    item.Task.Key,
			TaskTitle:  item.Task.Title,
			Project:    projectTitle,
			Start:      item.Range.Start.Format(time.RFC3339),
			End:        end,
			DurationMS: d.Milliseconds(),
			Duration:   d.Round(time.Second).String(),
		})
	}
	return rows
}

// WriteCSV writes the items as CSV with a header row.
func WriteCSV(w io.Writer, items []report.TimeItem, projects map[string]*task.Project, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"task", "project", "start", "end", "duration_ms", "duration"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range buildRows(items, projects, now) {
		record := []string{
			r.TaskTitle,
			r.Project,
			r.Start,
			r.End,
			fmt.Sprintf("%d", r.DurationMS),
			r.Duration,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the items as an indented JSON document.
func WriteJSON(w io.Writer, items []report.TimeItem, projects map[string]*task.Project, now time.Time) error {
	doc := document{
		ExportedAt: now.Format(time.RFC3339),
		Items:      buildRows(items, projects, now),
	}
	doc.Count = len(doc.Items)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
