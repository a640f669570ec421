package batch

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Outcome is the per-file status of a batch run.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeWarn    Outcome = "warn"
	OutcomeError   Outcome = "error"
	OutcomeSkipped Outcome = "skipped"
)

// FileResult describes what happened to one subtitle file.
type FileResult struct {
	FileID     string
	Name       string
	OutputName string
	Outcome    Outcome
	Message    string
	Link       string
	Sections   int
	Duration   time.Duration
}

func (r FileResult) finish(o Outcome, msg string, start time.Time) FileResult {
	r.Outcome = o
	r.Message = msg
	r.Duration = time.Since(start)
	return r
}

// Report collects the results of a batch run in processing order.
type Report struct {
	FolderID       string
	OutputFolderID string
	Results        []FileResult
}

// Counts returns the number of files per outcome.
func (r Report) Counts() (ok, warned, failed, skipped int) {
	for _, res := range r.Results {
		switch res.Outcome {
		case OutcomeOK:
			ok++
		case OutcomeWarn:
			warned++
		case OutcomeError:
			failed++
		case OutcomeSkipped:
			skipped++
		}
	}
	return ok, warned, failed, skipped
}

// HasFailures reports whether any file ended with a warning or an error.
func (r Report) HasFailures() bool {
	_, warned, failed, _ := r.Counts()
	return warned+failed > 0
}

// Table renders the report as a plain text table.
func (r Report) Table() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"#", "File", "Status", "Sections", "Time", "Detail"})
	for i, res := range r.Results {
		detail := res.Message
		if res.Link != "" {
			detail = res.Link
		}
		sections := ""
		if res.Sections > 0 {
			sections = fmt.Sprintf("%d", res.Sections)
		}
		tw.AppendRow(table.Row{i + 1, res.Name, strings.ToUpper(string(res.Outcome)), sections, res.Duration.Round(time.Millisecond), truncate(detail, 80)})
	}
	ok, warned, failed, skipped := r.Counts()
	tw.AppendFooter(table.Row{"", "", "", "", "", fmt.Sprintf("%d ok, %d skipped, %d warn, %d error", ok, skipped, warned, failed)})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
