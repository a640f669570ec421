package transcript

import (
	"fmt"
	"regexp"
	"strings"
)

const timeRangeSeparator = "-->"

var blankLine = regexp.MustCompile(`\n[ \t]*\n`)

// Entry is one subtitle block reduced to its start time and caption text.
type Entry struct {
	Start float64
	Text  string
}

// Line renders the entry the way it appears in a transcript.
func (e Entry) Line() string {
	return fmt.Sprintf("[%.2fs] %s", e.Start, e.Text)
}

// Entries extracts one Entry per well-formed subtitle block, in file order.
// Blocks with fewer than three lines or an unparsable start time are skipped.
func Entries(content string) []Entry {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	var entries []Entry
	for _, block := range blankLine.Split(content, -1) {
		entry, ok := parseBlock(strings.Trim(block, "\n"))
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func parseBlock(block string) (Entry, bool) {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 {
		return Entry{}, false
	}

	timeLine := lines[1]
	startText := timeLine
	if idx := strings.Index(timeLine, timeRangeSeparator); idx >= 0 {
		startText = timeLine[:idx]
	}
	start, err := ParseTimestamp(startText)
	if err != nil {
		return Entry{}, false
	}

	text := strings.TrimSpace(strings.Join(lines[2:], " "))
	return Entry{Start: start, Text: text}, true
}

// Normalize renders raw SRT text as a time-annotated transcript, one
// "[<seconds>s] <text>" line per subtitle block.
func Normalize(content string) string {
	entries := Entries(content)
	if len(entries) == 0 {
		return ""
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = entry.Line()
	}
	return strings.Join(lines, "\n")
}
