package output

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/sparta-contents/summary-note-maker/internal/notes"
)

const (
	fontName     = "Malgun Gothic"
	codeFontName = "Consolas"
	fontSize     = 11
	titleSize    = 18
)

// notesToDocx renders the sections of a notes document as a styled docx file.
func notesToDocx(title string, sections []notes.Section, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRuns(doc.AddParagraph(""), title, titleSize, true)

	for _, s := range sections {
		heading := fmt.Sprintf("%s  [%s]", s.Title, formatStartTime(s.StartTime))
		addRuns(doc.AddParagraph(""), heading, headingSize(s.Level), true)

		if s.Layout == notes.LayoutParagraph {
			addRuns(doc.AddParagraph(""), strings.Join(s.Content, " "), fontSize, false)
			continue
		}
		for _, line := range s.Content {
			addRuns(doc.AddParagraph(""), "• "+line, fontSize, false)
		}
	}

	return doc.SaveTo(outputPath)
}

// formatStartTime renders seconds as mm:ss, or h:mm:ss past an hour.
func formatStartTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h, m, s := total/3600, (total%3600)/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 15
	case 2:
		return 13
	default:
		return fontSize
	}
}

// inlineRun is a span of text sharing one style.
type inlineRun struct {
	Text string
	Bold bool
	Code bool
}

// reInline matches **bold**, __bold__, `code` and 【keyword】 spans.
var reInline = regexp.MustCompile("\\*\\*(.+?)\\*\\*|__(.+?)__|`([^`]+)`|【([^】]+)】")

// inlineRuns splits model text into styled runs. Markers that are not closed
// are dropped from the plain text.
func inlineRuns(text string) []inlineRun {
	var runs []inlineRun
	plain := func(s string) {
		s = strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
		if s != "" {
			runs = append(runs, inlineRun{Text: s})
		}
	}

	last := 0
	for _, m := range reInline.FindAllStringSubmatchIndex(text, -1) {
		plain(text[last:m[0]])
		last = m[1]
		switch {
		case m[2] >= 0:
			runs = append(runs, inlineRun{Text: text[m[2]:m[3]], Bold: true})
		case m[4] >= 0:
			runs = append(runs, inlineRun{Text: text[m[4]:m[5]], Bold: true})
		case m[6] >= 0:
			runs = append(runs, inlineRun{Text: text[m[6]:m[7]], Code: true})
		case m[8] >= 0:
			runs = append(runs, inlineRun{Text: text[m[0]:m[1]], Bold: true})
		}
	}
	plain(text[last:])
	return runs
}

// addRuns writes text into p. bold forces every run bold, as for headings.
func addRuns(p *docx.Paragraph, text string, size uint64, bold bool) {
	for _, r := range inlineRuns(text) {
		font := fontName
		if r.Code {
			font = codeFontName
		}
		run := p.AddText(r.Text).Font(font).Size(size).Color("000000")
		if bold || r.Bold {
			run.Bold(true)
		}
	}
}
