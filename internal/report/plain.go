package report

import (
	"fmt"
	"strings"
)

const (
	plainFirstColumnWidth = 10
	plainColumnWidth      = 6
	plainStoryIndent      = 11
)

// PlainPresenter renders fixed-width plain text suitable for terminals
// and mail bodies. Story lines wrap at lineWidth.
type PlainPresenter struct {
	lineWidth int
}

// NewPlainPresenter creates a plain-text presenter wrapping story lines
// at the given line width
func NewPlainPresenter(lineWidth int) *PlainPresenter {
	return &PlainPresenter{lineWidth: lineWidth}
}

// TableRow renders a fixed-width table row. The first column is padded to
// 10 characters plus 3 spaces, the rest to 6 plus 1; values longer than
// the column are truncated, not wrapped.
func (pp *PlainPresenter) TableRow(cells []string, header bool) string {
	var b strings.Builder
	for i, cell := range cells {
		if i == 0 {
			b.WriteString(fmt.Sprintf("%-*.*s   ", plainFirstColumnWidth, plainFirstColumnWidth, cell))
		} else {
			b.WriteString(fmt.Sprintf("%-*.*s ", plainColumnWidth, plainColumnWidth, cell))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// ReportHeader renders the title on its own line surrounded by blank lines
func (pp *PlainPresenter) ReportHeader(title string) string {
	return "\n" + title + "\n\n"
}

// SectionHeader renders a section title the same way as the report header
func (pp *PlainPresenter) SectionHeader(title string) string {
	return "\n" + title + "\n\n"
}

// StoryLine renders a weekday label in an 11-character gutter followed by
// the story text wrapped to the remaining line budget. Continuation lines
// share the gutter indent; long tokens are never broken mid-token.
func (pp *PlainPresenter) StoryLine(weekday, story string) string {
	lines := WrapText(story, pp.lineWidth-plainStoryIndent)
	if len(lines) == 0 {
		return weekday + "\n"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s%s\n", plainStoryIndent, weekday, lines[0]))
	indent := strings.Repeat(" ", plainStoryIndent)
	for _, line := range lines[1:] {
		b.WriteString(indent + line + "\n")
	}
	return b.String()
}
