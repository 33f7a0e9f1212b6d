package report

import (
	"strings"
)

// TwikiPresenter renders TWiki markup: heading markers, emphasized table
// cells and bullet-list story lines. It shares the traversal with the
// plain presenter and overrides only the presentation primitives.
type TwikiPresenter struct{}

// NewTwikiPresenter creates a TWiki markup presenter
func NewTwikiPresenter() *TwikiPresenter {
	return &TwikiPresenter{}
}

// TableRow renders a TWiki table row. Header cells are emphasized; in
// data rows only the first column is. An empty cell renders as a single
// space so the emphasis markers stay balanced.
func (tp *TwikiPresenter) TableRow(cells []string, header bool) string {
	var b strings.Builder
	for i, cell := range cells {
		if header || i == 0 {
			if cell == "" {
				cell = " "
			}
			b.WriteString("| *" + cell + "* ")
		} else {
			b.WriteString("| " + cell + " ")
		}
	}
	b.WriteString("|\n")
	return b.String()
}

// ReportHeader renders a top-level TWiki heading
func (tp *TwikiPresenter) ReportHeader(title string) string {
	return "---+ " + title + "\n"
}

// SectionHeader renders a second-level TWiki heading
func (tp *TwikiPresenter) SectionHeader(title string) string {
	return "---++ " + title + "\n"
}

// StoryLine renders a bullet-list item with the weekday emphasized. TWiki
// reflows paragraphs itself, so the story stays on one line.
func (tp *TwikiPresenter) StoryLine(weekday, story string) string {
	return "   * *" + weekday + "* - " + story + "\n"
}
