package report

import (
	"fmt"
	"strings"

	"timereport/internal/domain"
)

// Presenter supplies the presentation primitives for one output format.
// The traversal in Renderer.Generate is shared; implementations differ
// only in delimiters and markup. Every method returns a fragment with its
// own trailing newline(s).
type Presenter interface {
	TableRow(cells []string, header bool) string
	ReportHeader(title string) string
	SectionHeader(title string) string
	StoryLine(weekday, story string) string
}

// Label carries the report metadata shown in the header
type Label struct {
	Year  int
	Week  int
	Scope string
}

// Renderer turns an aggregated period into a single text blob through a
// Presenter. Rendering is deterministic: the same period and label always
// produce byte-identical output.
type Renderer struct {
	presenter Presenter
	label     Label
}

// NewRenderer creates a renderer for the given presentation format
func NewRenderer(presenter Presenter, label Label) *Renderer {
	return &Renderer{presenter: presenter, label: label}
}

const columnDateFormat = "02/01"

// Generate renders the full report: header, hours table, then one story
// section per user.
func (r *Renderer) Generate(p *PeriodOfWork) string {
	var b strings.Builder

	b.WriteString(r.presenter.ReportHeader(r.headerTitle()))
	r.writeHoursTable(&b, p)
	r.writeStorySections(&b, p)

	return b.String()
}

func (r *Renderer) headerTitle() string {
	return fmt.Sprintf("Week %d of %d for %s", r.label.Week, r.label.Year, r.label.Scope)
}

// writeHoursTable emits the per-user/per-day hours table. The trailing
// "everyone" row is computed directly from TimeWorked with no user
// constraint: several users may log time in the same window, so it is not
// derivable as a sum of the printed per-user rows.
func (r *Renderer) writeHoursTable(b *strings.Builder, p *PeriodOfWork) {
	dates := p.AllDates()

	header := make([]string, 0, len(dates)+2)
	header = append(header, "")
	for _, date := range dates {
		header = append(header, date.Format(columnDateFormat))
	}
	header = append(header, "Total")
	b.WriteString(r.presenter.TableRow(header, true))

	users := p.Users()
	for i := range users {
		user := users[i]
		row := make([]string, 0, len(dates)+2)
		row = append(row, user.Login)
		for _, date := range dates {
			d := date
			row = append(row, FormatDuration(p.TimeWorked(TaskQuery{Date: &d, User: &user})))
		}
		row = append(row, FormatDuration(p.TimeWorked(TaskQuery{User: &user})))
		b.WriteString(r.presenter.TableRow(row, false))
	}

	everyone := make([]string, 0, len(dates)+2)
	everyone = append(everyone, "everyone")
	for _, date := range dates {
		d := date
		everyone = append(everyone, FormatDuration(p.TimeWorked(TaskQuery{Date: &d})))
	}
	everyone = append(everyone, FormatDuration(p.TimeWorked(TaskQuery{})))
	b.WriteString(r.presenter.TableRow(everyone, false))
}

// writeStorySections emits one section per user, with a line per day
// concatenating that day's task texts and stories.
func (r *Renderer) writeStorySections(b *strings.Builder, p *PeriodOfWork) {
	users := p.Users()
	for i := range users {
		user := users[i]
		b.WriteString(r.presenter.SectionHeader("Stories for " + user.Login))
		for _, date := range p.AllDates() {
			d := date
			story := dayStory(p.FilterTasks(TaskQuery{Date: &d, User: &user}))
			b.WriteString(r.presenter.StoryLine(d.Weekday().String(), story))
		}
	}
}

// dayStory joins the texts and stories of one user/day's tasks into a
// single whitespace-normalized line.
func dayStory(tasks []domain.Task) string {
	var parts []string
	for _, task := range tasks {
		if task.Text != "" {
			parts = append(parts, task.Text)
		}
		if task.Story != "" {
			parts = append(parts, task.Story)
		}
	}
	return NormalizeWhitespace(strings.Join(parts, " "))
}
