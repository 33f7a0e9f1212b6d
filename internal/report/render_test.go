package report

import (
	"strings"
	"testing"
	"time"

	"timereport/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainPresenter_TableRow(t *testing.T) {
	pp := NewPlainPresenter(80)

	tests := []struct {
		name     string
		cells    []string
		expected string
	}{
		{
			name:     "first column padded to 10 plus 3, others to 6 plus 1",
			cells:    []string{"alice", "01:00", "Total"},
			expected: "alice        01:00  Total  \n",
		},
		{
			name:     "long values are truncated, not wrapped",
			cells:    []string{"verylongloginname", "longvalue"},
			expected: "verylonglo   longva \n",
		},
		{
			name:     "empty first column leaves the gutter blank",
			cells:    []string{"", "09/02"},
			expected: "             09/02  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pp.TableRow(tt.cells, false))
		})
	}
}

func TestTwikiPresenter_TableRow(t *testing.T) {
	tp := NewTwikiPresenter()

	tests := []struct {
		name     string
		cells    []string
		header   bool
		expected string
	}{
		{
			name:     "header row emphasizes every cell, empty cell keeps markers balanced",
			cells:    []string{"", "Mon"},
			header:   true,
			expected: "| * * | *Mon* |\n",
		},
		{
			name:     "data row emphasizes only the first column",
			cells:    []string{"alice", "01:00"},
			header:   false,
			expected: "| *alice* | 01:00 |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tp.TableRow(tt.cells, tt.header))
		})
	}
}

func TestPlainPresenter_StoryLine(t *testing.T) {
	pp := NewPlainPresenter(80)

	t.Run("empty story renders the bare weekday", func(t *testing.T) {
		assert.Equal(t, "Monday\n", pp.StoryLine("Monday", ""))
	})

	t.Run("short story shares the line with the weekday gutter", func(t *testing.T) {
		assert.Equal(t, "Tuesday    fixed the build\n", pp.StoryLine("Tuesday", "fixed the build"))
	})

	t.Run("long story wraps with continuation lines sharing the indent", func(t *testing.T) {
		story := strings.TrimSpace(strings.Repeat("word ", 30))

		result := pp.StoryLine("Wednesday", story)
		lines := strings.Split(strings.TrimRight(result, "\n"), "\n")

		require.Greater(t, len(lines), 1)
		assert.True(t, strings.HasPrefix(lines[0], "Wednesday  "))
		for _, line := range lines[1:] {
			assert.True(t, strings.HasPrefix(line, strings.Repeat(" ", 11)))
			assert.LessOrEqual(t, len(line), 80)
		}
	})

	t.Run("configured line width drives the wrap point", func(t *testing.T) {
		narrow := NewPlainPresenter(40)
		story := strings.TrimSpace(strings.Repeat("word ", 30))

		result := narrow.StoryLine("Wednesday", story)
		lines := strings.Split(strings.TrimRight(result, "\n"), "\n")

		require.Greater(t, len(lines), 1)
		for _, line := range lines {
			assert.LessOrEqual(t, len(line), 40)
		}
	})

	t.Run("long tokens survive wrapping intact", func(t *testing.T) {
		url := "https://tracker.example.com/browse/PROJ-1234?focusedCommentId=567890"

		result := pp.StoryLine("Friday", "see "+url)

		assert.Contains(t, result, url)
	})
}

func TestTwikiPresenter_Headers(t *testing.T) {
	tp := NewTwikiPresenter()

	assert.Equal(t, "---+ Week 7 of 2026 for project Acme\n", tp.ReportHeader("Week 7 of 2026 for project Acme"))
	assert.Equal(t, "---++ Stories for alice\n", tp.SectionHeader("Stories for alice"))
	assert.Equal(t, "   * *Monday* - fixed the build\n", tp.StoryLine("Monday", "fixed the build"))
}

func renderFixture(t *testing.T) *PeriodOfWork {
	t.Helper()
	monday := date(2026, time.February, 9)
	tasks := []domain.Task{
		{User: bob, Date: monday, Length: time.Hour, Text: "Fix   bug"},
		{User: alice, Date: monday.AddDate(0, 0, 1), Length: 90 * time.Minute, Text: "Wrote the   importer", Story: "shipped v2"},
		{User: alice, Date: monday.AddDate(0, 0, 1), Length: 165 * time.Minute, Text: "Code review"},
	}
	return newTestPeriod(t, tasks, monday, 7)
}

func fixtureLabel() Label {
	return Label{Year: 2026, Week: 7, Scope: "project Acme"}
}

func TestRenderer_GeneratePlain(t *testing.T) {
	period := renderFixture(t)
	renderer := NewRenderer(NewPlainPresenter(80), fixtureLabel())

	output := renderer.Generate(period)
	lines := strings.Split(output, "\n")

	assert.Contains(t, lines, "Week 7 of 2026 for project Acme")
	assert.Contains(t, lines, "             09/02  10/02  11/02  12/02  13/02  14/02  15/02  Total  ")
	assert.Contains(t, lines, "alice        00:00  04:15  00:00  00:00  00:00  00:00  00:00  04:15  ")
	assert.Contains(t, lines, "bob          01:00  00:00  00:00  00:00  00:00  00:00  00:00  01:00  ")
	assert.Contains(t, lines, "everyone     01:00  04:15  00:00  00:00  00:00  00:00  00:00  05:15  ")
	assert.Contains(t, lines, "Stories for alice")
	assert.Contains(t, lines, "Tuesday    Wrote the importer shipped v2 Code review")
	assert.Contains(t, lines, "Stories for bob")
	assert.Contains(t, lines, "Monday     Fix bug")

	// alice has no tasks on the first day, so her Monday line is bare
	aliceSection := output[strings.Index(output, "Stories for alice"):]
	assert.Contains(t, strings.Split(aliceSection, "\n"), "Monday")
}

func TestRenderer_GenerateTwiki(t *testing.T) {
	period := renderFixture(t)
	renderer := NewRenderer(NewTwikiPresenter(), fixtureLabel())

	output := renderer.Generate(period)
	lines := strings.Split(output, "\n")

	assert.Contains(t, lines, "---+ Week 7 of 2026 for project Acme")
	assert.Contains(t, lines, "| * * | *09/02* | *10/02* | *11/02* | *12/02* | *13/02* | *14/02* | *15/02* | *Total* |")
	assert.Contains(t, lines, "| *alice* | 00:00 | 04:15 | 00:00 | 00:00 | 00:00 | 00:00 | 00:00 | 04:15 |")
	assert.Contains(t, lines, "| *everyone* | 01:00 | 04:15 | 00:00 | 00:00 | 00:00 | 00:00 | 00:00 | 05:15 |")
	assert.Contains(t, lines, "---++ Stories for alice")
	assert.Contains(t, lines, "   * *Tuesday* - Wrote the importer shipped v2 Code review")
}

func TestRenderer_GenerateIsDeterministic(t *testing.T) {
	period := renderFixture(t)

	for _, presenter := range []Presenter{NewPlainPresenter(80), NewTwikiPresenter()} {
		renderer := NewRenderer(presenter, fixtureLabel())
		assert.Equal(t, renderer.Generate(period), renderer.Generate(period))
	}
}

func TestRenderer_BothFormatsShareTraversal(t *testing.T) {
	// Same period, both presenters: the table must agree cell for cell
	// even though the framing differs.
	period := renderFixture(t)

	plain := NewRenderer(NewPlainPresenter(80), fixtureLabel()).Generate(period)
	twiki := NewRenderer(NewTwikiPresenter(), fixtureLabel()).Generate(period)

	for _, value := range []string{"04:15", "01:00", "05:15"} {
		assert.Contains(t, plain, value)
		assert.Contains(t, twiki, value)
	}
}
