package report

import (
	"context"
	"testing"
	"time"

	"timereport/internal/domain"
	"timereport/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSource serves a fixed task list, filtered by the requested range
// the way the real service would.
type stubSource struct {
	tasks []domain.Task
	err   error
}

func (s *stubSource) TasksInRange(ctx context.Context, start, end time.Time, filter domain.Filter) ([]domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	var matched []domain.Task
	for _, task := range s.tasks {
		if task.Day().Before(domain.Day(start)) || task.Day().After(domain.Day(end)) {
			continue
		}
		matched = append(matched, task)
	}
	return matched, nil
}

func (s *stubSource) Projects(ctx context.Context) ([]domain.Project, error)   { return nil, nil }
func (s *stubSource) Customers(ctx context.Context) ([]domain.Customer, error) { return nil, nil }
func (s *stubSource) Users(ctx context.Context) ([]domain.User, error)         { return nil, nil }

var (
	alice = domain.User{Login: "alice", Name: "Alice Cooper"}
	bob   = domain.User{Login: "bob", Name: "Bob Marley"}
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func task(user domain.User, day time.Time, length time.Duration, text string) domain.Task {
	return domain.Task{User: user, Date: day, Length: length, Text: text}
}

func newTestPeriod(t *testing.T, tasks []domain.Task, start time.Time, numDays int) *PeriodOfWork {
	t.Helper()
	period, err := NewPeriodOfWork(context.Background(), &stubSource{tasks: tasks}, start, numDays, domain.Filter{})
	require.NoError(t, err)
	return period
}

func TestNewPeriodOfWork(t *testing.T) {
	monday := date(2026, time.February, 9)

	tests := []struct {
		name          string
		tasks         []domain.Task
		expectedTasks int
		expectedUsers []string
	}{
		{
			name:          "empty window has no tasks and no users",
			tasks:         nil,
			expectedTasks: 0,
			expectedUsers: []string{},
		},
		{
			name: "tasks outside the window are excluded",
			tasks: []domain.Task{
				task(alice, monday.AddDate(0, 0, -1), time.Hour, "before"),
				task(alice, monday, time.Hour, "first day"),
				task(alice, monday.AddDate(0, 0, 6), time.Hour, "last day"),
				task(alice, monday.AddDate(0, 0, 7), time.Hour, "after"),
			},
			expectedTasks: 2,
			expectedUsers: []string{"alice"},
		},
		{
			name: "users come only from observed tasks, ordered by login",
			tasks: []domain.Task{
				task(bob, monday, time.Hour, "b"),
				task(alice, monday.AddDate(0, 0, 1), time.Hour, "a"),
				task(bob, monday.AddDate(0, 0, 2), time.Hour, "b2"),
			},
			expectedTasks: 3,
			expectedUsers: []string{"alice", "bob"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := newTestPeriod(t, tt.tasks, monday, 7)

			assert.Len(t, period.Tasks(), tt.expectedTasks)

			logins := make([]string, 0, len(period.Users()))
			for _, user := range period.Users() {
				logins = append(logins, user.Login)
			}
			assert.Equal(t, tt.expectedUsers, logins)
		})
	}
}

func TestNewPeriodOfWork_FetchFailureIsFatal(t *testing.T) {
	source := &stubSource{err: errors.NewUpstreamError("fetch tasks", assert.AnError)}

	period, err := NewPeriodOfWork(context.Background(), source, date(2026, time.February, 9), 7, domain.Filter{})

	assert.Nil(t, period)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUpstream))
}

func TestPeriodOfWork_FilterTasks(t *testing.T) {
	monday := date(2026, time.February, 9)
	tuesday := monday.AddDate(0, 0, 1)
	tasks := []domain.Task{
		task(alice, monday, time.Hour, "alice monday"),
		task(alice, tuesday, time.Hour, "alice tuesday"),
		task(bob, tuesday, time.Hour, "bob tuesday"),
	}
	period := newTestPeriod(t, tasks, monday, 7)

	offsetOne := 1

	tests := []struct {
		name     string
		query    TaskQuery
		expected []string
	}{
		{
			name:     "no constraint matches all",
			query:    TaskQuery{},
			expected: []string{"alice monday", "alice tuesday", "bob tuesday"},
		},
		{
			name:     "date constraint",
			query:    TaskQuery{Date: &tuesday},
			expected: []string{"alice tuesday", "bob tuesday"},
		},
		{
			name:     "day offset resolves against the window start",
			query:    TaskQuery{DayOffset: &offsetOne},
			expected: []string{"alice tuesday", "bob tuesday"},
		},
		{
			name:     "user constraint",
			query:    TaskQuery{User: &alice},
			expected: []string{"alice monday", "alice tuesday"},
		},
		{
			name:     "date and user combined",
			query:    TaskQuery{Date: &tuesday, User: &bob},
			expected: []string{"bob tuesday"},
		},
		{
			name:     "date takes precedence over a conflicting day offset",
			query:    TaskQuery{Date: &monday, DayOffset: &offsetOne},
			expected: []string{"alice monday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := period.FilterTasks(tt.query)

			texts := make([]string, 0, len(matched))
			for _, task := range matched {
				texts = append(texts, task.Text)
			}
			assert.Equal(t, tt.expected, texts)
		})
	}
}

func TestPeriodOfWork_FilterTasksIsRestartable(t *testing.T) {
	monday := date(2026, time.February, 9)
	period := newTestPeriod(t, []domain.Task{task(alice, monday, time.Hour, "a")}, monday, 7)

	first := period.FilterTasks(TaskQuery{User: &alice})
	second := period.FilterTasks(TaskQuery{User: &alice})

	assert.Equal(t, first, second)
}

func TestPeriodOfWork_AllDates(t *testing.T) {
	monday := date(2026, time.February, 9)
	period := newTestPeriod(t, nil, monday, 7)

	dates := period.AllDates()

	require.Len(t, dates, 7)
	for i, d := range dates {
		assert.Equal(t, monday.AddDate(0, 0, i), d)
	}
}

func TestPeriodOfWork_TimeWorked(t *testing.T) {
	monday := date(2026, time.February, 9)
	tuesday := monday.AddDate(0, 0, 1)
	tasks := []domain.Task{
		task(alice, monday, 90*time.Minute, "setup"),
		task(alice, monday, 165*time.Minute, "reviews"),
		task(bob, monday, 30*time.Minute, "standup"),
		task(alice, tuesday, time.Hour, "deploy"),
	}
	period := newTestPeriod(t, tasks, monday, 7)

	tests := []struct {
		name     string
		query    TaskQuery
		expected string
	}{
		{
			name:     "lengths 1:30 and 2:45 on the same day sum to 04:15",
			query:    TaskQuery{Date: &monday, User: &alice},
			expected: "04:15",
		},
		{
			name:     "per-day total across users",
			query:    TaskQuery{Date: &monday},
			expected: "04:45",
		},
		{
			name:     "per-user total across the window",
			query:    TaskQuery{User: &alice},
			expected: "05:15",
		},
		{
			name:     "window total with no constraints",
			query:    TaskQuery{},
			expected: "05:45",
		},
		{
			name:     "no matching tasks means zero",
			query:    TaskQuery{Date: &tuesday, User: &bob},
			expected: "00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(period.TimeWorked(tt.query)))
		})
	}
}
