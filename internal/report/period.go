package report

import (
	"context"
	"sort"
	"time"

	"timereport/internal/domain"
	"timereport/internal/logging"
	"timereport/internal/tracker"
)

// PeriodOfWork is one contiguous window of NumDays calendar days starting
// at Start, holding every task the source returned for the window and the
// distinct users observed in those tasks. It is built once per report
// request and not mutated afterwards.
type PeriodOfWork struct {
	Start   time.Time
	NumDays int
	Filter  domain.Filter

	users []domain.User
	tasks []domain.Task
}

// TaskQuery narrows FilterTasks and TimeWorked to a date and/or user.
// DayOffset resolves to Start+offset days; when both Date and DayOffset
// are set, Date wins. A zero query matches every task in the window.
type TaskQuery struct {
	Date      *time.Time
	DayOffset *int
	User      *domain.User
}

// NewPeriodOfWork fetches all tasks in [start, start+numDays-1] matching
// the filter and indexes the users observed in them. A fetch failure
// aborts the report; there is no partial aggregation.
func NewPeriodOfWork(ctx context.Context, source tracker.Source, start time.Time, numDays int, filter domain.Filter) (*PeriodOfWork, error) {
	start = domain.Day(start)
	end := start.AddDate(0, 0, numDays-1)

	tasks, err := source.TasksInRange(ctx, start, end, filter)
	if err != nil {
		return nil, err
	}
	logging.Debugf("period %s +%dd: %d tasks\n", start.Format("2006-01-02"), numDays, len(tasks))

	return &PeriodOfWork{
		Start:   start,
		NumDays: numDays,
		Filter:  filter,
		users:   distinctUsers(tasks),
		tasks:   tasks,
	}, nil
}

// Users returns the distinct users observed in the window, ordered by
// login. A user with no tasks in range never appears.
func (p *PeriodOfWork) Users() []domain.User {
	return p.users
}

// Tasks returns every task in the window
func (p *PeriodOfWork) Tasks() []domain.Task {
	return p.tasks
}

// FilterTasks returns the tasks matching the query, preserving fetch
// order. The result is a fresh slice over the fixed in-memory list; no
// external resource is touched.
func (p *PeriodOfWork) FilterTasks(q TaskQuery) []domain.Task {
	date := p.resolveDate(q)

	var matched []domain.Task
	for _, task := range p.tasks {
		if date != nil && !domain.SameDay(task.Date, *date) {
			continue
		}
		if q.User != nil && task.User.Login != q.User.Login {
			continue
		}
		matched = append(matched, task)
	}
	return matched
}

// AllDates returns the NumDays consecutive calendar dates of the window
func (p *PeriodOfWork) AllDates() []time.Time {
	dates := make([]time.Time, p.NumDays)
	for i := range dates {
		dates[i] = p.Start.AddDate(0, 0, i)
	}
	return dates
}

// TimeWorked sums the lengths of all tasks matching the query. The sum is
// exact integer duration arithmetic; no tasks means zero.
func (p *PeriodOfWork) TimeWorked(q TaskQuery) time.Duration {
	var total time.Duration
	for _, task := range p.FilterTasks(q) {
		total += task.Length
	}
	return total
}

// resolveDate picks the effective date constraint: an explicit date takes
// precedence over a day offset.
func (p *PeriodOfWork) resolveDate(q TaskQuery) *time.Time {
	if q.Date != nil {
		d := domain.Day(*q.Date)
		return &d
	}
	if q.DayOffset != nil {
		d := p.Start.AddDate(0, 0, *q.DayOffset)
		return &d
	}
	return nil
}

// distinctUsers collects the unique users from a task list, sorted by
// login for deterministic rendering.
func distinctUsers(tasks []domain.Task) []domain.User {
	seen := make(map[string]domain.User)
	for _, task := range tasks {
		if _, ok := seen[task.User.Login]; !ok {
			seen[task.User.Login] = task.User
		}
	}

	users := make([]domain.User, 0, len(seen))
	for _, user := range seen {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Login < users[j].Login
	})
	return users
}
