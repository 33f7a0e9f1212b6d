package tracker

import (
	"context"
	"time"

	"timereport/internal/domain"
)

// Source supplies task records and the entity collections a report can be
// scoped by. The report pipeline passes filters through unmodified;
// matching tasks against the filter is the source's job.
type Source interface {
	// TasksInRange returns every task whose date falls in [start, end]
	// (inclusive on both ends) and which matches the filter.
	TasksInRange(ctx context.Context, start, end time.Time, filter domain.Filter) ([]domain.Task, error)

	Projects(ctx context.Context) ([]domain.Project, error)
	Customers(ctx context.Context) ([]domain.Customer, error)
	Users(ctx context.Context) ([]domain.User, error)
}
