package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"timereport/internal/config"
	"timereport/internal/domain"
	"timereport/internal/errors"
	"timereport/internal/logging"
	"timereport/internal/report"
	"timereport/internal/tracker"
	"timereport/internal/tracker/sqlite"
	"timereport/internal/validation"
)

// ReportOptions captures the flag values of one invocation
type ReportOptions struct {
	Project  string
	Customer string
	User     string
	Year     int
	Week     int
	Twiki    bool
	XLSXPath string
}

// ReportCommand handles the report generation flow: validate, resolve the
// filter, aggregate the week, render.
type ReportCommand struct {
	config       *config.Config
	out          io.Writer
	validator    *validation.ReportRequestValidator
	errorHandler *ErrorHandler

	// newSource is swappable in tests
	newSource func(ctx context.Context) (tracker.Source, func(), error)
}

// NewReportCommand creates a report command handler writing to out
func NewReportCommand(cfg *config.Config, out io.Writer) *ReportCommand {
	rc := &ReportCommand{
		config:       cfg,
		out:          out,
		validator:    validation.NewReportRequestValidator(),
		errorHandler: NewErrorHandler(),
	}
	rc.newSource = rc.openSource
	return rc
}

// Execute generates the report for the given options
func (rc *ReportCommand) Execute(ctx context.Context, opts ReportOptions) error {
	currentYear, currentWeek := time.Now().ISOWeek()
	if opts.Year == 0 {
		opts.Year = currentYear
	}
	if opts.Week == 0 {
		opts.Week = currentWeek
	}

	req := validation.ReportRequest{
		Project:  opts.Project,
		Customer: opts.Customer,
		User:     opts.User,
		Year:     opts.Year,
		Week:     opts.Week,
		NumDays:  rc.config.Report.NumDays,
	}
	if err := rc.validator.Validate(req); err != nil {
		return rc.errorHandler.Handle("generate report", err)
	}

	source, closeSource, err := rc.newSource(ctx)
	if err != nil {
		return rc.errorHandler.Handle("connect to task source", err)
	}
	defer closeSource()

	filter, err := rc.resolveFilter(ctx, source, opts)
	if err != nil {
		return rc.errorHandler.Handle("resolve filter", err)
	}

	start := report.WeekStart(opts.Year, opts.Week)
	period, err := report.NewPeriodOfWork(ctx, source, start, rc.config.Report.NumDays, filter)
	if err != nil {
		return rc.errorHandler.Handle("fetch tasks", err)
	}

	var presenter report.Presenter
	if opts.Twiki {
		presenter = report.NewTwikiPresenter()
	} else {
		presenter = report.NewPlainPresenter(rc.config.Report.PlainWidth)
	}
	label := report.Label{Year: opts.Year, Week: opts.Week, Scope: filter.Describe()}
	renderer := report.NewRenderer(presenter, label)

	if _, err := fmt.Fprint(rc.out, renderer.Generate(period)); err != nil {
		return rc.errorHandler.Handle("write report", err)
	}

	if opts.XLSXPath != "" {
		if err := report.NewExcelExporter().Export(period, label, opts.XLSXPath); err != nil {
			return rc.errorHandler.Handle("export spreadsheet", err)
		}
		logging.Debugf("spreadsheet written to %s\n", opts.XLSXPath)
	}

	return nil
}

// resolveFilter turns the textual search criteria into concrete entity
// references. Any criterion that matches zero or several entities aborts
// before the task fetch.
func (rc *ReportCommand) resolveFilter(ctx context.Context, source tracker.Source, opts ReportOptions) (domain.Filter, error) {
	var filter domain.Filter

	if opts.Project != "" {
		projects, err := source.Projects(ctx)
		if err != nil {
			return filter, err
		}
		project, err := domain.SelectOne(projects, opts.Project, "project")
		if err != nil {
			return filter, err
		}
		filter.Project = &project
	}

	if opts.Customer != "" {
		customers, err := source.Customers(ctx)
		if err != nil {
			return filter, err
		}
		customer, err := domain.SelectOne(customers, opts.Customer, "customer")
		if err != nil {
			return filter, err
		}
		filter.Customer = &customer
	}

	if opts.User != "" {
		users, err := source.Users(ctx)
		if err != nil {
			return filter, err
		}
		user, err := domain.SelectOne(users, opts.User, "user")
		if err != nil {
			return filter, err
		}
		filter.User = &user
	}

	return filter, nil
}

// openSource picks the task source: a local database when one is
// configured, the tracker service otherwise. The HTTP path logs in before
// anything else; a failed login is fatal.
func (rc *ReportCommand) openSource(ctx context.Context) (tracker.Source, func(), error) {
	if rc.config.Database.Path != "" {
		store, err := sqlite.New(rc.config.Database.Path, rc.config.Database.QueryTimeout)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	}

	if rc.config.Service.URL == "" {
		return nil, nil, errors.NewConfigurationError("no task source configured (set TR_SERVER_URL or use --db)")
	}

	client := tracker.NewClient(rc.config.Service.URL, rc.config.Service.Timeout)
	if err := client.Login(ctx, rc.config.Service.Username, rc.config.Service.Password); err != nil {
		return nil, nil, err
	}
	return client, func() {}, nil
}
