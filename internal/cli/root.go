package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"timereport/internal/config"
	"timereport/internal/logging"
)

// RootCommand represents the timereport command
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	opts   ReportOptions
}

// NewRootCommand creates the root cobra command with all flags
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "timereport",
		Short: "Generate a weekly time-tracking report",
		Long: `timereport fetches task records from a tracker service and renders a
weekly report: an hours table per user and day, plus a story section per
user, in plain text or TWiki markup.

At least one scope filter (--project, --customer or --user) is required.
Filter values are comma-separated search terms; an entity matches only if
every term matches it, and the match must be unambiguous.

EXAMPLES:
  timereport --project acme                  # this week's report for acme
  timereport --user alice --week 7 --year 2026
  timereport --customer "corp" --twiki       # TWiki markup output
  timereport --project acme --xlsx hours.xlsx
  timereport --project acme --db tasks.db    # read from a local task store

CONFIGURATION:
  Credentials and the service URL come from ~/.timereport.yaml or the
  environment:
    TR_SERVER_URL       Tracker service base URL
    TR_USERNAME         Tracker login
    TR_PASSWORD         Tracker password
    TR_DB_PATH          Local task store (bypasses the service)
    TR_REPORT_NUM_DAYS  Days per report window (default: 7)
    TR_DEBUG            Enable debug output`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root.applyFlagOverrides()
			if cfg.Application.Verbose {
				logging.SetVerbose(true)
			}

			ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
			defer cancel()

			handler := NewReportCommand(root.config, os.Stdout)
			return handler.Execute(ctx, root.opts)
		},
	}

	root.addFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

func (r *RootCommand) addFlags() {
	flags := r.cmd.Flags()

	flags.StringVar(&r.opts.Project, "project", "", "Scope the report to one project (comma-separated search terms)")
	flags.StringVar(&r.opts.Customer, "customer", "", "Scope the report to one customer (comma-separated search terms)")
	flags.StringVar(&r.opts.User, "user", "", "Scope the report to one user (comma-separated search terms)")
	flags.IntVar(&r.opts.Year, "year", 0, "Report year (default: current ISO year)")
	flags.IntVar(&r.opts.Week, "week", 0, "Report ISO week number (default: current week)")
	flags.BoolVar(&r.opts.Twiki, "twiki", false, "Render TWiki markup instead of plain text")
	flags.StringVar(&r.opts.XLSXPath, "xlsx", "", "Also write the hours table to this XLSX file")

	flags.String("server", "", "Tracker service URL (overrides TR_SERVER_URL)")
	flags.String("username", "", "Tracker login (overrides TR_USERNAME)")
	flags.String("password", "", "Tracker password (overrides TR_PASSWORD)")
	flags.String("db", "", "Local task store path, bypassing the service (overrides TR_DB_PATH)")
}

// applyFlagOverrides copies connection flags over the loaded configuration
func (r *RootCommand) applyFlagOverrides() {
	flags := r.cmd.Flags()

	if server, _ := flags.GetString("server"); server != "" {
		r.config.Service.URL = server
	}
	if username, _ := flags.GetString("username"); username != "" {
		r.config.Service.Username = username
	}
	if password, _ := flags.GetString("password"); password != "" {
		r.config.Service.Password = password
	}
	if db, _ := flags.GetString("db"); db != "" {
		r.config.Database.Path = db
	}
}
