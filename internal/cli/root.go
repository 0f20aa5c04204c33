package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/service"
	"github.com/spf13/cobra"
)

// App holds the use cases and process hooks the commands run against.
type App struct {
	Start   app.StartUseCase
	Stop    app.StopUseCase
	Status  app.StatusUseCase
	Report  app.ReportUseCase
	Resolve app.ResolveUseCase

	// ReportDays is the default for report --days.
	ReportDays int

	// Setup wires the use cases before a subcommand runs. It is skipped
	// when only usage is printed, so no storage is touched.
	Setup func(opts SetupOptions) error

	Now           func() time.Time
	IsInteractive func() bool
	// Confirm asks a yes/no question. Nil uses a huh confirm form.
	Confirm func(title string) (bool, error)
}

// SetupOptions carries root flags into App.Setup.
type SetupOptions struct {
	Verbose bool
	ErrOut  io.Writer
}

// Use points every use case at one tracker.
func (a *App) Use(tracker service.TrackerService) {
	a.Start = tracker
	a.Stop = tracker
	a.Status = tracker
	a.Report = tracker
	a.Resolve = tracker
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) reportDays() int {
	if a.ReportDays > 0 {
		return a.ReportDays
	}
	return app.DefaultReportDays
}

// NewRootCmd creates the top-level "worktime" command. Running it without a
// subcommand, or with one it does not know, prints usage and succeeds.
func NewRootCmd(a *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "worktime",
		Short:         "Track work sessions per day",
		Long:          "Track work sessions per day.\n\nRun `worktime start` at login and `worktime stop` at logout.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.Setup == nil || !needsStore(cmd) {
				return nil
			}
			return a.Setup(SetupOptions{Verbose: verbose, ErrOut: cmd.ErrOrStderr()})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				fmt.Fprintf(out, "Unknown command %q. Available commands: start, stop, status, report, resolve, watch\n\n", args[0])
			}
			fmt.Fprint(out, cmd.UsageString())
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log use-case telemetry to stderr")

	root.AddCommand(
		newStartCmd(a),
		newStopCmd(a),
		newStatusCmd(a),
		newReportCmd(a),
		newResolveCmd(a),
		newWatchCmd(a),
	)
	return root
}

// needsStore reports whether cmd touches the session log. The root usage
// screen and cobra's help and completion commands never do.
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == cmd.Root() {
			break
		}
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return cmd != cmd.Root()
}
