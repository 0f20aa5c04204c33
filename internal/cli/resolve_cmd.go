package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/cli/formatter"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newResolveCmd(a *App) *cobra.Command {
	var at clockFlag
	var yes bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Close a session left open on an earlier day",
		Long: "Close a session left open on an earlier day.\n\n" +
			"By default the session ends at the last moment of its day. Use --at HH:MM to pick the end time.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			now := a.now()

			preview, err := a.Resolve.Resolve(ctx, app.ResolveRequest{Now: &now, DryRun: true})
			if err != nil {
				return err
			}
			if preview.Notice != domain.NoticeNone {
				fmt.Fprint(out, formatter.FormatResolve(preview))
				return nil
			}

			req := app.ResolveRequest{Now: &now}
			endAt := preview.EndedAt
			if at.set {
				end, err := at.on(preview.Day, now.Location())
				if err != nil {
					return err
				}
				req.At = &end
				endAt = end
			}

			if !yes && a.interactive() {
				title := fmt.Sprintf("Close the session started %s %s at %s?",
					preview.Day, formatter.ClockTime(preview.StartedAt), endAt.Format(time.DateTime))
				ok, err := a.confirm(title)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, formatter.Dim("Cancelled."))
					return nil
				}
			}

			resp, err := a.Resolve.Resolve(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprint(out, formatter.FormatResolve(resp))
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "End time on the session's day")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// clockFlag is a wall-clock time of day given as HH:MM.
type clockFlag struct {
	hour, minute int
	set          bool
}

var _ pflag.Value = (*clockFlag)(nil)

func (c *clockFlag) String() string {
	if !c.set {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c *clockFlag) Set(s string) error {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return fmt.Errorf("want HH:MM, got %q", s)
	}
	c.hour, c.minute, c.set = t.Hour(), t.Minute(), true
	return nil
}

func (c *clockFlag) Type() string {
	return "HH:MM"
}

// on places the clock time on day in loc.
func (c *clockFlag) on(day domain.DayKey, loc *time.Location) (time.Time, error) {
	midnight, err := day.Date(loc)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), c.hour, c.minute, 0, 0, loc), nil
}
