package cli

import (
	"fmt"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStartCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start tracking a work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			resp, err := a.Start.Start(cmd.Context(), app.StartRequest{Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStart(resp))
			return nil
		},
	}
}

func newStopCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active work session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			resp, err := a.Stop.Stop(cmd.Context(), app.StopRequest{Now: &now})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStop(resp))
			return nil
		},
	}
}
