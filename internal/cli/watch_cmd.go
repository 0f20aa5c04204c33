package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const watchInterval = time.Second

func newWatchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Show today's total, refreshed every second",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !a.interactive() {
				now := a.now()
				resp, err := a.Status.Status(ctx, app.StatusRequest{Now: &now})
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStatusPanel(resp)+"\n")
				return nil
			}

			p := tea.NewProgram(
				newWatchModel(ctx, a.Status, a.now),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(watchModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

type watchKeyMap struct {
	Quit key.Binding
}

func defaultWatchKeys() watchKeyMap {
	return watchKeyMap{
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type watchTickMsg time.Time

type watchStatusMsg struct {
	resp *app.StatusResponse
	err  error
}

// watchModel polls Status once per tick and renders the status panel. It
// never mutates the log.
type watchModel struct {
	ctx     context.Context
	status  app.StatusUseCase
	now     func() time.Time
	keys    watchKeyMap
	spinner spinner.Model

	resp     *app.StatusResponse
	err      error
	quitting bool
}

func newWatchModel(ctx context.Context, status app.StatusUseCase, now func() time.Time) watchModel {
	return watchModel{
		ctx:    ctx,
		status: status,
		now:    now,
		keys:   defaultWatchKeys(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(formatter.StylePurple),
		),
	}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchStatus(), watchTick())
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case watchTickMsg:
		return m, tea.Batch(m.fetchStatus(), watchTick())

	case watchStatusMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.resp = msg.resp
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.resp == nil {
		return m.spinner.View() + " " + formatter.Dim("Loading...") + "\n"
	}

	var b strings.Builder
	b.WriteString(formatter.FormatStatusPanel(m.resp))
	b.WriteString("\n")
	if m.resp.Active {
		b.WriteString(m.spinner.View() + " ")
	}
	b.WriteString(formatter.Dim(m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc))
	b.WriteString("\n")
	return b.String()
}

func (m watchModel) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		now := m.now()
		resp, err := m.status.Status(m.ctx, app.StatusRequest{Now: &now})
		return watchStatusMsg{resp: resp, err: err}
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(watchInterval, func(t time.Time) tea.Msg {
		return watchTickMsg(t)
	})
}
