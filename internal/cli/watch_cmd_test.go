package cli

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type fixedStatus struct {
	resp *app.StatusResponse
	err  error
}

func (f fixedStatus) Status(context.Context, app.StatusRequest) (*app.StatusResponse, error) {
	return f.resp, f.err
}

func watchNow() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }

func TestWatchModel_RendersFetchedStatus(t *testing.T) {
	since := watchNow().Add(-30 * time.Minute)
	status := fixedStatus{resp: &app.StatusResponse{
		Day: "2024-06-01", Seconds: 1800, Sessions: 1, Active: true, ActiveSince: &since,
	}}
	m := newWatchModel(context.Background(), status, watchNow)

	assert.Contains(t, stripANSI(m.View()), "Loading...")

	msg := m.fetchStatus()()
	updated, cmd := m.Update(msg)
	assert.Nil(t, cmd)

	view := stripANSI(updated.View())
	assert.Contains(t, view, "2024-06-01")
	assert.Contains(t, view, "0h 30m")
	assert.Contains(t, view, "q quit")
}

func TestWatchModel_TickRefetches(t *testing.T) {
	m := newWatchModel(context.Background(), fixedStatus{resp: &app.StatusResponse{}}, watchNow)

	_, cmd := m.Update(watchTickMsg(watchNow()))
	require.NotNil(t, cmd)
	_, isBatch := cmd().(tea.BatchMsg)
	assert.True(t, isBatch)
}

func TestWatchModel_QuitKey(t *testing.T) {
	m := newWatchModel(context.Background(), fixedStatus{}, watchNow)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestWatchModel_StatusErrorQuits(t *testing.T) {
	boom := errors.New("database is locked")
	m := newWatchModel(context.Background(), fixedStatus{err: boom}, watchNow)

	updated, cmd := m.Update(m.fetchStatus()())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, stripANSI(updated.View()), "database is locked")
	assert.ErrorIs(t, updated.(watchModel).err, boom)
}

func TestWatchCmd_NonInteractivePrintsOnce(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	a, _ := testApp(t, clock)

	out, err := executeCmd(t, a, "watch")
	require.NoError(t, err)
	assert.Contains(t, out, "No work tracked today")
	assert.Contains(t, out, "○ IDLE")
}

func TestWatchModel_DriverSettlesAfterInit(t *testing.T) {
	status := fixedStatus{resp: &app.StatusResponse{Day: "2024-06-01", Seconds: 3600, Sessions: 1}}
	d := teatest.New(t, newWatchModel(context.Background(), status, watchNow))

	d.DrainInit()
	view := stripANSI(d.View())
	assert.Contains(t, view, "1h 0m")
	assert.Contains(t, view, "○ IDLE")
	assert.Positive(t, d.Dropped(), "the refresh tick is left pending")

	d.PressKey('q')
	assert.True(t, d.Quitting)
}

func TestWatchModel_QuitBindings(t *testing.T) {
	status := fixedStatus{resp: &app.StatusResponse{Day: "2024-06-01"}}
	tests := []struct {
		name  string
		press func(d *teatest.Driver)
	}{
		{name: "q", press: func(d *teatest.Driver) { d.PressKey('q') }},
		{name: "esc", press: func(d *teatest.Driver) { d.PressEsc() }},
		{name: "ctrl+c", press: func(d *teatest.Driver) { d.PressCtrlC() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := teatest.New(t, newWatchModel(context.Background(), status, watchNow))
			d.DrainInit()
			require.False(t, d.Quitting)

			tt.press(d)
			assert.True(t, d.Quitting)
			assert.Empty(t, d.View())
		})
	}
}
