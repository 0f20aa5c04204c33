package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/repository"
	"github.com/alexanderramin/worktime/internal/service"
	"github.com/alexanderramin/worktime/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClock is a settable clock shared by a test App.
type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

// testApp wires a full App over a JSON store in a temp dir.
func testApp(t *testing.T, clock *testClock) (*App, repository.SessionLogRepo) {
	t.Helper()
	repo := repository.NewJSONSessionLogRepo(filepath.Join(t.TempDir(), "timelogs.json"), nil)
	a := &App{Now: clock.Now}
	a.Use(service.NewTrackerService(repo))
	return a, repo
}

func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func TestRootCmd_NoArgsPrintsUsage(t *testing.T) {
	a, _ := testApp(t, &testClock{})

	out, err := executeCmd(t, a)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "start")
	assert.Contains(t, out, "report")
}

func TestRootCmd_UnknownCommandPrintsUsage(t *testing.T) {
	a, _ := testApp(t, &testClock{})

	out, err := executeCmd(t, a, "pause")
	require.NoError(t, err)
	assert.Contains(t, out, `Unknown command "pause"`)
	assert.Contains(t, out, "Usage:")
}

func TestRootCmd_StorelessCommandsSkipSetup(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "usage", args: nil},
		{name: "help", args: []string{"help"}},
		{name: "help for a command", args: []string{"help", "start"}},
		{name: "completion", args: []string{"completion", "bash"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			a := &App{Setup: func(SetupOptions) error { called = true; return nil }}

			_, err := executeCmd(t, a, tt.args...)
			require.NoError(t, err)
			assert.False(t, called)
		})
	}
}

func TestRootCmd_SetupReceivesVerbose(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	repo := repository.NewJSONSessionLogRepo(filepath.Join(t.TempDir(), "timelogs.json"), nil)
	var got SetupOptions
	a := &App{Now: clock.Now}
	a.Setup = func(opts SetupOptions) error {
		got = opts
		a.Use(service.NewTrackerService(repo))
		return nil
	}

	_, err := executeCmd(t, a, "status", "-v")
	require.NoError(t, err)
	assert.True(t, got.Verbose)
	assert.NotNil(t, got.ErrOut)
}

func TestStartStopStatus_Flow(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)

	out, err := executeCmd(t, a, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started tracking at 09:00:00")

	clock.t = clock.t.Add(10 * time.Minute)
	out, err = executeCmd(t, a, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "You already have an active work session")

	clock.t = clock.t.Add(50 * time.Minute)
	out, err = executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Currently working today: 1h 0m")

	clock.t = clock.t.Add(61 * time.Second)
	out, err = executeCmd(t, a, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "Session duration: 1h 1m")

	out, err = executeCmd(t, a, "stop")
	require.NoError(t, err)
	assert.Contains(t, out, "No active work session found")

	out, err = executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Worked today: 1h 1m")

	log, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, log["2024-06-01"], 1)
	assert.False(t, log["2024-06-01"][0].IsOpen())
}

func TestStatus_NoWorkToday(t *testing.T) {
	a, _ := testApp(t, &testClock{t: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)})

	out, err := executeCmd(t, a, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "No work tracked today")
}

func TestReportCmd(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)

	out, err := executeCmd(t, a, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "No work logs found")

	first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), testutil.NewTestSessionLog(testutil.WithWorkedDays(first, 10))))

	out, err = executeCmd(t, a, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-10")
	assert.Contains(t, out, "2024-06-04")
	assert.NotContains(t, out, "2024-06-03")
	assert.Contains(t, out, "7h 0m")

	out, err = executeCmd(t, a, "report", "--days", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-09")
	assert.NotContains(t, out, "2024-06-08")
}

func TestReportCmd_DefaultDaysFromApp(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)
	a.ReportDays = 3
	first := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), testutil.NewTestSessionLog(testutil.WithWorkedDays(first, 10))))

	out, err := executeCmd(t, a, "report")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-06-08")
	assert.NotContains(t, out, "2024-06-07")
}

func TestReportCmd_InvalidDays(t *testing.T) {
	a, _ := testApp(t, &testClock{t: time.Now()})

	_, err := executeCmd(t, a, "report", "--days", "0")
	assert.Error(t, err)
}

func seedStale(t *testing.T, repo repository.SessionLogRepo) {
	t.Helper()
	started := time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), testutil.NewTestSessionLog(
		testutil.WithDay("2024-06-01", testutil.OpenSession(domain.EpochSeconds(started))))))
}

func TestResolveCmd_StaleSessionFlow(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)
	seedStale(t, repo)

	out, err := executeCmd(t, a, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "An earlier work session was never stopped")
	assert.Contains(t, out, "worktime resolve")

	out, err = executeCmd(t, a, "resolve", "--at", "18:30")
	require.NoError(t, err)
	assert.Contains(t, out, "Closed session on 2024-06-01 at 2024-06-01 18:30:00.")
	assert.Contains(t, out, "2h 30m")

	out, err = executeCmd(t, a, "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, "No stale work session found")

	out, err = executeCmd(t, a, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "Started tracking")
}

func TestResolveCmd_ConfirmDeclined(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)
	seedStale(t, repo)

	var asked string
	a.IsInteractive = func() bool { return true }
	a.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}

	out, err := executeCmd(t, a, "resolve")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, asked, "2024-06-01 16:00:00")
	assert.Contains(t, asked, "2024-06-01 23:59:59")

	log, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, log["2024-06-01"][0].IsOpen())
}

func TestResolveCmd_YesSkipsConfirm(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)
	seedStale(t, repo)
	a.IsInteractive = func() bool { return true }
	a.Confirm = func(string) (bool, error) {
		t.Fatal("confirm must not be called with --yes")
		return false, nil
	}

	out, err := executeCmd(t, a, "resolve", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Closed session on 2024-06-01")
}

func TestResolveCmd_InvalidAt(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC)}
	a, repo := testApp(t, clock)
	seedStale(t, repo)

	_, err := executeCmd(t, a, "resolve", "--at", "quarter past")
	assert.Error(t, err)

	_, err = executeCmd(t, a, "resolve", "--at", "15:00")
	var trackerErr *app.TrackerError
	require.ErrorAs(t, err, &trackerErr, "end before the session start")
	assert.Equal(t, app.TrackerErrInvalidEndTime, trackerErr.Code)
}

type failingStatus struct{ err error }

func (f failingStatus) Status(context.Context, app.StatusRequest) (*app.StatusResponse, error) {
	return nil, f.err
}

func TestStatusCmd_StorageErrorIsReturned(t *testing.T) {
	boom := errors.New("permission denied")
	a := &App{Status: failingStatus{err: boom}}

	_, err := executeCmd(t, a, "status")
	assert.ErrorIs(t, err, boom)
}

func TestClockFlag(t *testing.T) {
	var c clockFlag
	assert.Empty(t, c.String())
	require.NoError(t, c.Set("07:05"))
	assert.Equal(t, "07:05", c.String())
	assert.Error(t, c.Set("7pm"))

	at, err := c.on("2024-06-01", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 7, 5, 0, 0, time.UTC), at)
}
