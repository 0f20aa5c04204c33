package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/worktime/internal/app"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/alexanderramin/worktime/internal/repository"
)

type trackerService struct {
	logs     repository.SessionLogRepo
	observer UseCaseObserver
}

// NewTrackerService builds the tracker over a session log repository. Every
// call loads a fresh snapshot; mutating calls save it back exactly once.
func NewTrackerService(logs repository.SessionLogRepo, observers ...UseCaseObserver) TrackerService {
	return &trackerService{
		logs:     logs,
		observer: useCaseObserverOrNoop(observers),
	}
}

// staleSession reports ref with its start in now's location.
func staleSession(ref domain.OpenRef, now time.Time) *app.StaleSession {
	return &app.StaleSession{Day: ref.Day, StartedAt: ref.Start.In(now.Location())}
}

func resolveNow(now *time.Time) time.Time {
	if now != nil {
		return *now
	}
	return time.Now()
}

func (s *trackerService) Start(ctx context.Context, req app.StartRequest) (resp *app.StartResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observeUseCase(ctx, "start", startedAt, fields, err) }()

	now := resolveNow(req.Now)
	today := domain.DayKeyOf(now)
	fields["day"] = today.String()

	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}

	log.EnsureDay(today)
	resp = &app.StartResponse{Day: today}

	if last := log.Last(today); last != nil && last.IsOpen() {
		resp.Notice = domain.NoticeAlreadyTracking
		resp.StartedAt = last.StartTime().In(now.Location())
		fields["notice"] = string(resp.Notice)
		return resp, nil
	}
	if ref, ok := log.FindStale(today); ok {
		resp.Notice = domain.NoticeStaleSession
		resp.Stale = staleSession(ref, now)
		fields["notice"] = string(resp.Notice)
		fields["stale_day"] = ref.Day.String()
		return resp, nil
	}

	session := domain.NewSession(now)
	log.Append(today, session)
	if err = s.logs.Save(ctx, log); err != nil {
		return nil, fmt.Errorf("saving session log: %w", err)
	}
	resp.StartedAt = session.StartTime().In(now.Location())
	return resp, nil
}

func (s *trackerService) Stop(ctx context.Context, req app.StopRequest) (resp *app.StopResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observeUseCase(ctx, "stop", startedAt, fields, err) }()

	now := resolveNow(req.Now)
	today := domain.DayKeyOf(now)
	fields["day"] = today.String()

	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}

	resp = &app.StopResponse{Day: today}
	last := log.Last(today)
	if last == nil || !last.IsOpen() {
		resp.Notice = domain.NoticeNothingToStop
		if ref, ok := log.FindStale(today); ok {
			resp.Stale = staleSession(ref, now)
		}
		fields["notice"] = string(resp.Notice)
		return resp, nil
	}

	if err = last.Close(now); err != nil {
		return nil, &app.TrackerError{Code: app.TrackerErrInvalidEndTime, Message: err.Error()}
	}
	if err = s.logs.Save(ctx, log); err != nil {
		return nil, fmt.Errorf("saving session log: %w", err)
	}

	resp.StartedAt = last.StartTime().In(now.Location())
	resp.EndedAt = domain.FromEpoch(*last.End).In(now.Location())
	resp.Seconds = *last.End - last.Start
	fields["seconds"] = resp.Seconds
	return resp, nil
}

func (s *trackerService) Status(ctx context.Context, req app.StatusRequest) (resp *app.StatusResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observeUseCase(ctx, "status", startedAt, fields, err) }()

	now := resolveNow(req.Now)
	today := domain.DayKeyOf(now)
	fields["day"] = today.String()

	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}

	sum := log.Summarize(today, now)
	resp = &app.StatusResponse{
		Day:      today,
		Seconds:  sum.Seconds,
		Sessions: sum.Sessions,
		Active:   sum.Active,
	}
	if sum.Sessions == 0 {
		resp.Notice = domain.NoticeNoWorkToday
		fields["notice"] = string(resp.Notice)
		return resp, nil
	}
	if last := log.Last(today); last != nil && last.IsOpen() {
		since := last.StartTime().In(now.Location())
		resp.ActiveSince = &since
	}
	fields["sessions"] = sum.Sessions
	return resp, nil
}

func (s *trackerService) Report(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"days": req.Days}
	defer func() { s.observeUseCase(ctx, "report", startedAt, fields, err) }()

	if req.Days < 1 {
		return nil, &app.TrackerError{
			Code:    app.TrackerErrInvalidDays,
			Message: fmt.Sprintf("day count must be at least 1, got %d", req.Days),
		}
	}
	now := resolveNow(req.Now)

	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}

	resp = &app.ReportResponse{Requested: req.Days}
	resp.Rows = slices.Collect(log.Recent(now, req.Days))
	if len(resp.Rows) == 0 {
		resp.Notice = domain.NoticeNoLogs
		fields["notice"] = string(resp.Notice)
		return resp, nil
	}
	for _, row := range resp.Rows {
		resp.TotalSeconds += row.Seconds
	}
	fields["rows"] = len(resp.Rows)
	return resp, nil
}

func (s *trackerService) Resolve(ctx context.Context, req app.ResolveRequest) (resp *app.ResolveResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() { s.observeUseCase(ctx, "resolve", startedAt, fields, err) }()

	now := resolveNow(req.Now)
	today := domain.DayKeyOf(now)

	log, err := s.logs.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session log: %w", err)
	}

	ref, ok := log.FindStale(today)
	if !ok {
		resp = &app.ResolveResponse{Notice: domain.NoticeNoStaleSession}
		fields["notice"] = string(resp.Notice)
		return resp, nil
	}
	fields["day"] = ref.Day.String()

	end, err := resolveEnd(ref, now, req.At)
	if err != nil {
		return nil, err
	}

	session := &log[ref.Day][ref.Index]
	if err = session.Close(end); err != nil {
		return nil, &app.TrackerError{Code: app.TrackerErrInvalidEndTime, Message: err.Error()}
	}
	if !req.DryRun {
		if err = s.logs.Save(ctx, log); err != nil {
			return nil, fmt.Errorf("saving session log: %w", err)
		}
	}
	fields["dry_run"] = req.DryRun

	resp = &app.ResolveResponse{
		Day:       ref.Day,
		StartedAt: ref.Start.In(now.Location()),
		EndedAt:   domain.FromEpoch(*session.End).In(now.Location()),
		Seconds:   *session.End - session.Start,
	}
	fields["seconds"] = resp.Seconds
	return resp, nil
}

// resolveEnd picks the end time for a stale session. An explicit time must
// fall inside [start, now]; the default is the last instant of the
// session's day, capped at now and never before start.
func resolveEnd(ref domain.OpenRef, now time.Time, at *time.Time) (time.Time, error) {
	if at != nil {
		if at.Before(ref.Start) || at.After(now) {
			return time.Time{}, &app.TrackerError{
				Code: app.TrackerErrInvalidEndTime,
				Message: fmt.Sprintf("end time %s must be between %s and %s",
					at.Format(time.DateTime), ref.Start.Format(time.DateTime), now.Format(time.DateTime)),
			}
		}
		return *at, nil
	}

	end, err := ref.Day.EndOf(now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("resolving end of %s: %w", ref.Day, err)
	}
	if end.After(now) {
		end = now
	}
	if end.Before(ref.Start) {
		end = ref.Start
	}
	return end, nil
}
