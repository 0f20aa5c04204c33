package service

import "github.com/alexanderramin/worktime/internal/app"

// TrackerService is the full set of session log use cases.
type TrackerService interface {
	app.StartUseCase
	app.StopUseCase
	app.StatusUseCase
	app.ReportUseCase
	app.ResolveUseCase
}
