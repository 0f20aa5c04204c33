package app

import "context"

type StartUseCase interface {
	Start(ctx context.Context, req StartRequest) (*StartResponse, error)
}

type StopUseCase interface {
	Stop(ctx context.Context, req StopRequest) (*StopResponse, error)
}

type StatusUseCase interface {
	Status(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

type ReportUseCase interface {
	Report(ctx context.Context, req ReportRequest) (*ReportResponse, error)
}

type ResolveUseCase interface {
	Resolve(ctx context.Context, req ResolveRequest) (*ResolveResponse, error)
}
