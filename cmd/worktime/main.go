package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/worktime/internal/cli"
	"github.com/alexanderramin/worktime/internal/config"
	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/repository"
	"github.com/alexanderramin/worktime/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var closeStore func() error
	defer func() {
		if closeStore != nil {
			_ = closeStore()
		}
	}()

	app := &cli.App{ReportDays: cfg.ReportDays}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.Setup = func(opts cli.SetupOptions) error {
		var logOut io.Writer
		if opts.Verbose || cfg.LogCalls {
			logOut = opts.ErrOut
		}
		logger := slog.New(slog.DiscardHandler)
		if logOut != nil {
			logger = slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelInfo}))
		}

		repo, closer, err := openStore(cfg, logger)
		if err != nil {
			return err
		}
		closeStore = closer

		var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
		if logOut != nil {
			observer = service.NewSlogUseCaseObserver(logger)
		}
		app.Use(service.NewTrackerService(repo, observer))
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}

// openStore opens the configured backend. The returned closer may be nil.
func openStore(cfg config.Config, logger *slog.Logger) (repository.SessionLogRepo, func() error, error) {
	path := cfg.StorePath()
	switch cfg.Backend {
	case config.BackendSQLite:
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)
		return repository.NewSQLiteSessionLogRepo(database, uow, logger), database.Close, nil
	default:
		return repository.NewJSONSessionLogRepo(path, logger), nil, nil
	}
}
