package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/worktime/internal/db"
	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSessionLogRepo stores the session log as rows of work_sessions.
// Save replaces every row inside one transaction.
type SQLiteSessionLogRepo struct {
	db     db.DBTX
	uow    db.UnitOfWork
	logger *slog.Logger
}

func NewSQLiteSessionLogRepo(database db.DBTX, uow db.UnitOfWork, logger *slog.Logger) *SQLiteSessionLogRepo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteSessionLogRepo{db: database, uow: uow, logger: logger}
}

func (r *SQLiteSessionLogRepo) Load(ctx context.Context) (domain.SessionLog, error) {
	query := `SELECT day, start_at, end_at FROM work_sessions ORDER BY day, seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work sessions: %w", err)
	}
	defer rows.Close()

	var raw []sessionRow
	for rows.Next() {
		var row sessionRow
		if err := rows.Scan(&row.day, &row.start, &row.end); err != nil {
			return nil, fmt.Errorf("scanning work session row: %w", err)
		}
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work sessions: %w", err)
	}

	log, buildErr := buildSessionLog(raw)
	if buildErr != nil {
		r.logger.WarnContext(ctx, "session_log_malformed",
			"backend", "sqlite",
			"error", buildErr.Error(),
		)
		return domain.NewSessionLog(), nil
	}
	return log, nil
}

type sessionRow struct {
	day   string
	start float64
	end   sql.NullFloat64
}

func buildSessionLog(rows []sessionRow) (domain.SessionLog, error) {
	log := domain.NewSessionLog()
	for _, row := range rows {
		day, err := domain.ParseDayKey(row.day)
		if err != nil {
			return nil, err
		}
		s := domain.Session{Start: row.start}
		if row.end.Valid {
			end := row.end.Float64
			s.End = &end
		}
		log.Append(day, s)
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}
	return log, nil
}

func (r *SQLiteSessionLogRepo) Save(ctx context.Context, log domain.SessionLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}

	return r.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM work_sessions`); err != nil {
			return fmt.Errorf("clearing work sessions: %w", err)
		}

		insert := `INSERT INTO work_sessions (id, day, seq, start_at, end_at) VALUES (?, ?, ?, ?, ?)`
		for _, day := range log.Days() {
			for seq, s := range log[day] {
				var end any
				if s.End != nil {
					end = *s.End
				}
				if _, err := tx.ExecContext(ctx, insert, uuid.New().String(), string(day), seq, s.Start, end); err != nil {
					return fmt.Errorf("inserting work session %s/%d: %w", day, seq, err)
				}
			}
		}
		return nil
	})
}
