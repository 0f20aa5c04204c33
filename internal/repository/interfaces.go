package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/worktime/internal/domain"
)

// ErrInvalidLog is returned by Save when the log violates a structural
// invariant and must not be persisted.
var ErrInvalidLog = errors.New("invalid session log")

// SessionLogRepo loads and stores the whole session log as one snapshot.
//
// Load never fails on malformed persisted data: it falls back to an empty
// log. Only I/O and database failures are returned as errors. Save replaces
// the previous snapshot entirely and leaves it untouched when it fails.
type SessionLogRepo interface {
	Load(ctx context.Context) (domain.SessionLog, error)
	Save(ctx context.Context, log domain.SessionLog) error
}
