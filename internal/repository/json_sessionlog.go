package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alexanderramin/worktime/internal/domain"
)

// JSONSessionLogRepo persists the session log as a single pretty-printed
// JSON object keyed by day.
type JSONSessionLogRepo struct {
	path   string
	logger *slog.Logger
}

// NewJSONSessionLogRepo creates a repo backed by the file at path. A nil
// logger discards the malformed-data warning.
func NewJSONSessionLogRepo(path string, logger *slog.Logger) *JSONSessionLogRepo {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &JSONSessionLogRepo{path: path, logger: logger}
}

func (r *JSONSessionLogRepo) Path() string {
	return r.path
}

// jsonSession mirrors domain.Session with a pointer start so a missing
// "start" key is detected instead of decoding to zero.
type jsonSession struct {
	Start *float64 `json:"start"`
	End   *float64 `json:"end,omitempty"`
}

func (r *JSONSessionLogRepo) Load(ctx context.Context) (domain.SessionLog, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewSessionLog(), nil
		}
		return nil, fmt.Errorf("reading session log: %w", err)
	}

	log, decodeErr := decodeSessionLog(data)
	if decodeErr != nil {
		r.logger.WarnContext(ctx, "session_log_malformed",
			"path", r.path,
			"error", decodeErr.Error(),
		)
		return domain.NewSessionLog(), nil
	}
	return log, nil
}

func decodeSessionLog(data []byte) (domain.SessionLog, error) {
	var raw map[string][]jsonSession
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding session log: %w", err)
	}

	log := make(domain.SessionLog, len(raw))
	for key, sessions := range raw {
		day, err := domain.ParseDayKey(key)
		if err != nil {
			return nil, err
		}
		out := make([]domain.Session, 0, len(sessions))
		for i, s := range sessions {
			if s.Start == nil {
				return nil, fmt.Errorf("day %s session %d: missing start", day, i)
			}
			out = append(out, domain.Session{Start: *s.Start, End: s.End})
		}
		log[day] = out
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}
	log.Compact()
	return log, nil
}

func (r *JSONSessionLogRepo) Save(_ context.Context, log domain.SessionLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLog, err)
	}
	snapshot := log.Clone()
	snapshot.Compact()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session log: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing session log: %w", err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file next to path, syncs it and
// renames it into place, so readers see either the old or the new content.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return nil
}
