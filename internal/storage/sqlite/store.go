package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/logger"
	"github.com/julianstephens/calmher/internal/migration"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

// Init creates the database file if needed and applies pending migrations.
func (s *Store) Init(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if s.db == nil {
		if err := s.open(); err != nil {
			return err
		}
	}

	if err := s.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.validateSchemaVersion(ctx)
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectSQLite), nil
}

func (s *Store) runMigrations(ctx context.Context) error {
	runner, err := s.runner()
	if err != nil {
		return err
	}
	_, err = runner.ApplyMigrations(ctx, func(msg string) {
		logger.Info(msg, "store", "sqlite")
	})
	return err
}

func (s *Store) validateSchemaVersion(ctx context.Context) error {
	runner, err := s.runner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion(ctx)
}

func (s *Store) SaveSchedule(ctx context.Context, rec models.ScheduleRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	reqJSON, err := json.Marshal(rec.Request)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	summary := rec.Schedule.Summary
	_, err = tx.ExecContext(ctx, `
		INSERT INTO schedules (id, user_id, created_at, start_date, end_date, burnout_level,
			category, total_events, reason, preferences, request_json, calendar_document)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.CreatedAt.UTC().Format(time.RFC3339),
		summary.DateRange.Start, summary.DateRange.End, summary.BurnoutLevel,
		summary.Category.String(), summary.TotalEventsCreated, summary.Reason,
		rec.Request.Preferences, string(reqJSON), rec.CalendarDocument,
	)
	if err != nil {
		return fmt.Errorf("failed to insert schedule %s: %w", rec.ID, err)
	}

	for i, ev := range rec.Schedule.Events {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO schedule_events (schedule_id, position, title, type, hobby, start_at, end_at, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			rec.ID, i, ev.Title, string(ev.Type), ev.Hobby,
			ev.Start.Format(time.RFC3339), ev.End.Format(time.RFC3339), ev.Notes,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event %d of schedule %s: %w", i, rec.ID, err)
		}
	}

	return tx.Commit()
}

func (s *Store) SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	a := rec.Assessment
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assessments (id, user_id, created_at, burnout_score, risk_level, answered)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, a.UserID, rec.CreatedAt.UTC().Format(time.RFC3339),
		a.Score, a.Category.String(), a.Answered,
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment %s: %w", rec.ID, err)
	}
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}
