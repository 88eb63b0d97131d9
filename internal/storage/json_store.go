package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/models"
)

type Store struct {
	Version     int                                `json:"version"`
	Schedules   map[string]models.ScheduleRecord   `json:"schedules"`
	Assessments map[string]models.AssessmentRecord `json:"assessments"`
}

// JSONStore keeps every record in a single JSON file. Writes are serialised
// so concurrent requests never interleave partial files.
type JSONStore struct {
	path  string
	mu    sync.Mutex
	store *Store
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

// Init creates the file when it does not exist yet; an existing file is loaded.
func (s *JSONStore) Init(ctx context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store = &Store{
		Version:     1,
		Schedules:   make(map[string]models.ScheduleRecord),
		Assessments: make(map[string]models.AssessmentRecord),
	}
	return s.save()
}

func (s *JSONStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	store := &Store{}
	if err := json.Unmarshal(data, store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	if store.Schedules == nil {
		store.Schedules = make(map[string]models.ScheduleRecord)
	}
	if store.Assessments == nil {
		store.Assessments = make(map[string]models.AssessmentRecord)
	}
	s.store = store

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save must be called with mu held.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) SaveSchedule(ctx context.Context, rec models.ScheduleRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Schedules[rec.ID] = rec
	return s.save()
}

func (s *JSONStore) SaveAssessment(ctx context.Context, rec models.AssessmentRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Assessments[rec.ID] = rec
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
