package backup

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "calmher.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	saveRecord(t, store, "first")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return dbPath
}

func saveRecord(t *testing.T, store *sqlite.Store, id string) {
	t.Helper()
	rec := models.ScheduleRecord{
		ID:        id,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Request:   models.ScheduleRequest{StartDate: "2024-06-03", EndDate: "2024-06-03", BurnoutLevel: 1.5},
		Schedule: models.Schedule{
			Summary: models.ScheduleSummary{
				BurnoutLevel: 1.5,
				Category:     models.SeverityLow,
				DateRange:    models.DateRange{Start: "2024-06-03", End: "2024-06-03"},
				Reason:       "nothing fits",
			},
			Events: []models.ScheduledEvent{},
		},
	}
	if err := store.SaveSchedule(context.Background(), rec); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}
}

func countSchedules(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM schedules").Scan(&n); err != nil {
		t.Fatalf("failed to count schedules: %v", err)
	}
	return n
}

func steppingClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Second)
		return t
	}
}

func TestCreate(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if filepath.Dir(backupPath) != mgr.Dir() {
		t.Errorf("backup written to %s, want dir %s", backupPath, mgr.Dir())
	}
	if !strings.HasPrefix(filepath.Base(backupPath), "calmher-") {
		t.Errorf("unexpected backup name %s", filepath.Base(backupPath))
	}
	if got := countSchedules(t, backupPath); got != 1 {
		t.Errorf("backup has %d schedules, want 1", got)
	}
}

func TestCreate_MissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.Create(context.Background()); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestCreate_NotCalmherDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "other.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := db.Exec("CREATE TABLE other (id INTEGER)"); err != nil {
		t.Fatalf("create: %v", err)
	}
	db.Close()

	if _, err := NewManager(dbPath).Create(context.Background()); err == nil {
		t.Error("expected error for a database without the calmher schema")
	}
}

func TestCreate_SameSecondCollision(t *testing.T) {
	dbPath := setupTestDB(t)
	fixed := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	mgr := NewManager(dbPath, WithClock(func() time.Time { return fixed }))

	first, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	second, err := mgr.Create(context.Background())
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}

	if first == second {
		t.Fatalf("both backups written to %s", first)
	}
	if filepath.Base(second) != "calmher-20240601-100000-1.db" {
		t.Errorf("second backup = %s", filepath.Base(second))
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("expected 2 backups, got %d", len(backups))
	}
}

func TestList_NewestFirst(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(steppingClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))))

	for i := 0; i < 3; i++ {
		if _, err := mgr.Create(context.Background()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	// stray files are ignored
	if err := os.WriteFile(filepath.Join(mgr.Dir(), "notes.txt"), []byte("hi"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if !backups[i-1].Timestamp.After(backups[i].Timestamp) {
			t.Errorf("backups not sorted newest first: %v then %v", backups[i-1].Timestamp, backups[i].Timestamp)
		}
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestList_NoDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "calmher.db"))
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}

func TestRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath,
		WithMaxBackups(2),
		WithClock(steppingClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))),
	)

	for i := 0; i < 4; i++ {
		if _, err := mgr.Create(context.Background()); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("expected 2 backups after rotation, got %d", len(backups))
	}
	if got := filepath.Base(backups[0].Path); got != "calmher-20240601-100003.db" {
		t.Errorf("newest backup = %s", got)
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath, WithClock(steppingClock(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))))

	snapshot, err := mgr.Create(ctx)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	store := sqlite.NewStore(dbPath)
	if err := store.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	saveRecord(t, store, "second")
	store.Close()
	if got := countSchedules(t, dbPath); got != 2 {
		t.Fatalf("expected 2 schedules before restore, got %d", got)
	}

	safety, err := mgr.Restore(ctx, snapshot)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if got := countSchedules(t, dbPath); got != 1 {
		t.Errorf("expected 1 schedule after restore, got %d", got)
	}
	if safety == "" {
		t.Fatal("expected a pre-restore backup")
	}
	if got := countSchedules(t, safety); got != 2 {
		t.Errorf("pre-restore backup has %d schedules, want 2", got)
	}
	if _, err := os.Stat(dbPath + ".restore.tmp"); !os.IsNotExist(err) {
		t.Error("temporary restore file left behind")
	}
}

func TestRestore_Invalid(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.Restore(context.Background(), filepath.Join(t.TempDir(), "nope.db")); err == nil {
		t.Error("expected error for missing backup")
	}

	garbage := filepath.Join(t.TempDir(), "calmher-20240101-000000.db")
	if err := os.WriteFile(garbage, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.Restore(context.Background(), garbage); err == nil {
		t.Error("expected error for corrupted backup")
	}
	if got := countSchedules(t, dbPath); got != 1 {
		t.Errorf("database changed after failed restore: %d schedules", got)
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"calmher-20240601-100000.db", true},
		{"calmher-20240601-100000-3.db", true},
		{"calmher-20240601-1000.db", false},
		{"calmher-20240601-100000x.db", false},
		{"daylit-20240601-100000.db", false},
		{"calmher-20240601-100000.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, ok := parseName(tt.name)
			if ok != tt.ok {
				t.Fatalf("parseName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if ok && !ts.Equal(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)) {
				t.Errorf("timestamp = %v", ts)
			}
		})
	}
}
