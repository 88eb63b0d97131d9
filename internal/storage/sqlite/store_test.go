package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/calmher/internal/models"
)

func setupStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calmher.db")
	store := NewStore(path)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func scheduleRecord(id string, events int) models.ScheduleRecord {
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	rec := models.ScheduleRecord{
		ID:        id,
		UserID:    "user-1",
		CreatedAt: time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		Request:   models.ScheduleRequest{StartDate: "2024-06-03", EndDate: "2024-06-04", Preferences: "yoga", BurnoutLevel: 2.2},
		Schedule: models.Schedule{
			Summary: models.ScheduleSummary{
				BurnoutLevel: 2.2,
				Category:     models.SeverityModerate,
				DateRange:    models.DateRange{Start: "2024-06-03", End: "2024-06-04"},
			},
			Events: []models.ScheduledEvent{},
		},
	}
	for i := 0; i < events; i++ {
		start := day.AddDate(0, 0, i).Add(8 * time.Hour)
		rec.Schedule.Events = append(rec.Schedule.Events, models.ScheduledEvent{
			Title: "Meditation",
			Type:  models.ActivityMeditation,
			Start: start,
			End:   start.Add(20 * time.Minute),
			Notes: "Breathe",
		})
	}
	rec.Schedule.Summary.TotalEventsCreated = events
	return rec
}

func TestSaveSchedule(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	if err := store.SaveSchedule(ctx, scheduleRecord("sched-1", 2)); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}

	var category, prefs string
	var total int
	err := store.db.QueryRow("SELECT category, total_events, preferences FROM schedules WHERE id = ?", "sched-1").
		Scan(&category, &total, &prefs)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if category != "moderate" || total != 2 || prefs != "yoga" {
		t.Errorf("unexpected row: category=%s total=%d prefs=%s", category, total, prefs)
	}

	var events int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM schedule_events WHERE schedule_id = ?", "sched-1").Scan(&events); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if events != 2 {
		t.Errorf("expected 2 event rows, got %d", events)
	}

	var start string
	if err := store.db.QueryRow("SELECT start_at FROM schedule_events WHERE schedule_id = ? AND position = 1", "sched-1").Scan(&start); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if start != "2024-06-04T08:00:00Z" {
		t.Errorf("start_at = %s", start)
	}
}

func TestSaveSchedule_DuplicateIDRollsBack(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	if err := store.SaveSchedule(ctx, scheduleRecord("dup", 1)); err != nil {
		t.Fatalf("SaveSchedule failed: %v", err)
	}
	if err := store.SaveSchedule(ctx, scheduleRecord("dup", 3)); err == nil {
		t.Fatal("expected error for duplicate schedule id")
	}

	var events int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM schedule_events WHERE schedule_id = ?", "dup").Scan(&events); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if events != 1 {
		t.Errorf("failed save leaked events: got %d rows", events)
	}
}

func TestSaveAssessment(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	rec := models.AssessmentRecord{
		ID:        "assess-1",
		CreatedAt: time.Now(),
		Assessment: models.BurnoutAssessment{
			UserID:   "user-1",
			Score:    3.75,
			Category: models.SeverityHigh,
			Answered: 4,
		},
	}
	if err := store.SaveAssessment(ctx, rec); err != nil {
		t.Fatalf("SaveAssessment failed: %v", err)
	}

	var score float64
	var risk string
	if err := store.db.QueryRow("SELECT burnout_score, risk_level FROM assessments WHERE id = ?", "assess-1").Scan(&score, &risk); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if score != 3.75 || risk != "high" {
		t.Errorf("unexpected row: score=%v risk=%s", score, risk)
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	missing := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := missing.Load(ctx); err == nil {
		t.Error("Load should fail for an uninitialized database")
	}

	store, path := setupStore(t)
	store.Close()

	reopened := NewStore(path)
	if err := reopened.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()
	if err := reopened.SaveSchedule(ctx, scheduleRecord("after-load", 1)); err != nil {
		t.Fatalf("SaveSchedule after Load failed: %v", err)
	}
}

func TestInitIsIdempotent(t *testing.T) {
	store, _ := setupStore(t)
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
}

func TestSaveWithoutLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "x.db"))
	if err := store.SaveSchedule(context.Background(), scheduleRecord("x", 0)); err == nil {
		t.Error("expected error when storage not loaded")
	}
	if store.GetConfigPath() == "" {
		t.Error("config path should be the database file")
	}
}
