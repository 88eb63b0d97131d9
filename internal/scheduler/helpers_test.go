package scheduler

import (
	"testing"
	"time"

	"github.com/julianstephens/calmher/internal/models"
)

func mustDate(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", date, err)
	}
	return d
}

func mustAt(t *testing.T, date, clock string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02 15:04", date+" "+clock)
	if err != nil {
		t.Fatalf("invalid test time %q %q: %v", date, clock, err)
	}
	return ts
}

func busy(t *testing.T, date, from, to string) models.BusyInterval {
	t.Helper()
	return models.BusyInterval{Title: "busy", Start: mustAt(t, date, from), End: mustAt(t, date, to)}
}

type wantEvent struct {
	activity models.ActivityType
	start    string
	end      string
}

func assertEvents(t *testing.T, got []models.ScheduledEvent, want []wantEvent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		e := got[i]
		if e.Type != w.activity {
			t.Errorf("event %d type = %s, want %s", i, e.Type, w.activity)
		}
		if s := e.Start.Format("15:04"); s != w.start {
			t.Errorf("event %d start = %s, want %s", i, s, w.start)
		}
		if s := e.End.Format("15:04"); s != w.end {
			t.Errorf("event %d end = %s, want %s", i, s, w.end)
		}
	}
}
