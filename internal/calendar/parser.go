package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/julianstephens/calmher/internal/models"
)

var textUnescaper = strings.NewReplacer(`\,`, ",", `\;`, ";", `\n`, "\n", `\N`, "\n", `\\`, `\`)

// ParseEvents reads the VEVENTs of an iCalendar document as calendar events.
// Events missing a summary, start or end are dropped.
func ParseEvents(r io.Reader) ([]models.CalendarEvent, error) {
	cal, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(cal.Events()))
	for _, ev := range cal.Events() {
		summary := ev.GetProperty(ics.ComponentPropertySummary)
		if summary == nil || strings.TrimSpace(summary.Value) == "" {
			continue
		}
		start, err := ev.GetStartAt()
		if err != nil {
			continue
		}
		end, err := ev.GetEndAt()
		if err != nil {
			continue
		}
		events = append(events, models.CalendarEvent{
			Title: textUnescaper.Replace(summary.Value),
			Start: start.Format(time.RFC3339),
			End:   end.Format(time.RFC3339),
		})
	}
	return events, nil
}
