package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			MarginTop(1)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(15)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

func categoryStyle(c models.SeverityCategory) lipgloss.Style {
	switch c {
	case models.SeverityLow:
		return okStyle
	case models.SeverityModerate:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	case models.SeverityHigh:
		return warnStyle
	default:
		return failStyle
	}
}

// printSchedule writes a day-grouped listing of schedule.
func printSchedule(w io.Writer, schedule models.Schedule) {
	s := schedule.Summary
	fmt.Fprintf(w, "%s\n", headingStyle.Render("Wellness schedule"))
	fmt.Fprintf(w, "%s to %s  burnout %.2f (%s)  %d events\n",
		s.DateRange.Start, s.DateRange.End, s.BurnoutLevel,
		categoryStyle(s.Category).Render(s.Category.String()), s.TotalEventsCreated)

	if len(schedule.Events) == 0 {
		fmt.Fprintf(w, "\n%s\n", mutedStyle.Render(s.Reason))
		return
	}

	current := ""
	for _, ev := range schedule.Events {
		date := ev.Start.Format(constants.DateFormat)
		if date != current {
			current = date
			fmt.Fprintln(w, dayStyle.Render(ev.Start.Format("Monday, January 2")))
		}
		title := ev.Title
		if ev.Hobby != "" {
			title += " (" + ev.Hobby + ")"
		}
		span := fmt.Sprintf("%s - %s", ev.Start.Format(constants.TimeFormat), ev.End.Format(constants.TimeFormat))
		fmt.Fprintf(w, "  %s %s\n", timeStyle.Render(span), title)
		if ev.Notes != "" {
			fmt.Fprintf(w, "  %s %s\n", strings.Repeat(" ", 15), mutedStyle.Render(ev.Notes))
		}
	}
}
