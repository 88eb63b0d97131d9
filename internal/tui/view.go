package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calmher/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateDay:
		content = m.viewDay()
	case StateSummary:
		content = m.viewSummary()
	case StateConflicts:
		content = docStyle.Render(m.conflictsList.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if SessionState(i) == StateConflicts && m.conflictsList.Len() > 0 {
			title = fmt.Sprintf("%s (%d)", title, m.conflictsList.Len())
		}
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDay() string {
	date := m.CurrentDay()
	if date == "" {
		return docStyle.Render("No days in this schedule.")
	}

	heading := date
	if d, err := time.Parse(constants.DateFormat, date); err == nil {
		heading = d.Format("Monday, January 2")
	}
	heading = headerStyle.Render(heading) + fmt.Sprintf("  day %d of %d", m.dayIndex+1, len(m.days))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", m.dayModel.View()))
}

func (m Model) viewSummary() string {
	s := m.result.Schedule.Summary

	var b strings.Builder
	b.WriteString(headerStyle.Render("Your wellness schedule"))
	b.WriteString("\n\n")
	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}
	row("Burnout level", fmt.Sprintf("%.2f", s.BurnoutLevel))
	row("Category", s.Category.String())
	row("Dates", fmt.Sprintf("%s to %s", s.DateRange.Start, s.DateRange.End))
	row("Events", fmt.Sprintf("%d", s.TotalEventsCreated))
	if m.result.RecordID != "" {
		row("Saved as", m.result.RecordID)
	}
	if s.Reason != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(s.Reason))
	}

	return docStyle.Render(b.String())
}
