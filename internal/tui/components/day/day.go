package day

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/models"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(15)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			PaddingLeft(15)
)

// Model renders the events of a single day in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Date     string
	Events   []models.ScheduledEvent
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetDay(date string, events []models.ScheduledEvent) {
	m.Date = date
	m.Events = events
	m.viewport.GotoTop()
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.Events))
}

// Content is the plain listing shown in the viewport.
func Content(events []models.ScheduledEvent) string {
	if len(events) == 0 {
		return "Nothing scheduled. Rest is part of the plan too."
	}

	var b strings.Builder
	for _, ev := range events {
		timeStr := fmt.Sprintf("%s - %s", ev.Start.Format(constants.TimeFormat), ev.End.Format(constants.TimeFormat))
		title := ev.Title
		if ev.Hobby != "" {
			title = fmt.Sprintf("%s (%s)", ev.Title, ev.Hobby)
		}

		fmt.Fprintf(&b, "%s %s %s\n",
			timeStyle.Render(timeStr),
			titleStyle.Render(title),
			typeStyle.Render(fmt.Sprintf("%d min", ev.Minutes())),
		)
		if ev.Notes != "" {
			b.WriteString(noteStyle.Render(ev.Notes))
			b.WriteString("\n")
		}
	}
	return b.String()
}
