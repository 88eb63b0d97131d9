package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/service"
)

func newTestModel(t *testing.T, req models.ScheduleRequest) Model {
	t.Helper()
	res, err := service.New().Generate(context.Background(), req, service.GenerateOptions{})
	require.NoError(t, err)

	m := NewModel(res)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func highRequest() models.ScheduleRequest {
	return models.ScheduleRequest{
		StartDate:    "2024-06-03",
		EndDate:      "2024-06-05",
		BurnoutLevel: 3.5,
	}
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

var (
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel_Days(t *testing.T) {
	m := newTestModel(t, highRequest())

	assert.Equal(t, []string{"2024-06-03", "2024-06-04", "2024-06-05"}, m.days)
	assert.Equal(t, "2024-06-03", m.CurrentDay())
	assert.Equal(t, StateDay, m.state)
}

func TestDayNavigation(t *testing.T) {
	m := newTestModel(t, highRequest())

	m = press(t, m, left)
	assert.Equal(t, "2024-06-03", m.CurrentDay(), "stays on the first day")

	m = press(t, m, right)
	assert.Equal(t, "2024-06-04", m.CurrentDay())
	assert.Empty(t, m.dayModel.Events, "high burnout skips tuesday")

	m = press(t, m, runes("l"))
	m = press(t, m, right)
	assert.Equal(t, "2024-06-05", m.CurrentDay(), "stays on the last day")
	assert.NotEmpty(t, m.dayModel.Events)

	m = press(t, m, runes("t"))
	assert.Equal(t, "2024-06-03", m.CurrentDay())
}

func TestView(t *testing.T) {
	m := newTestModel(t, highRequest())

	view := m.View()
	assert.Contains(t, view, "Monday, June 3")
	assert.Contains(t, view, "day 1 of 3")
	assert.Contains(t, view, "Meditation")

	m = press(t, m, right)
	assert.Contains(t, m.View(), "Nothing scheduled")
}

func TestTabs(t *testing.T) {
	m := newTestModel(t, highRequest())

	m = press(t, m, tab)
	assert.Equal(t, StateSummary, m.state)
	summary := m.View()
	assert.Contains(t, summary, "high")
	assert.Contains(t, summary, "2024-06-03 to 2024-06-05")

	m = press(t, m, tab)
	assert.Equal(t, StateConflicts, m.state)
	assert.Contains(t, m.View(), "looks clean")

	m = press(t, m, tab)
	assert.Equal(t, StateDay, m.state)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, StateConflicts, m.state)

	// day keys do nothing off the day tab
	m = press(t, m, right)
	assert.Equal(t, "2024-06-03", m.CurrentDay())
}

func TestConflictsTab(t *testing.T) {
	req := highRequest()
	req.CalendarEvents = []models.CalendarEvent{
		{Title: "Mystery", Start: "whenever", End: "later"},
	}
	m := newTestModel(t, req)

	assert.Contains(t, m.viewTabs(), "Calendar notes (1)")
	m.state = StateConflicts
	assert.True(t, strings.Contains(m.View(), "Mystery"))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, highRequest())

	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())
}

func TestScheduleDays_Invalid(t *testing.T) {
	assert.Nil(t, scheduleDays(models.Schedule{}))
}
