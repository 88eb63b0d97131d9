package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calmher/internal/constants"
	"github.com/julianstephens/calmher/internal/models"
	"github.com/julianstephens/calmher/internal/service"
	"github.com/julianstephens/calmher/internal/tui/components/conflicts"
	"github.com/julianstephens/calmher/internal/tui/components/day"
)

type SessionState int

const (
	StateDay SessionState = iota
	StateSummary
	StateConflicts
)

const stateCount = 3

var tabTitles = []string{"Day", "Summary", "Calendar notes"}

// Model browses a generated schedule one day at a time. It never
// regenerates; the schedule is fixed for the life of the program.
type Model struct {
	result        service.Result
	days          []string
	dayIndex      int
	state         SessionState
	keys          KeyMap
	help          help.Model
	dayModel      day.Model
	conflictsList conflicts.Model
	quitting      bool
	width         int
	height        int
}

func NewModel(result service.Result) Model {
	m := Model{
		result:        result,
		days:          scheduleDays(result.Schedule),
		state:         StateDay,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		dayModel:      day.New(0, 0),
		conflictsList: conflicts.New(result.Conflicts.Conflicts, 0, 0),
	}
	m.showDay(0)
	return m
}

// scheduleDays lists every date in the summary range, including empty days.
func scheduleDays(schedule models.Schedule) []string {
	start, err := time.Parse(constants.DateFormat, schedule.Summary.DateRange.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse(constants.DateFormat, schedule.Summary.DateRange.End)
	if err != nil || end.Before(start) {
		return nil
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(constants.DateFormat))
	}
	return days
}

func (m *Model) showDay(i int) {
	if len(m.days) == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(m.days) {
		i = len(m.days) - 1
	}
	m.dayIndex = i
	date := m.days[i]
	m.dayModel.SetDay(date, m.result.Schedule.EventsOn(date))
}

// CurrentDay returns the date being shown on the day tab.
func (m Model) CurrentDay() string {
	if len(m.days) == 0 {
		return ""
	}
	return m.days[m.dayIndex]
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateDay {
		keys = append(keys, m.keys.PrevDay, m.keys.NextDay)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}
	if m.state == StateDay {
		navigation = append(navigation, m.keys.PrevDay, m.keys.NextDay, m.keys.Today)
	}
	return [][]key.Binding{global, navigation}
}

func (m Model) Init() tea.Cmd {
	return nil
}
