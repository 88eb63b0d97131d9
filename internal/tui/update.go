package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// chromeHeight is the space taken by the tabs, header and help line.
const chromeHeight = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.dayModel.SetSize(msg.Width-h, max(msg.Height-v-chromeHeight, 1))
		m.conflictsList.SetSize(msg.Width-h, max(msg.Height-v-chromeHeight, 1))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % stateCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + stateCount) % stateCount
			return m, nil
		}

		if m.state == StateDay {
			switch {
			case key.Matches(msg, m.keys.PrevDay):
				m.showDay(m.dayIndex - 1)
				return m, nil
			case key.Matches(msg, m.keys.NextDay):
				m.showDay(m.dayIndex + 1)
				return m, nil
			case key.Matches(msg, m.keys.Today):
				m.showDay(0)
				return m, nil
			}
		}
	}

	switch m.state {
	case StateDay:
		m.dayModel, cmd = m.dayModel.Update(msg)
	case StateConflicts:
		m.conflictsList, cmd = m.conflictsList.Update(msg)
	}

	return m, cmd
}
