package conflicts

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/calmher/internal/validation"
)

type Item struct {
	Conflict validation.Conflict
}

func (i Item) Title() string {
	switch i.Conflict.Type {
	case validation.ConflictInvalidDateTime:
		return "Skipped event: " + strings.Join(i.Conflict.Items, ", ")
	case validation.ConflictOverlappingCommitments:
		return "Overlap: " + strings.Join(i.Conflict.Items, " / ")
	}
	return string(i.Conflict.Type)
}

func (i Item) Description() string { return i.Conflict.Description }
func (i Item) FilterValue() string { return i.Conflict.Description }

// Model lists the problems found in the submitted calendar.
type Model struct {
	list list.Model
}

func New(conflicts []validation.Conflict, width, height int) Model {
	l := list.New(items(conflicts), list.NewDefaultDelegate(), width, height)
	l.Title = "Calendar notes"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered by the parent model
	return Model{list: l}
}

func items(conflicts []validation.Conflict) []list.Item {
	out := make([]list.Item, len(conflicts))
	for i, c := range conflicts {
		out[i] = Item{Conflict: c}
	}
	return out
}

func (m *Model) SetConflicts(conflicts []validation.Conflict) {
	m.list.SetItems(items(conflicts))
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  Your calendar looks clean.\n  Every event was readable and nothing overlaps."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
