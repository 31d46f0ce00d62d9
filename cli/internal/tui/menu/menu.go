// ABOUTME: Start menu for the TUI as a bubbletea model
// ABOUTME: Lets the user build a design, load a design file, or use the defaults

package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/styles"
)

// Action is a start menu choice
type Action int

const (
	ActionNewDesign Action = iota
	ActionLoadFile
	ActionDefaultDesign
)

// String returns the string representation of an Action
func (a Action) String() string {
	switch a {
	case ActionNewDesign:
		return "new"
	case ActionLoadFile:
		return "file"
	case ActionDefaultDesign:
		return "default"
	default:
		return "unknown"
	}
}

// SelectedMsg is sent when the user picks a menu entry
type SelectedMsg struct {
	Action Action
}

// CancelledMsg is sent when the user leaves the menu without choosing
type CancelledMsg struct{}

// Menu is the start menu
type Menu struct {
	form     *huh.Form
	selected Action
}

// New creates the start menu
func New() *Menu {
	m := &Menu{selected: ActionNewDesign}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[Action]().
				Title("How do you want to start?").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(Options()...).
				Value(&m.selected),
		),
	).WithTheme(styles.FormTheme()).WithShowHelp(false)
	return m
}

// Options returns the menu entries
func Options() []huh.Option[Action] {
	return []huh.Option[Action]{
		huh.NewOption("New design (guided wizard)", ActionNewDesign),
		huh.NewOption("Load design file", ActionLoadFile),
		huh.NewOption(fmt.Sprintf("Default design (%.0f\" props, %d rotors, %.0f g)",
			models.DefaultPropellerDiameterInches,
			models.DefaultRotorCount,
			models.DefaultDroneWeightGrams), ActionDefaultDesign),
	}
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return m.form.Init()
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.choose(m.selected)
	}
	return m, cmd
}

// choose emits the selection message
func (m *Menu) choose(action Action) tea.Cmd {
	return func() tea.Msg { return SelectedMsg{Action: action} }
}

// Selected returns the highlighted action
func (m *Menu) Selected() Action {
	return m.selected
}

// View implements tea.Model
func (m *Menu) View() string {
	return m.form.View()
}
