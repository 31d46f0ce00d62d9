// ABOUTME: huh form theme shared by the menu and the design wizard
// ABOUTME: Applies the calculator palette to focused and blurred fields

package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// FormTheme returns a huh theme using the calculator palette
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	muted := lipgloss.Color("#9CA3AF")
	light := lipgloss.Color("#E5E7EB")
	errorRed := lipgloss.Color("#F87171")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(errorRed).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(errorRed)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(light)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)
	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(Primary).
		MarginLeft(1).
		SetString("→")
	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(Primary).
		MarginRight(1).
		SetString("←")

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(Primary)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(muted)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(light)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(muted).
		Background(Surface).
		Padding(0, 2).
		MarginRight(1)

	// Blurred fields reuse the focused styles with muted colors
	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(muted)

	return t
}
