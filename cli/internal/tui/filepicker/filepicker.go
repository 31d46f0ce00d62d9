// ABOUTME: File picker TUI component for selecting design files
// ABOUTME: Shows recent files, path input, and bundled sample designs

package filepicker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/cli/internal/designfile"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/samples"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/styles"
)

type state int

const (
	stateList state = iota
	stateInput
	stateSamples
)

// FileSelectedMsg is sent when a design file has been read and parsed
type FileSelectedMsg struct {
	Path   string
	Inputs models.DesignInputs
}

// CancelledMsg is sent when the user cancels
type CancelledMsg struct{}

// FilePicker is the file selection component
type FilePicker struct {
	recentFiles []string
	samples     []samples.SampleFile
	cursor      int
	state       state
	textInput   textinput.Model
	err         string
	width       int
	height      int
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)
	selectedStyle = lipgloss.NewStyle().Foreground(styles.Accent).Bold(true)
	normalStyle   = lipgloss.NewStyle().Foreground(styles.Text)
	errorStyle    = lipgloss.NewStyle().Foreground(styles.Danger)
	helpStyle     = lipgloss.NewStyle().Foreground(styles.Muted)
	dividerStyle  = lipgloss.NewStyle().Foreground(styles.Surface)
)

// New creates a new FilePicker
func New(recentFiles []string, sampleFiles []samples.SampleFile) *FilePicker {
	ti := textinput.New()
	ti.Placeholder = "/path/to/design.yaml"
	ti.CharLimit = 256
	ti.Width = 60

	return &FilePicker{
		recentFiles: recentFiles,
		samples:     sampleFiles,
		state:       stateList,
		textInput:   ti,
	}
}

// Init implements tea.Model
func (fp *FilePicker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (fp *FilePicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fp.width = msg.Width
		fp.height = msg.Height
		return fp, nil

	case tea.KeyMsg:
		fp.err = ""

		switch fp.state {
		case stateList:
			return fp.updateList(msg)
		case stateInput:
			return fp.updateInput(msg)
		case stateSamples:
			return fp.updateSamples(msg)
		}
	}

	return fp, nil
}

func (fp *FilePicker) hasSamples() bool {
	return len(fp.samples) > 0
}

func (fp *FilePicker) moveCursor(key string, count int) {
	switch key {
	case "up", "k":
		if fp.cursor > 0 {
			fp.cursor--
		}
	case "down", "j":
		if fp.cursor < count-1 {
			fp.cursor++
		}
	}
}

func (fp *FilePicker) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		fp.moveCursor(msg.String(), fp.listItemCount())
	case "enter":
		return fp.selectListItem()
	case "esc", "b":
		return fp, func() tea.Msg { return CancelledMsg{} }
	}
	return fp, nil
}

func (fp *FilePicker) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fp.state = stateList
		fp.textInput.SetValue("")
		return fp, nil
	case "enter":
		path := strings.TrimSpace(fp.textInput.Value())
		if path == "" {
			fp.err = "Please enter a file path"
			return fp, nil
		}
		return fp.loadFile(path)
	}

	var cmd tea.Cmd
	fp.textInput, cmd = fp.textInput.Update(msg)
	return fp, cmd
}

func (fp *FilePicker) updateSamples(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k", "down", "j":
		// +1 for [back]
		fp.moveCursor(msg.String(), len(fp.samples)+1)
	case "enter":
		if fp.cursor == len(fp.samples) {
			fp.state = stateList
			fp.cursor = 0
			return fp, nil
		}
		return fp.loadFile(fp.samples[fp.cursor].Path)
	case "esc", "b":
		fp.state = stateList
		fp.cursor = 0
	}
	return fp, nil
}

func (fp *FilePicker) listItemCount() int {
	count := len(fp.recentFiles) + 1 // "Enter path..."
	if fp.hasSamples() {
		count++ // "Load sample design..."
	}
	return count
}

func (fp *FilePicker) selectListItem() (tea.Model, tea.Cmd) {
	recentCount := len(fp.recentFiles)

	switch {
	case fp.cursor < recentCount:
		return fp.loadFile(fp.recentFiles[fp.cursor])
	case fp.cursor == recentCount:
		fp.state = stateInput
		fp.textInput.Focus()
		return fp, textinput.Blink
	case fp.hasSamples() && fp.cursor == recentCount+1:
		fp.state = stateSamples
		fp.cursor = 0
	}
	return fp, nil
}

// loadFile reads and parses a design file, reporting problems inline so the
// user can pick again
func (fp *FilePicker) loadFile(path string) (tea.Model, tea.Cmd) {
	expandedPath := expandPath(path)

	if !designfile.IsDesignFile(expandedPath) {
		fp.err = fmt.Sprintf("Unsupported file type %q (use .json, .yaml or .yml)", filepath.Ext(expandedPath))
		return fp, nil
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		switch {
		case os.IsNotExist(err):
			fp.err = "File not found: " + path
		case os.IsPermission(err):
			fp.err = "Cannot read file: permission denied"
		default:
			fp.err = "Error reading file: " + err.Error()
		}
		return fp, nil
	}

	inputs, err := designfile.Parse(data)
	if err != nil {
		fp.err = err.Error()
		return fp, nil
	}

	return fp, func() tea.Msg {
		return FileSelectedMsg{Path: expandedPath, Inputs: inputs}
	}
}

// expandPath expands ~ to the home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return home + path[1:]
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	return path
}

// SetError sets an error message to display
func (fp *FilePicker) SetError(msg string) {
	fp.err = msg
}

// View implements tea.Model
func (fp *FilePicker) View() string {
	switch fp.state {
	case stateInput:
		return fp.viewInput()
	case stateSamples:
		return fp.viewSamples()
	default:
		return fp.viewList()
	}
}

func (fp *FilePicker) item(label string, idx int) string {
	if idx == fp.cursor {
		return "> " + selectedStyle.Render(label) + "\n"
	}
	return "  " + normalStyle.Render(label) + "\n"
}

func (fp *FilePicker) viewError(b *strings.Builder) {
	if fp.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + fp.err))
	}
}

func (fp *FilePicker) viewList() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select design file"))
	b.WriteString("\n\n")

	if len(fp.recentFiles) > 0 {
		b.WriteString(helpStyle.Render("Recent files:"))
		b.WriteString("\n")
		for i, path := range fp.recentFiles {
			display := path
			if len(display) > fp.width-10 && fp.width > 20 {
				display = "..." + display[len(display)-(fp.width-13):]
			}
			b.WriteString(fp.item(display, i))
		}
		b.WriteString("\n")

		dividerWidth := min(40, fp.width-4)
		if dividerWidth < 1 {
			dividerWidth = 40
		}
		b.WriteString(dividerStyle.Render(strings.Repeat("─", dividerWidth)))
		b.WriteString("\n")
	}

	idx := len(fp.recentFiles)
	b.WriteString(fp.item("Enter path...", idx))
	if fp.hasSamples() {
		b.WriteString(fp.item("Load sample design...", idx+1))
	}

	fp.viewError(&b)
	return b.String()
}

func (fp *FilePicker) viewInput() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Enter design file path"))
	b.WriteString("\n\n")
	b.WriteString(fp.textInput.View())
	b.WriteString("\n")

	fp.viewError(&b)
	return b.String()
}

func (fp *FilePicker) viewSamples() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select sample design"))
	b.WriteString("\n\n")

	for i, sample := range fp.samples {
		b.WriteString(fp.item(sample.Name, i))
	}
	b.WriteString(fp.item("[back]", len(fp.samples)))

	fp.viewError(&b)
	return b.String()
}
