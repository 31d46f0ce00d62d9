// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/backend/services"
	"github.com/markalston/drone-design-calculator/cli/internal/engine"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/comparison"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/debuglog"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/filepicker"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/icons"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/menu"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/recentfiles"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/results"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/samples"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/styles"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenFilePicker
	ScreenResults
	ScreenComparison
	ScreenWizard
)

// Layout constants
const (
	minTerminalWidth = 80 // Minimum width before using single-column layout
	panelPadding     = 4  // Total horizontal padding from panel borders (2 each side)
	actionsMinWidth  = 30
)

// requestTimeout bounds a single calculation, mostly relevant for the remote engine
const requestTimeout = 10 * time.Second

// wizardPurpose records what a finished wizard run should do
type wizardPurpose int

const (
	purposeNew wizardPurpose = iota
	purposeEdit
	purposeWhatIf
)

// calculatedMsg is sent when a design calculation completes
type calculatedMsg struct {
	inputs  models.DesignInputs
	metrics *models.DesignMetrics
	err     error
}

// comparedMsg is sent when a what-if comparison completes
type comparedMsg struct {
	proposed models.DesignInputs
	result   *models.DesignComparison
	err      error
}

// App is the root model for the TUI
type App struct {
	engine         engine.Engine
	screen         Screen
	width          int
	height         int
	err            error
	basePath       string
	designName     string // Name of the design source for the header
	lastCalculated time.Time

	results  *results.Results
	proposed models.DesignInputs
	compView *comparison.Comparison

	// Child models
	menu          *menu.Menu
	filePicker    *filepicker.FilePicker
	wizardScreen  *wizard.Wizard
	wizardPurpose wizardPurpose

	recentFiles *recentfiles.RecentFiles
}

// New creates a new TUI application
func New(eng engine.Engine, basePath string) *App {
	return &App{
		engine:      eng,
		screen:      ScreenMenu,
		basePath:    basePath,
		recentFiles: recentfiles.New(recentfiles.DefaultConfigDir()),
		menu:        menu.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.menu.Init()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.results != nil {
			a.results.SetSize(a.resultsWidth(), a.contentHeight())
		}
		if a.compView != nil {
			a.compView.SetWidth(a.comparisonWidth())
		}
		if a.menu != nil {
			a.menu.Update(msg)
		}
		if a.filePicker != nil {
			a.filePicker.Update(msg)
		}
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenFilePicker:
			return a.updateFilePicker(msg)
		case ScreenResults:
			return a.updateResults(msg)
		case ScreenComparison:
			return a.updateComparison(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		}

	case menu.SelectedMsg:
		return a.handleMenuSelected(msg)

	case menu.CancelledMsg:
		return a, tea.Quit

	case filepicker.FileSelectedMsg:
		if err := a.recentFiles.Add(msg.Path); err != nil {
			debuglog.Error("record recent file", err)
		}
		a.designName = filepath.Base(msg.Path)
		a.filePicker = nil
		return a, a.calculate(msg.Inputs)

	case filepicker.CancelledMsg:
		a.screen = ScreenMenu
		a.filePicker = nil
		return a, nil

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		if a.wizardPurpose == purposeWhatIf && a.results != nil {
			return a, a.compare(a.results.Inputs(), msg.Inputs)
		}
		if a.wizardPurpose == purposeNew {
			a.designName = "New design"
		}
		return a, a.calculate(msg.Inputs)

	case wizard.WizardCancelledMsg:
		a.wizardScreen = nil
		if a.results != nil {
			a.screen = ScreenResults
		} else {
			a.screen = ScreenMenu
			a.menu = menu.New()
			return a, a.menu.Init()
		}
		return a, nil

	case calculatedMsg:
		return a.handleCalculated(msg)

	case comparedMsg:
		return a.handleCompared(msg)

	default:
		// huh forms need their internal messages
		switch {
		case a.screen == ScreenWizard && a.wizardScreen != nil:
			return a.updateWizard(msg)
		case a.screen == ScreenMenu && a.menu != nil:
			return a.updateMenu(msg)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.menu == nil {
		return a, nil
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateFilePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.filePicker == nil {
		return a, nil
	}
	model, cmd := a.filePicker.Update(msg)
	a.filePicker = model.(*filepicker.FilePicker)
	return a, cmd
}

func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b":
		return a, a.backToMenu()
	}

	if a.results == nil {
		return a, nil
	}

	switch msg.String() {
	case "w":
		return a, a.runWizard(a.results.Inputs(), purposeWhatIf)
	case "e":
		return a, a.runWizard(a.results.Inputs(), purposeEdit)
	case "t":
		style := a.results.ToggleStyle()
		if a.compView != nil {
			a.compView.SetStyle(style)
		}
		return a, nil
	}

	return a, a.results.Update(msg)
}

func (a *App) updateComparison(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b":
		a.screen = ScreenResults
		a.compView = nil
		a.err = nil
		return a, nil
	case "w":
		if a.results != nil {
			return a, a.runWizard(a.proposed, purposeWhatIf)
		}
	case "a":
		// Adopt the proposed design as the new current design
		if a.compView != nil {
			a.compView = nil
			a.designName = "Proposed design"
			return a, a.calculate(a.proposed)
		}
	case "t":
		if a.results != nil && a.compView != nil {
			a.compView.SetStyle(a.results.ToggleStyle())
		}
	}
	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) handleMenuSelected(msg menu.SelectedMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case menu.ActionNewDesign:
		return a, a.runWizard(models.DefaultInputs(), purposeNew)

	case menu.ActionLoadFile:
		recentList, err := a.recentFiles.Load()
		if err != nil {
			debuglog.Error("load recent files", err)
		}
		sampleFiles, err := samples.Discover(samples.FindSamplesDir(a.basePath))
		if err != nil {
			debuglog.Error("discover samples", err)
		}
		a.filePicker = filepicker.New(recentList, sampleFiles)
		a.filePicker.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.screen = ScreenFilePicker
		return a, nil

	case menu.ActionDefaultDesign:
		a.designName = "Default design"
		return a, a.calculate(models.DefaultInputs())
	}

	return a, nil
}

func (a *App) handleCalculated(msg calculatedMsg) (tea.Model, tea.Cmd) {
	a.screen = ScreenResults
	if msg.err != nil {
		debuglog.Error("calculate", msg.err)
		a.err = msg.err
		return a, nil
	}

	// Keep the display style across recalculations
	style := services.DisplayPrecise
	if a.results != nil {
		style = a.results.Style()
	}

	a.err = nil
	a.lastCalculated = time.Now()
	a.results = results.New(msg.inputs, *msg.metrics, a.resultsWidth(), a.contentHeight())
	a.results.SetStyle(style)
	debuglog.Logger().Debug("Design calculated",
		"variant", msg.metrics.Variant,
		"warnings", len(msg.metrics.Warnings),
		"engine", a.engineName())
	return a, nil
}

func (a *App) handleCompared(msg comparedMsg) (tea.Model, tea.Cmd) {
	a.screen = ScreenComparison
	if msg.err != nil {
		debuglog.Error("compare", msg.err)
		a.err = msg.err
		return a, nil
	}

	a.err = nil
	a.proposed = msg.proposed
	a.compView = comparison.New(msg.result, a.comparisonWidth())
	if a.results != nil {
		a.compView.SetStyle(a.results.Style())
	}
	debuglog.Logger().Debug("Designs compared",
		"deltas", len(msg.result.Deltas),
		"warnings", len(msg.result.Warnings))
	return a, nil
}

// backToMenu clears the current design and shows the start menu
func (a *App) backToMenu() tea.Cmd {
	a.screen = ScreenMenu
	a.results = nil
	a.compView = nil
	a.err = nil
	a.designName = ""
	a.lastCalculated = time.Time{}
	a.menu = menu.New()
	return a.menu.Init()
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenFilePicker:
		content = a.viewFilePicker()
	case ScreenResults:
		content = a.viewResults()
	case ScreenComparison:
		content = a.viewComparison()
	case ScreenWizard:
		content = a.viewWizard()
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	if a.menu != nil {
		return a.menu.View()
	}
	return ""
}

func (a *App) viewFilePicker() string {
	if a.filePicker != nil {
		return a.filePicker.View()
	}
	return ""
}

func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return a.wizardScreen.View()
	}
	return ""
}

// viewError renders a calculation or backend error in a panel
func (a *App) viewError() string {
	return styles.Panel.Width(a.frameWidth() - panelPadding).Render(
		styles.StatusCritical.Render("Error: "+a.err.Error()) + "\n\n" +
			styles.Subtitle.Render("Press b to return to the menu"))
}

// viewResults renders the results with an actions pane
func (a *App) viewResults() string {
	if a.err != nil {
		return a.viewError()
	}

	leftPane := styles.Panel.Width(a.resultsWidth()).Render("Calculating...")
	if a.results != nil {
		leftPane = styles.ActivePanel.Width(a.resultsWidth()).Render(a.results.View())
	}

	if a.singleColumn() {
		return leftPane
	}

	rightContent := styles.Title.Render(icons.Settings.String()+" Actions") + "\n\n"
	rightContent += icons.Compare.String() + " What-if comparison\n"
	rightContent += icons.Wizard.String() + " Edit design\n"
	rightContent += icons.Toggle.String() + " Toggle whole numbers\n"
	rightContent += icons.Back.String() + " Back to menu\n"
	rightContent += icons.Quit.String() + " Quit application\n"
	rightPane := styles.Panel.Width(a.actionsWidth()).Render(rightContent)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
}

// viewComparison renders the comparison full width
func (a *App) viewComparison() string {
	if a.err != nil {
		return a.viewError()
	}
	if a.compView == nil {
		return styles.Panel.Width(a.comparisonWidth()).Render("Comparing...")
	}
	return styles.ActivePanel.Width(a.comparisonWidth()).Render(a.compView.View())
}

func (a *App) singleColumn() bool {
	return a.width < minTerminalWidth+actionsMinWidth
}

// resultsWidth calculates the width for the results pane
func (a *App) resultsWidth() int {
	if a.singleColumn() {
		return max(0, a.frameWidth()-panelPadding)
	}
	return a.frameWidth() - actionsMinWidth - 2*panelPadding
}

// actionsWidth calculates the width for the actions pane
func (a *App) actionsWidth() int {
	return actionsMinWidth
}

// comparisonWidth calculates the width for the comparison pane
func (a *App) comparisonWidth() int {
	return max(0, a.frameWidth()-panelPadding)
}

// contentHeight calculates the height available for screen content
func (a *App) contentHeight() int {
	// Header, footer, and the panel border plus padding
	return a.height - 8
}

// frameWidth is the header and footer width. It stays one column short of
// the terminal to avoid wrapping, with a floor for usability.
func (a *App) frameWidth() int {
	return max(minTerminalWidth, a.width-1)
}

func (a *App) engineName() string {
	if a.engine == nil {
		return ""
	}
	return a.engine.Name()
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("Drone Design Calculator"))

	var parts []string
	if a.designName != "" && a.screen != ScreenMenu && a.screen != ScreenFilePicker {
		parts = append(parts, a.designName)
	}
	if name := a.engineName(); name != "" {
		parts = append(parts, name)
	}
	rightText := ""
	if len(parts) > 0 {
		rightText = " " + contextStyle.Render(strings.Join(parts, " · ")) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╭─ and ─╮
	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"

	return borderStyle.Render(header)
}

// shortcuts lists the keyboard shortcuts for the current screen
func (a *App) shortcuts() []string {
	switch a.screen {
	case ScreenMenu:
		return []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenFilePicker:
		return []string{"↑↓ Navigate", "Enter Select", "b Back"}
	case ScreenResults:
		return []string{"w What-if", "e Edit", "t Toggle", "b Back", "q Quit"}
	case ScreenComparison:
		return []string{"a Accept", "w What-if", "t Toggle", "b Back", "q Quit"}
	case ScreenWizard:
		return []string{"Tab Next", "Enter Confirm", "Esc Cancel"}
	}
	return nil
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var styled []string
	for _, s := range a.shortcuts() {
		key, label, _ := strings.Cut(s, " ")
		styled = append(styled, keyStyle.Render(key)+" "+labelStyle.Render(label))
	}
	leftText := " " + strings.Join(styled, "  ") + " "

	rightText := ""
	if !a.lastCalculated.IsZero() && (a.screen == ScreenResults || a.screen == ScreenComparison) {
		rightText = " " + statusStyle.Render("Calculated "+humanize.Time(a.lastCalculated)) + " "
	}

	fillWidth := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText)) // -4 for ╰─ and ─╯
	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"

	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// runWizard transitions to the wizard screen
func (a *App) runWizard(base models.DesignInputs, purpose wizardPurpose) tea.Cmd {
	title := "New Design"
	switch purpose {
	case purposeEdit:
		title = "Edit Design"
	case purposeWhatIf:
		title = "Proposed Design"
	}

	a.wizardPurpose = purpose
	a.wizardScreen = wizard.New(base, title)
	a.wizardScreen.SetWidth(a.frameWidth())
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// calculate creates a command that runs the engine on one design
func (a *App) calculate(inputs models.DesignInputs) tea.Cmd {
	eng := a.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		metrics, err := eng.Calculate(ctx, inputs)
		return calculatedMsg{inputs: inputs, metrics: metrics, err: err}
	}
}

// compare creates a command that compares a proposed design to the current one
func (a *App) compare(current, proposed models.DesignInputs) tea.Cmd {
	eng := a.engine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		result, err := eng.Compare(ctx, current, proposed)
		return comparedMsg{proposed: proposed, result: result, err: err}
	}
}

// Run starts the TUI
func Run(eng engine.Engine) error {
	if err := debuglog.Init(recentfiles.DefaultConfigDir()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: debug log disabled: %v\n", err)
	}
	defer debuglog.Close()

	app := New(eng, findBasePath())

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// findBasePath returns the working directory when it holds a samples directory
func findBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(filepath.Join(cwd, "samples")); err == nil {
		return cwd
	}
	// Fall back to DRONECALC_SAMPLES_PATH
	return ""
}
