// ABOUTME: Design input wizard as a bubbletea model
// ABOUTME: Uses huh forms with a visual progress indicator for step navigation

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/icons"
	"github.com/markalston/drone-design-calculator/cli/internal/tui/styles"
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Inputs models.DesignInputs
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects one set of design inputs
type Wizard struct {
	title  string
	inputs models.DesignInputs
	form   *huh.Form
	step   int
	width  int

	// Form field values (strings for huh inputs)
	prop       string
	weight     string
	thrust     string
	rotors     string
	electrical bool
	voltage    string
	capacity   string
	kv         string
}

var rotorOptions = []huh.Option[string]{
	huh.NewOption("Quadcopter (4)", "4"),
	huh.NewOption("Hexacopter (6)", "6"),
	huh.NewOption("Octocopter (8)", "8"),
}

// New creates a wizard prefilled from base. title names the design being
// edited, e.g. "New Design" or "Proposed Design".
func New(base models.DesignInputs, title string) *Wizard {
	base = base.Clone()
	base.ApplyDefaults()

	elec := models.DefaultElectrical()
	if base.Electrical != nil {
		elec = base.Electrical
	}

	w := &Wizard{
		title:      title,
		inputs:     base,
		step:       1,
		prop:       formatNumber(base.PropellerDiameterInches),
		weight:     formatNumber(base.DroneWeightGrams),
		thrust:     formatNumber(base.ThrustPerMotorGrams),
		rotors:     strconv.Itoa(base.RotorCount),
		electrical: base.HasElectrical(),
		voltage:    formatNumber(elec.BatteryVoltage),
		capacity:   formatNumber(elec.BatteryCapacityMilliampHours),
		kv:         formatNumber(elec.MotorKV),
	}

	w.form = w.createFrameForm()
	return w
}

func (w *Wizard) createFrameForm() *huh.Form {
	limits := models.Limits()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Propeller diameter (inches)").
				Description("Sets arm length and frame size").
				Placeholder("e.g., 5").
				CharLimit(8).
				Value(&w.prop).
				Validate(validateAtLeast(limits.MinPropellerDiameterInches)),
			huh.NewInput().
				Title("All-up weight (g)").
				Description("Frame, motors, battery, and payload").
				Placeholder("e.g., 650").
				CharLimit(8).
				Value(&w.weight).
				Validate(validateAtLeast(limits.MinDroneWeightGrams)),
		).Title(fmt.Sprintf("%s: Frame", w.title)).
			Description("Type a number and press Enter to continue"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createThrustForm() *huh.Form {
	limits := models.Limits()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Thrust per motor (g)").
				Description("Maximum static thrust from the motor datasheet").
				Placeholder("e.g., 900").
				CharLimit(8).
				Value(&w.thrust).
				Validate(validateAtLeast(limits.MinThrustPerMotorGrams)),
			huh.NewSelect[string]().
				Title("Rotor count").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(rotorOptions...).
				Value(&w.rotors),
			huh.NewConfirm().
				Title("Include electrical estimates?").
				Description("Adds power, current draw, flight time, and ESC sizing").
				Value(&w.electrical),
		).Title(fmt.Sprintf("%s: Thrust", w.title)).
			Description("Configure the propulsion layout"),
	).WithTheme(styles.FormTheme())
}

func (w *Wizard) createElectricalForm() *huh.Form {
	limits := models.Limits()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Battery voltage (V)").
				Description("Nominal pack voltage, e.g. 14.8 for 4S").
				CharLimit(8).
				Value(&w.voltage).
				Validate(validateAtLeast(limits.MinBatteryVoltage)),
			huh.NewInput().
				Title("Battery capacity (mAh)").
				CharLimit(8).
				Value(&w.capacity).
				Validate(validateAtLeast(limits.MinBatteryCapacityMilliampHours)),
			huh.NewInput().
				Title("Motor KV (RPM/V)").
				CharLimit(8).
				Value(&w.kv).
				Validate(validateAtLeast(limits.MinMotorKV)),
		).Title(fmt.Sprintf("%s: Electrical", w.title)).
			Description("Battery and motor ratings"),
	).WithTheme(styles.FormTheme())
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

// advanceStep stores the current step's values and moves on. The electrical
// step is skipped when the user opts out of electrical estimates.
func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.inputs.PropellerDiameterInches = parseNumber(w.prop)
		w.inputs.DroneWeightGrams = parseNumber(w.weight)
		w.step = 2
		w.form = w.createThrustForm()
		return w, w.form.Init()

	case 2:
		w.inputs.ThrustPerMotorGrams = parseNumber(w.thrust)
		w.inputs.RotorCount, _ = strconv.Atoi(w.rotors)
		if !w.electrical {
			w.inputs.Electrical = nil
			return w, w.complete()
		}
		w.step = 3
		w.form = w.createElectricalForm()
		return w, w.form.Init()

	case 3:
		w.inputs.Electrical = &models.ElectricalInputs{
			BatteryVoltage:               parseNumber(w.voltage),
			BatteryCapacityMilliampHours: parseNumber(w.capacity),
			MotorKV:                      parseNumber(w.kv),
		}
		return w, w.complete()
	}

	return w, nil
}

func (w *Wizard) complete() tea.Cmd {
	inputs := w.inputs.Clone()
	return func() tea.Msg {
		return WizardCompleteMsg{Inputs: inputs}
	}
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// Inputs returns the values collected so far
func (w *Wizard) Inputs() models.DesignInputs {
	return w.inputs.Clone()
}

// steps lists the step names for the progress indicator
func (w *Wizard) steps() []string {
	if w.electrical {
		return []string{"Frame", "Thrust", "Electrical"}
	}
	return []string{"Frame", "Thrust"}
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	// Stay one column inside the frame
	width := max(60, w.width-1)

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	names := w.steps()
	var steps []string
	for i, name := range names {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │" is 5 columns of chrome
	barWidth := width - 5
	filledWidth := min(barWidth, (w.step*barWidth)/len(names))
	filledBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth))
	emptyBar := lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", barWidth-filledWidth))

	title := icons.Wizard.String() + " " + w.title
	topBorder := "┌─ " + titleStyle.Render(title) + " " + strings.Repeat("─", max(0, width-5-lipgloss.Width(title))) + "┐"
	stepsPadded := "│ " + stepsLine + strings.Repeat(" ", max(0, width-4-lipgloss.Width(stepsLine))) + " │"
	progressPadded := "│  " + filledBar + emptyBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsPadded,
		progressPadded,
		bottomBorder,
	}, "\n"))
}

// validateAtLeast returns a huh validator enforcing a numeric floor
func validateAtLeast(floor float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if v < floor {
			return fmt.Errorf("must be at least %s", formatNumber(floor))
		}
		return nil
	}
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
