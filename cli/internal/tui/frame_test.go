// ABOUTME: Test to verify header/footer width alignment
// ABOUTME: Ensures frame renders at correct terminal width on every screen

package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/markalston/drone-design-calculator/backend/models"
	"github.com/markalston/drone-design-calculator/cli/internal/engine"
)

func checkFrame(t *testing.T, view string, expectedWidth int) {
	t.Helper()

	// Panels draw rounded borders too, so only the outer lines are the frame
	lines := strings.Split(view, "\n")
	header := lines[0]
	footer := lines[len(lines)-1]

	if !strings.HasPrefix(header, "╭─") {
		t.Errorf("header not found in output: %q", header)
	} else if w := lipgloss.Width(header); w != expectedWidth {
		t.Errorf("header width: expected %d, got %d (%q)", expectedWidth, w, header)
	}

	if !strings.HasPrefix(footer, "╰─") {
		t.Errorf("footer not found in output: %q", footer)
	} else if w := lipgloss.Width(footer); w != expectedWidth {
		t.Errorf("footer width: expected %d, got %d (%q)", expectedWidth, w, footer)
	}
}

func TestFrameAlignment(t *testing.T) {
	for _, targetWidth := range []int{60, 80, 100, 120} {
		t.Run(fmt.Sprintf("width-%d", targetWidth), func(t *testing.T) {
			app := New(nil, "")

			model, _ := app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 30})
			app = model.(*App)

			// One column short of the terminal, never below 80
			expectedWidth := max(80, targetWidth-1)
			checkFrame(t, app.View(), expectedWidth)
		})
	}
}

func TestFrameAlignment_ResultsScreen(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	for _, targetWidth := range []int{80, 140} {
		t.Run(fmt.Sprintf("width-%d", targetWidth), func(t *testing.T) {
			app := New(engine.NewLocal(), "")
			app.Update(tea.WindowSizeMsg{Width: targetWidth, Height: 50})

			app.designName = "Default design"
			feed(t, app, app.calculate(models.DefaultInputs()))

			if app.screen != ScreenResults {
				t.Fatalf("expected results screen, got %d", app.screen)
			}
			checkFrame(t, app.View(), max(80, targetWidth-1))
		})
	}
}
