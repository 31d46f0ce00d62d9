// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

// NerdFontsEnvVar forces Nerd Font icons on ("1"/"true") or off (anything else)
const NerdFontsEnvVar = "DRONECALC_NERD_FONTS"

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// nerdFontTerminals are terminals that commonly ship with a Nerd Font configured
var nerdFontTerminals = []string{
	"iTerm.app",
	"alacritty",
	"WezTerm",
	"kitty",
	"ghostty",
}

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	if env := os.Getenv(NerdFontsEnvVar); env != "" {
		return env == "1" || strings.EqualFold(env, "true")
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Design quantities
	Propeller = Icon{"󰖎", "✢"} // nf-md-fan
	Frame     = Icon{"󰆾", "✛"} // nf-md-crosshairs
	Thrust    = Icon{"󰁝", "↑"} // nf-md-arrow_up_bold
	Weight    = Icon{"󰖡", "▼"} // nf-md-weight
	Battery   = Icon{"󰁹", "▭"} // nf-md-battery
	Power     = Icon{"󱐋", "ϟ"} // nf-md-lightning_bolt
	Clock     = Icon{"󰥔", "◷"} // nf-md-clock_outline
	Gauge     = Icon{"󰓅", "◐"} // nf-md-speedometer

	// Status indicators
	CheckOK  = Icon{"\uf058", "✓"} // nf-fa-check_circle
	Warning  = Icon{"\uf071", "⚠"} // nf-fa-warning
	Critical = Icon{"\uf057", "✗"} // nf-fa-times_circle
	Info     = Icon{"\uf05a", "ℹ"} // nf-fa-info_circle

	// Actions
	Wizard  = Icon{"󰂓", "★"} // nf-md-auto_fix
	Compare = Icon{"󰕛", "⇄"} // nf-md-compare
	Toggle  = Icon{"󰔡", "±"} // nf-md-toggle_switch
	File    = Icon{"󰈙", "▤"} // nf-md-file_document
	Back    = Icon{"󰁍", "←"} // nf-md-arrow_left
	Quit    = Icon{"󰗼", "×"} // nf-md-exit_to_app

	// Application
	App      = Icon{"󱜗", "✈"} // nf-md-quadcopter
	Settings = Icon{"󰒓", "⚙"} // nf-md-cog
)
