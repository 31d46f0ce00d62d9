// ABOUTME: Tests for icon font detection
// ABOUTME: Verifies the environment override and terminal heuristics

package icons

import "testing"

func TestDetectNerdFonts_EnvOverride(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"0", false},
		{"no", false},
	}

	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv(NerdFontsEnvVar, tc.value)
			t.Setenv("TERM_PROGRAM", "iTerm.app")
			if got := detectNerdFonts(); got != tc.want {
				t.Errorf("expected %v for %q, got %v", tc.want, tc.value, got)
			}
		})
	}
}

func TestDetectNerdFonts_Terminal(t *testing.T) {
	t.Setenv(NerdFontsEnvVar, "")
	t.Setenv("TERM", "xterm-kitty")
	t.Setenv("TERM_PROGRAM", "")

	if !detectNerdFonts() {
		t.Error("expected kitty to enable Nerd Fonts")
	}
}

func TestDetectNerdFonts_DefaultFallback(t *testing.T) {
	t.Setenv(NerdFontsEnvVar, "")
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("TERM_PROGRAM", "Apple_Terminal")

	if detectNerdFonts() {
		t.Error("expected Unicode fallback for an unknown terminal")
	}
}

func TestIconFallbacksAreSet(t *testing.T) {
	for name, icon := range map[string]Icon{
		"Propeller": Propeller,
		"Battery":   Battery,
		"CheckOK":   CheckOK,
		"App":       App,
	} {
		if icon.Fallback == "" || icon.NerdFont == "" {
			t.Errorf("%s: expected both variants to be set", name)
		}
	}
}
