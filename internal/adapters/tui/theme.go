package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/valentine-cli/internal/config"
)

// ornamentColors are the background ornament colours, indexed by
// Ornament.Color.
var ornamentColors = [...]lipgloss.Color{"#FECDD3", "#F9A8D4", "#E9D5FF", "#FED7AA", "#FB7185"}

// confettiColors are the celebration colours, indexed by Confetti.Color.
var confettiColors = [...]lipgloss.Color{"#F472B6", "#FB7185", "#FBBF24", "#38BDF8", "#C084FC", "#4ADE80"}

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles are the lipgloss styles derived from a theme.
type styles struct {
	card    lipgloss.Style
	title   lipgloss.Style
	text    lipgloss.Style
	accent  lipgloss.Style
	muted   lipgloss.Style
	help    lipgloss.Style
	sad     lipgloss.Style
	errText lipgloss.Style
	pill    lipgloss.Style
	clock   lipgloss.Style
	yes     lipgloss.Style
	maybe   lipgloss.Style
	no      lipgloss.Style
	reset   lipgloss.Style
}

func newStyles(t config.ThemeConfig) styles {
	button := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 2)
	return styles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.ColorBorder)).
			Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorTitle)),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorText)),
		accent:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorAccent)),
		muted:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorMuted)),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorHelp)),
		sad:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorSad)),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		pill:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorTitle)),
		clock:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.ColorAccent)).Background(lipgloss.Color("#FFF1F2")).Padding(0, 1),
		yes:     button.Background(lipgloss.Color(t.ColorYes)),
		maybe:   button.Background(lipgloss.Color(t.ColorMaybe)),
		no:      button.Background(lipgloss.Color(t.ColorNo)),
		reset:   button.Background(lipgloss.Color(t.ColorReset)),
	}
}
