package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// digitMap maps each digit character (0-9) and colon to a 3-row half-block
// glyph. Digits are 3 cells wide, the colon is 1.
var digitMap = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {"▄", "▄", " "},
}

// bigCountdownMinWidth is the narrowest card that shows the block countdown.
const bigCountdownMinWidth = 40

// renderBigCountdown takes a countdown like "12:04:59" and returns a 3-row
// block rendering. Falls back to a single styled line when width is below
// bigCountdownMinWidth.
func renderBigCountdown(countdown string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < bigCountdownMinWidth {
		return style.Render(countdown)
	}

	var rows [3]strings.Builder
	first := true
	for _, ch := range countdown {
		glyph, ok := digitMap[ch]
		if !ok {
			continue
		}
		for i := range rows {
			if !first {
				rows[i].WriteString(" ")
			}
			rows[i].WriteString(glyph[i])
		}
		first = false
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = style.Render(rows[i].String())
	}
	return strings.Join(lines, "\n")
}
