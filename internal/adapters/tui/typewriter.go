package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// typewriter reveals text one character at a time.
type typewriter struct {
	speed time.Duration // per character
	delay time.Duration // before the first character
}

// visible returns how many characters are shown after elapsed.
func (t typewriter) visible(elapsed time.Duration) int {
	if elapsed < t.delay {
		return 0
	}
	if t.speed <= 0 {
		return int(^uint(0) >> 1)
	}
	return int((elapsed-t.delay)/t.speed) + 1
}

// lines wraps text to width and hides the characters not yet typed, keeping
// each line's width so centred text does not shift while it appears.
func (t typewriter) lines(text string, width int, elapsed time.Duration) []string {
	wrapped := wrapText(text, width)
	remaining := t.visible(elapsed)
	out := make([]string, len(wrapped))
	for i, line := range wrapped {
		var b strings.Builder
		for _, r := range line {
			if remaining > 0 {
				b.WriteRune(r)
				remaining--
				continue
			}
			b.WriteString(strings.Repeat(" ", ansi.StringWidth(string(r))))
		}
		out[i] = b.String()
	}
	return out
}

// wrapText word-wraps plain text to width without padding.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	rendered := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(rendered, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}
