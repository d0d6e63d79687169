package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/xvierd/valentine-cli/internal/domain"
)

// canvas is a fixed-size grid of terminal rows that blocks of styled text
// can be painted onto at absolute cell positions.
type canvas struct {
	width  int
	height int
	rows   []string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height, rows: make([]string, height)}
	blank := strings.Repeat(" ", width)
	for i := range c.rows {
		c.rows[i] = blank
	}
	return c
}

// put paints a (possibly multi-line) block with its top-left cell at (x, y).
// Parts of the block outside the canvas are clipped.
func (c *canvas) put(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 || row >= c.height {
			continue
		}
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if col >= c.width {
			continue
		}
		if w := ansi.StringWidth(line); col+w > c.width {
			line = ansi.Truncate(line, c.width-col, "")
		}
		if line == "" {
			continue
		}
		c.rows[row] = splice(c.rows[row], col, line, c.width)
	}
}

// splice replaces the cells of base starting at col with line.
func splice(base string, col int, line string, width int) string {
	left := ansi.Truncate(base, col, "")
	if lw := ansi.StringWidth(left); lw < col {
		left += strings.Repeat(" ", col-lw)
	}
	end := col + ansi.StringWidth(line)
	right := ansi.TruncateLeft(base, end, "")
	out := left + line + right
	if w := ansi.StringWidth(out); w < width {
		out += strings.Repeat(" ", width-w)
	}
	return out
}

// String joins the rows into a full-screen frame.
func (c *canvas) String() string {
	return strings.Join(c.rows, "\n")
}

// ornamentGlyph picks the character for an ornament. Large ornaments use the
// solid variant; sparkles twinkle between variants as they spin.
func ornamentGlyph(o domain.Ornament, frame domain.OrnamentFrame) string {
	large := o.Size >= 28
	switch o.Kind {
	case domain.OrnamentSparkle:
		if math.Mod(frame.Rotation, 180) < 90 {
			return "✦"
		}
		return "✧"
	case domain.OrnamentFlower:
		if large {
			return "❀"
		}
		return "✿"
	default:
		if large {
			return "♥"
		}
		return "♡"
	}
}

// paintField draws the floating ornaments. The field sits behind everything
// else, so it is painted first onto an empty canvas.
func paintField(c *canvas, field []domain.Ornament, elapsed time.Duration) {
	for _, o := range field {
		frame := o.At(elapsed)
		x := int(math.Floor(frame.XPercent / 100 * float64(c.width)))
		y := int(math.Floor(frame.YPercent / 100 * float64(c.height)))
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}
		style := lipgloss.NewStyle().Foreground(ornamentColors[o.Color%len(ornamentColors)])
		if frame.Opacity < 0.25 {
			style = style.Faint(true)
		}
		c.put(x, y, style.Render(ornamentGlyph(o, frame)))
	}
}

var confettiGlyphs = map[domain.ConfettiShape]string{
	domain.ConfettiCircle: "●",
	domain.ConfettiSquare: "■",
	domain.ConfettiHeart:  "♥",
}

// paintConfetti draws the celebration particles over everything else.
func paintConfetti(c *canvas, particles []domain.Confetti, elapsed time.Duration) {
	for _, p := range particles {
		frame := p.At(elapsed)
		if !frame.Visible || frame.Opacity <= 0.05 {
			continue
		}
		x := int(math.Floor(frame.XPercent/100*float64(c.width) + frame.XOffset))
		y := int(math.Floor(frame.YPercent / 100 * float64(c.height)))
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}
		glyph := confettiGlyphs[p.Shape]
		if p.Size < 11 && p.Shape != domain.ConfettiHeart {
			glyph = "•"
		}
		style := lipgloss.NewStyle().Foreground(confettiColors[p.Color%len(confettiColors)])
		if frame.Opacity < 0.4 {
			style = style.Faint(true)
		}
		c.put(x, y, style.Render(glyph))
	}
}
