package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

const (
	maxCardWidth = 60
	minCardWidth = 20
	buttonGap    = 2
)

// hitBox is a clickable screen region.
type hitBox struct {
	cmd  ports.CardCommand
	rect domain.Rect
}

// button is a labelled control on the card.
type button struct {
	cmd      ports.CardCommand
	rendered string
}

// screen is a rendered card plus the absolute positions of its controls.
type screen struct {
	card   string
	x, y   int
	boxes  []hitBox
	noSlot domain.Rect // zero when the evasive control is not in the layout
}

// cardBuilder accumulates centred card lines and the positions of the
// buttons placed between them, relative to the card's content origin.
type cardBuilder struct {
	width int
	lines []string
	boxes []hitBox
}

func newCardBuilder(width int) *cardBuilder {
	return &cardBuilder{width: width}
}

// blank adds an empty spacer line.
func (b *cardBuilder) blank() {
	b.lines = append(b.lines, strings.Repeat(" ", b.width))
}

// add centres every line of block.
func (b *cardBuilder) add(block string) {
	for _, line := range strings.Split(block, "\n") {
		b.lines = append(b.lines, center(line, b.width))
	}
}

// addLines centres each of lines after styling it.
func (b *cardBuilder) addLines(style lipgloss.Style, lines []string) {
	for _, line := range lines {
		b.lines = append(b.lines, center(style.Render(line), b.width))
	}
}

// spread places left and right on one line, pushed to the edges.
func (b *cardBuilder) spread(left, right string) {
	gap := b.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		b.add(left)
		b.add(right)
		return
	}
	b.lines = append(b.lines, left+strings.Repeat(" ", gap)+right)
}

// buttons lays buttons out side by side, or stacked when they do not fit.
func (b *cardBuilder) buttons(btns []button) {
	if len(btns) == 0 {
		return
	}
	total := buttonGap * (len(btns) - 1)
	for _, btn := range btns {
		total += lipgloss.Width(btn.rendered)
	}

	if total > b.width {
		for i, btn := range btns {
			if i > 0 {
				b.blank()
			}
			b.place(btn, (b.width-lipgloss.Width(btn.rendered))/2)
		}
		return
	}

	top := len(b.lines)
	left := (b.width - total) / 2
	blocks := make([]string, 0, 2*len(btns))
	x := left
	for i, btn := range btns {
		if i > 0 {
			blocks = append(blocks, strings.Repeat(" ", buttonGap))
		}
		blocks = append(blocks, btn.rendered)
		b.boxes = append(b.boxes, hitBox{cmd: btn.cmd, rect: domain.Rect{
			X: x, Y: top,
			Width:  lipgloss.Width(btn.rendered),
			Height: lipgloss.Height(btn.rendered),
		}})
		x += lipgloss.Width(btn.rendered) + buttonGap
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	for _, line := range strings.Split(row, "\n") {
		b.lines = append(b.lines, pad(strings.Repeat(" ", left)+line, b.width))
	}
}

func (b *cardBuilder) place(btn button, left int) {
	if left < 0 {
		left = 0
	}
	b.boxes = append(b.boxes, hitBox{cmd: btn.cmd, rect: domain.Rect{
		X: left, Y: len(b.lines),
		Width:  lipgloss.Width(btn.rendered),
		Height: lipgloss.Height(btn.rendered),
	}})
	for _, line := range strings.Split(btn.rendered, "\n") {
		b.lines = append(b.lines, pad(strings.Repeat(" ", left)+line, b.width))
	}
}

// build frames the lines with the card style and centres the card in the
// area above the page footer.
func (b *cardBuilder) build(style lipgloss.Style, areaW, areaH int) screen {
	card := style.Render(strings.Join(b.lines, "\n"))
	x := (areaW - lipgloss.Width(card)) / 2
	y := (areaH - lipgloss.Height(card)) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	originX := x + style.GetBorderLeftSize() + style.GetPaddingLeft()
	originY := y + style.GetBorderTopSize() + style.GetPaddingTop()

	s := screen{card: card, x: x, y: y}
	for _, box := range b.boxes {
		box.rect.X += originX
		box.rect.Y += originY
		s.boxes = append(s.boxes, box)
		if box.cmd == ports.CmdDecline {
			s.noSlot = box.rect
		}
	}
	return s
}

// center pads line on both sides to width cells.
func center(line string, width int) string {
	w := ansi.StringWidth(line)
	if w >= width {
		return line
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + line + strings.Repeat(" ", width-w-left)
}

// pad right-pads line to width cells.
func pad(line string, width int) string {
	if w := ansi.StringWidth(line); w < width {
		return line + strings.Repeat(" ", width-w)
	}
	return line
}
