package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/valentine-cli/internal/domain"
	"github.com/xvierd/valentine-cli/internal/ports"
)

const (
	// compactHeight is the terminal height below which spacers and the
	// escalation meter are dropped and buttons shrink to one line.
	compactHeight = 32
	// bigCountdownHeight is the terminal height from which the countdown is
	// drawn in block digits.
	bigCountdownHeight = 42

	noLabel = "No 😜"
)

// Typewriter timings for each screen.
var (
	headingWriter     = typewriter{speed: 50 * time.Millisecond}
	descriptionWriter = typewriter{speed: 20 * time.Millisecond, delay: 500 * time.Millisecond}
	yayWriter         = typewriter{speed: 100 * time.Millisecond}
	acceptedWriter    = typewriter{speed: 40 * time.Millisecond, delay: 800 * time.Millisecond}
	declinedWriter    = typewriter{speed: 100 * time.Millisecond}
	brokenWriter      = typewriter{speed: 30 * time.Millisecond, delay: time.Second}
)

const (
	acceptedMessage = "You just made me the happiest person 💖 I love you forever!"
	declinedMessage = "You're too fast! My heart is broken... Can we try that again? I'll be faster next time!"
)

func (m Model) compact() bool {
	return m.height < compactHeight
}

// innerWidth is the width of the card's content area.
func (m Model) innerWidth() int {
	w := m.width - 10
	if w > maxCardWidth {
		w = maxCardWidth
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	return w
}

// sinceScreen is how long the current screen has been shown.
func (m Model) sinceScreen() time.Duration {
	return m.now.Sub(m.screenAt)
}

func (m Model) buttonStyle(base lipgloss.Style) lipgloss.Style {
	if m.compact() {
		return base
	}
	return base.Padding(1, 2)
}

// noButton renders the evasive control with the tilt and scale of pos.
func (m Model) noButton(pos domain.ControlPosition) string {
	style := m.buttonStyle(m.styles.no)
	h := 2
	switch {
	case pos.Scale < 0.85:
		h = 1
	case pos.Scale > 1.05:
		h = 3
	}
	style = style.PaddingLeft(h).PaddingRight(h)
	if math.Abs(pos.Rotation) > 15 {
		style = style.Italic(true)
	}
	return style.Render(noLabel)
}

// maybeButton renders the escalate control, shaking it while an escalation
// is pending.
func (m Model) maybeButton(label string) string {
	style := m.buttonStyle(m.styles.maybe)
	if m.escalating {
		if (m.now.UnixMilli()/40)%2 == 0 {
			style = style.PaddingLeft(1).PaddingRight(3)
		} else {
			style = style.PaddingLeft(3).PaddingRight(1)
		}
	}
	return style.Render(label)
}

// layout renders the card for the current phase and records where its
// controls are.
func (m Model) layout() screen {
	switch m.session.Phase() {
	case domain.PhaseAccepted:
		return m.acceptedScreen()
	case domain.PhaseDeclined:
		return m.declinedScreen()
	default:
		return m.invitationScreen()
	}
}

func (m Model) cardArea() (int, int) {
	return m.width, m.height - 2
}

func (m Model) invitationScreen() screen {
	p := domain.Present(m.session.Level, m.card.Nickname)
	w := m.innerWidth()
	compact := m.compact()
	elapsed := m.sinceScreen()
	b := newCardBuilder(w)

	if !compact {
		b.spread(
			m.styles.accent.Render(m.theme.IconHeart+" Special Invitation"),
			m.styles.muted.Render(p.Badge),
		)
		b.blank()
	}

	b.addLines(m.styles.title, headingWriter.lines(p.Heading, w, elapsed))
	if !compact {
		b.blank()
	}

	if m.height >= bigCountdownHeight && w >= bigCountdownMinWidth {
		b.add(m.styles.pill.Render("Valentine's Day ends in: " + m.theme.IconClock))
		b.add(renderBigCountdown(m.countdown, lipgloss.Color(m.theme.ColorAccent), w))
	} else {
		b.add(m.styles.pill.Render("Valentine's Day ends in: ") +
			m.styles.clock.Render(m.countdown) +
			m.styles.pill.Render(" "+m.theme.IconClock))
	}
	if !compact {
		b.blank()
	}

	b.addLines(m.styles.text, descriptionWriter.lines(p.Description, w, elapsed))
	b.blank()
	b.add(m.contentBlock(p, w))

	if !compact {
		b.blank()
		m.meter.Width = w - 12
		if m.meter.Width < 10 {
			m.meter.Width = 10
		}
		b.add(m.styles.muted.Render("Persuasion ") +
			m.meter.ViewAs(float64(p.Level)/float64(domain.MaxLevel)))
	}
	b.blank()

	btns := []button{{cmd: ports.CmdAccept, rendered: m.buttonStyle(m.styles.yes).Render(p.AcceptLabel)}}
	if p.CanEscalate {
		btns = append(btns, button{cmd: ports.CmdEscalate, rendered: m.maybeButton(p.EscalateLabel)})
	}
	if !m.control.IsOverride() {
		btns = append(btns, button{cmd: ports.CmdDecline, rendered: m.noButton(m.control)})
	}
	b.buttons(btns)

	if !compact {
		b.blank()
		b.spread(
			m.styles.muted.Render("To: ")+m.styles.text.Render(m.card.To),
			m.styles.muted.Render("From: ")+m.styles.text.Render(m.card.From),
		)
	}

	areaW, areaH := m.cardArea()
	return b.build(m.styles.card, areaW, areaH)
}

// contentBlock renders the persuasion content for a presentation.
func (m Model) contentBlock(p domain.Presentation, width int) string {
	switch p.Kind {
	case domain.ContentEmergency:
		lines := make([]string, 0, len(p.Items))
		for _, item := range p.Items {
			if item.Icon != "" {
				lines = append(lines, m.styles.accent.Render(item.Icon+" "+item.Text+" "+item.Icon))
				continue
			}
			for _, l := range wrapText(item.Text, width) {
				lines = append(lines, center(m.styles.text.Italic(true).Render(l), width))
			}
		}
		return lipgloss.JoinVertical(lipgloss.Center, lines...)

	case domain.ContentIncentives:
		cells := make([]string, len(p.Items))
		cellW := 0
		for i, item := range p.Items {
			cells[i] = item.Icon + " " + m.styles.text.Render(item.Text)
			cellW = max(cellW, lipgloss.Width(cells[i]))
		}
		perRow := 1
		if 2*cellW+3 <= width {
			perRow = 2
		}
		var rows []string
		for i := 0; i < len(cells); i += perRow {
			row := pad(cells[i], cellW)
			if perRow == 2 && i+1 < len(cells) {
				row += "   " + pad(cells[i+1], cellW)
			}
			rows = append(rows, row)
		}
		return strings.Join(rows, "\n")

	default:
		lines := make([]string, len(p.Items))
		lineW := 0
		for i, item := range p.Items {
			lines[i] = m.styles.accent.Render(m.theme.IconCheck) + " " + item.Icon + " " + m.styles.text.Render(item.Text)
			lineW = max(lineW, lipgloss.Width(lines[i]))
		}
		for i := range lines {
			lines[i] = pad(lines[i], lineW)
		}
		return strings.Join(lines, "\n")
	}
}

func (m Model) acceptedScreen() screen {
	w := m.innerWidth()
	compact := m.compact()
	elapsed := m.sinceScreen()
	b := newCardBuilder(w)

	b.add(m.styles.accent.Render(heartEmblem(m.theme.IconHeart, elapsed)))
	if !compact {
		b.blank()
	}
	b.addLines(m.styles.title.Italic(true), yayWriter.lines("Yayyy!", w, elapsed))
	b.blank()
	b.addLines(m.styles.text, acceptedWriter.lines(acceptedMessage, w, elapsed))
	if m.card.ScreenshotTo != "" {
		b.add(m.styles.muted.Render("Send the screenshot " + m.card.ScreenshotTo))
	}
	b.blank()
	b.buttons([]button{{cmd: ports.CmdRestart, rendered: m.buttonStyle(m.styles.reset).Render("↻ Start Over")}})
	if !compact {
		b.blank()
		b.add(flourish(elapsed))
	}

	areaW, areaH := m.cardArea()
	return b.build(m.styles.card, areaW, areaH)
}

func (m Model) declinedScreen() screen {
	w := m.innerWidth()
	elapsed := m.sinceScreen()
	b := newCardBuilder(w)

	frown := m.styles.sad.Render("☹")
	if domain.Pulse(elapsed, 2*time.Second) > 0.5 {
		b.add("\n" + frown)
	} else {
		b.add(frown + "\n")
	}
	b.blank()
	b.addLines(m.styles.sad, declinedWriter.lines("Wait... how? 😢", w, elapsed))
	b.blank()
	b.addLines(m.styles.help, brokenWriter.lines(declinedMessage, w, elapsed))
	b.blank()
	b.buttons([]button{{cmd: ports.CmdRestart, rendered: m.buttonStyle(m.styles.reset).Render("↻ Let's restart!")}})

	areaW, areaH := m.cardArea()
	return b.build(m.styles.card, areaW, areaH)
}

// heartEmblem is the pulsing heart on the accepted screen.
func heartEmblem(icon string, elapsed time.Duration) string {
	switch p := domain.Pulse(elapsed, 2*time.Second); {
	case p > 0.66:
		return "✧ " + icon + " " + icon + " " + icon + " ✧"
	case p > 0.33:
		return icon + " " + icon + " " + icon
	default:
		return icon
	}
}

// flourish is the row of bouncing blossoms under the accepted card. Each
// item hops up one row at its own phase.
func flourish(elapsed time.Duration) string {
	const (
		items   = 6
		stagger = 150 * time.Millisecond
		period  = 2500 * time.Millisecond
	)
	var top, bottom []string
	for i := 0; i < items; i++ {
		glyph := "🌸"
		if i%2 == 1 {
			glyph = "💖"
		}
		if domain.Pulse(elapsed-time.Duration(i)*stagger, period) > 0.5 {
			top = append(top, glyph)
			bottom = append(bottom, "  ")
		} else {
			top = append(top, "  ")
			bottom = append(bottom, glyph)
		}
	}
	return strings.Join(top, "  ") + "\n" + strings.Join(bottom, "  ")
}

// footer renders the page footer and help rows.
func (m Model) footer() (string, string) {
	love := m.styles.muted.Render(fmt.Sprintf("%s BUILT WITH LOVE %s", m.theme.IconHeart, m.theme.IconHeart))
	help := m.styles.help.Render(helpLine(m.keys.shortHelp(m.session)))
	if m.lastErr != nil {
		help = m.styles.errText.Render("Error: " + m.lastErr.Error())
	}
	return love, help
}
