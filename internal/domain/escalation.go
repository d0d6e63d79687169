package domain

import "fmt"

// ContentKind selects the persuasion block shown under the description.
type ContentKind string

const (
	ContentChecklist  ContentKind = "checklist"
	ContentIncentives ContentKind = "incentives"
	ContentEmergency  ContentKind = "emergency"
)

// Item is one line of persuasion content.
type Item struct {
	Text string
	Icon string
}

// Presentation is everything the invitation screen shows for one level.
type Presentation struct {
	Level         int
	Badge         string
	Heading       string
	Description   string
	Kind          ContentKind
	Items         []Item
	AcceptLabel   string
	EscalateLabel string
	CanEscalate   bool
}

var checklist = []Item{
	{Text: "Unlimited Chocolates", Icon: "🍫"},
	{Text: "Endless Forehead Kisses", Icon: "😘"},
	{Text: "Movie Nights & Popcorn", Icon: "🍿"},
	{Text: "My Undivided Attention", Icon: "💝"},
}

var incentives = []Item{
	{Text: "I'll share my fries", Icon: "🍟"},
	{Text: "Coffee in bed", Icon: "☕"},
	{Text: "Control of the remote", Icon: "⚡"},
	{Text: "Best listener award", Icon: "⭐"},
}

var emergency = []Item{
	{Text: "EMERGENCY VALENTINE PROTOCOL ACTIVATED", Icon: "🚨"},
	{Text: "Acceptance grants you a 100% discount on all sadness today."},
}

// ClampLevel keeps an escalation level within [0, MaxLevel].
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// Present maps an escalation level to its invitation content. The nickname
// is addressed in the level 0 heading; an empty nickname is left out.
func Present(level int, nickname string) Presentation {
	level = ClampLevel(level)
	p := Presentation{
		Level:       level,
		Badge:       "Feb 14",
		AcceptLabel: "Yes 💕",
		CanEscalate: level < MaxLevel,
	}
	if level > 0 {
		p.Badge = "Urgent Request"
	}

	switch level {
	case 0:
		p.Heading = "Will you be my Valentine? 💕"
		if nickname != "" {
			p.Heading = fmt.Sprintf("Will you be my Valentine %s? 💕", nickname)
		}
		p.Description = "I've been thinking about this all year. You make my world so much brighter, and I'd be the luckiest person to have you by my side."
		p.Kind = ContentChecklist
		p.Items = checklist
		p.EscalateLabel = "Maybe? 🤔"
	case 1:
		p.Heading = "Wait, don't leave me hanging! 🙈"
		p.Description = "I know that 'No' button is jumping around, but my heart is staying right here with you! Still thinking? Look at these perks..."
		p.Kind = ContentIncentives
		p.Items = incentives
		p.EscalateLabel = "Still Maybe? 💭"
	default:
		p.Heading = "Okay, I'm pulling out all the stops! 🍭"
		p.Description = "Are you really, really sure? This is my final offer! I'll even pretend to like your favorite reality TV show without complaining!"
		p.Kind = ContentEmergency
		p.Items = emergency
		p.AcceptLabel = "Fine, YES! ❤️"
	}
	return p
}
