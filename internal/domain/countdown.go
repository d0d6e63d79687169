package domain

import (
	"fmt"
	"time"
)

// Zero countdown display, also shown once the target has passed.
const countdownZero = "00:00:00"

// firstTarget and secondTarget are the two Valentine's Day deadlines the card
// counts down to. Only these two dates are considered.
func firstTarget() time.Time {
	return time.Date(2025, time.February, 15, 0, 0, 0, 0, time.Local)
}

func secondTarget() time.Time {
	return time.Date(2026, time.February, 15, 0, 0, 0, 0, time.Local)
}

// TargetDate returns the deadline for the given wall-clock time: the first
// target, or the second one once now is strictly after the first.
func TargetDate(now time.Time) time.Time {
	target := firstTarget()
	if now.After(target) {
		target = secondTarget()
	}
	return target
}

// TimeLeft returns the time remaining until TargetDate(now), never negative.
func TimeLeft(now time.Time) time.Duration {
	remaining := TargetDate(now).Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatCountdown formats a duration as HH:MM:SS. Hours do not wrap at 24 and
// sub-second remainders are truncated.
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return countdownZero
	}
	hours := int64(d / time.Hour)
	minutes := int64(d/time.Minute) % 60
	seconds := int64(d/time.Second) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Countdown returns the display string for the given wall-clock time.
func Countdown(now time.Time) string {
	return FormatCountdown(TimeLeft(now))
}
