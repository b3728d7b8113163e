package http

import (
	"fmt"

	"github.com/randomtoy/change-game/internal/domain"
)

// formatCents renders an amount in cents as US dollars with two decimals.
func formatCents(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

func feedbackText(f domain.Feedback) string {
	switch f {
	case domain.FeedbackAddMore:
		return "Not enough yet. Add more coins."
	case domain.FeedbackRemoveSome:
		return "Too much! Remove some coins."
	case domain.FeedbackCorrect:
		return "Correct! That's exact change."
	default:
		return ""
	}
}
