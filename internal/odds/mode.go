package odds

import "strings"

// Mode selects where the exchanged cards are redrawn from.
type Mode string

const (
	// ModeWithoutReplacement redraws from the deck left after the opening
	// hand was dealt (N-4 cards).
	ModeWithoutReplacement Mode = "without_replacement"
	// ModeWithReplacement redraws from a pool the size of the full deck.
	ModeWithReplacement Mode = "with_replacement"
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeWithoutReplacement, ModeWithReplacement}

// ParseMode accepts the canonical names, case-insensitively. Empty input
// selects ModeWithoutReplacement.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	return m.normalize("parseMode")
}

// normalize maps the zero value to the default mode and rejects the rest.
func (m Mode) normalize(op string) (Mode, error) {
	switch m {
	case "":
		return ModeWithoutReplacement, nil
	case ModeWithoutReplacement, ModeWithReplacement:
		return m, nil
	default:
		return "", domainErr(op, ErrUnknownMode)
	}
}

// RedrawPool returns the size of the pool an exchange draws from. The whole
// opening hand leaves the pool without replacement, whatever was kept.
func (m Mode) RedrawPool(deckSize, handSize int) int {
	if m == ModeWithReplacement {
		return deckSize
	}
	return deckSize - handSize
}

func (m Mode) String() string { return string(m) }
