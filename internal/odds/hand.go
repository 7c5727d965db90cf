package odds

import "math/big"

// HandSize is the number of cards in the opening hand.
const HandSize = 4

// Deck describes one query: Size cards, Targets of them wanted, and the
// number of targets (MinTarget) that counts as success.
type Deck struct {
	Size      int `json:"deck_size" yaml:"size"`
	Targets   int `json:"targets" yaml:"targets"`
	MinTarget int `json:"min_target" yaml:"min_target"`
}

// Validate checks 0 <= Targets <= Size and MinTarget >= 0.
func (d Deck) Validate() error {
	if anyNegative(d.Size, d.Targets, d.MinTarget) {
		return domainErr("deck", ErrNegative)
	}
	if d.Targets > d.Size {
		return domainErr("deck", ErrTargetsExceedDeck)
	}
	return nil
}

// HandProbability returns the chance that a handSize-card hand holds at least
// minTarget targets.
func HandProbability(deckSize, targetCards, handSize, minTarget int) (float64, error) {
	p, err := handRat(deckSize, targetCards, handSize, minTarget)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

func handRat(deckSize, targetCards, handSize, minTarget int) (*big.Rat, error) {
	const op = "handProbability"
	if anyNegative(deckSize, targetCards, handSize, minTarget) {
		return nil, domainErr(op, ErrNegative)
	}
	if targetCards > deckSize {
		return nil, domainErr(op, ErrTargetsExceedDeck)
	}
	if handSize > deckSize {
		return nil, domainErr(op, ErrHandExceedsDeck)
	}
	if minTarget > targetCards || minTarget > handSize {
		return new(big.Rat), nil
	}
	return cdfAtLeastRat(op, deckSize, targetCards, handSize, minTarget)
}
