package odds

import "math/big"

var defaultComposer Composer

// MulliganProbability returns the chance of holding at least minTarget
// targets once the mulligan is over, when up to exchangeCount non-target
// cards of the opening hand are redrawn.
func MulliganProbability(deckSize, targetCards, exchangeCount, minTarget int, mode Mode) (float64, error) {
	return defaultComposer.MulliganProbability(deckSize, targetCards, exchangeCount, minTarget, mode)
}

// ExactTargetsAfterMulligan returns the chance of holding exactly
// exactTargets targets once the mulligan is over.
func ExactTargetsAfterMulligan(deckSize, targetCards, exchangeCount, exactTargets int, mode Mode) (float64, error) {
	return defaultComposer.ExactTargetsAfterMulligan(deckSize, targetCards, exchangeCount, exactTargets, mode)
}

func (c Composer) MulliganProbability(deckSize, targetCards, exchangeCount, minTarget int, mode Mode) (float64, error) {
	p, err := c.mulliganRat(deckSize, targetCards, exchangeCount, minTarget, mode)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

func (c Composer) ExactTargetsAfterMulligan(deckSize, targetCards, exchangeCount, exactTargets int, mode Mode) (float64, error) {
	p, err := c.exactRat(deckSize, targetCards, exchangeCount, exactTargets, mode)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

func checkMulligan(op string, deckSize, targetCards, exchangeCount, count int, mode Mode) (Mode, error) {
	if err := checkDeck(op, deckSize, targetCards, count); err != nil {
		return "", err
	}
	if err := checkExchange(op, exchangeCount); err != nil {
		return "", err
	}
	return mode.normalize(op)
}

func (c Composer) mulliganRat(deckSize, targetCards, exchangeCount, minTarget int, mode Mode) (*big.Rat, error) {
	const op = "mulliganProbability"
	mode, err := checkMulligan(op, deckSize, targetCards, exchangeCount, minTarget, mode)
	if err != nil {
		return nil, err
	}
	if exchangeCount == 0 {
		return handRat(deckSize, targetCards, HandSize, minTarget)
	}

	pool := mode.RedrawPool(deckSize, HandSize)
	total := new(big.Rat)
	for initial := 0; initial <= min(targetCards, HandSize); initial++ {
		weight := pmfTerm(deckSize, targetCards, HandSize, initial)
		if weight.Sign() == 0 {
			continue
		}
		// Targets are never exchanged, so a satisfied hand stays satisfied.
		if initial >= minTarget {
			total.Add(total, weight)
			continue
		}
		redraw := c.exchanged(initial, exchangeCount, pool)
		if redraw == 0 {
			continue
		}
		// No upper clamp to redraw: a shortfall the redraw cannot cover fails.
		hit, err := cdfAtLeastRat(op, pool, targetCards-initial, redraw, max(minTarget-initial, 0))
		if err != nil {
			return nil, err
		}
		total.Add(total, weight.Mul(weight, hit))
	}
	return total, nil
}

func (c Composer) exactRat(deckSize, targetCards, exchangeCount, exactTargets int, mode Mode) (*big.Rat, error) {
	const op = "exactTargetsAfterMulligan"
	mode, err := checkMulligan(op, deckSize, targetCards, exchangeCount, exactTargets, mode)
	if err != nil {
		return nil, err
	}
	if exchangeCount == 0 {
		return pmfRat(op, deckSize, targetCards, HandSize, exactTargets)
	}

	pool := mode.RedrawPool(deckSize, HandSize)
	total := new(big.Rat)
	for initial := 0; initial <= min(targetCards, HandSize); initial++ {
		weight := pmfTerm(deckSize, targetCards, HandSize, initial)
		if weight.Sign() == 0 {
			continue
		}
		redraw := c.exchanged(initial, exchangeCount, pool)
		needed := exactTargets - initial
		if needed < 0 || needed > redraw {
			continue
		}
		hit, err := pmfRat(op, pool, targetCards-initial, redraw, needed)
		if err != nil {
			return nil, err
		}
		total.Add(total, weight.Mul(weight, hit))
	}
	return total, nil
}
