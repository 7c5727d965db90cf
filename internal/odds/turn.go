package odds

import "math/big"

// DrawProbabilityAtTurn returns the chance of having seen at least minTarget
// targets after the mulligan and turn further single-card draws.
func DrawProbabilityAtTurn(deckSize, targetCards, turn, exchangeCount, minTarget int, mode Mode) (float64, error) {
	return defaultComposer.DrawProbabilityAtTurn(deckSize, targetCards, turn, exchangeCount, minTarget, mode)
}

func (c Composer) DrawProbabilityAtTurn(deckSize, targetCards, turn, exchangeCount, minTarget int, mode Mode) (float64, error) {
	p, err := c.turnRat(deckSize, targetCards, turn, exchangeCount, minTarget, mode)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

// turnRat sums over the number of targets held after the mulligan. The deck
// left for later draws is N-4 whatever the mode or exchange count; once it
// runs out further turns draw nothing.
func (c Composer) turnRat(deckSize, targetCards, turn, exchangeCount, minTarget int, mode Mode) (*big.Rat, error) {
	const op = "drawProbabilityAtTurn"
	if turn < 0 {
		return nil, domainErr(op, ErrNegativeTurn)
	}
	if turn == 0 {
		return c.mulliganRat(deckSize, targetCards, exchangeCount, minTarget, mode)
	}
	mode, err := checkMulligan(op, deckSize, targetCards, exchangeCount, minTarget, mode)
	if err != nil {
		return nil, err
	}

	remaining := deckSize - HandSize
	draws := min(turn, remaining)
	total := new(big.Rat)
	for held := 0; held <= min(targetCards, HandSize); held++ {
		weight, err := c.exactRat(deckSize, targetCards, exchangeCount, held, mode)
		if err != nil {
			return nil, err
		}
		if weight.Sign() == 0 {
			continue
		}
		if held >= minTarget {
			total.Add(total, weight)
			continue
		}
		hit, err := cdfAtLeastRat(op, remaining, targetCards-held, draws, minTarget-held)
		if err != nil {
			return nil, err
		}
		total.Add(total, weight.Mul(weight, hit))
	}
	return total, nil
}
