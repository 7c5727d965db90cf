package odds

import (
	"math"
	"math/big"
)

// IntArg converts a wire number (JSON and protobuf Struct carry float64) into
// an engine argument. Fractional, NaN and infinite values are rejected with
// ErrNonInteger, whole numbers beyond int32 with ErrOutOfRange.
func IntArg(op string, v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, domainErr(op, ErrNonInteger)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, domainErr(op, ErrOutOfRange)
	}
	return int(v), nil
}

func anyNegative(vals ...int) bool {
	for _, v := range vals {
		if v < 0 {
			return true
		}
	}
	return false
}

// checkDeck validates the deck shared by the mulligan and turn operations.
func checkDeck(op string, deckSize, targets, minTarget int) error {
	if anyNegative(deckSize, targets, minTarget) {
		return domainErr(op, ErrNegative)
	}
	if targets > deckSize {
		return domainErr(op, ErrTargetsExceedDeck)
	}
	if HandSize > deckSize {
		return domainErr(op, ErrHandExceedsDeck)
	}
	return nil
}

func checkExchange(op string, exchangeCount int) error {
	if exchangeCount < 0 || exchangeCount > HandSize {
		return domainErr(op, ErrExchangeRange)
	}
	return nil
}

func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}
