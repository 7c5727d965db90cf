package odds

// KeepPolicy decides how many non-target cards of the opening hand go back
// during the mulligan. Targets are always kept. The composer clamps the
// answer to [0, min(exchangeCount, handSize-initialTargets)].
type KeepPolicy func(initialTargets, handSize, exchangeCount int) int

// OptimalKeep exchanges as many non-targets as the exchange count allows.
func OptimalKeep(initialTargets, handSize, exchangeCount int) int {
	return min(exchangeCount, handSize-initialTargets)
}

// Composer combines the opening hand, the mulligan redraw and later turns
// into one probability. The zero value uses OptimalKeep.
type Composer struct {
	Policy KeepPolicy
}

// NewComposer returns a Composer using policy, or OptimalKeep when nil.
func NewComposer(policy KeepPolicy) Composer {
	return Composer{Policy: policy}
}

// exchanged returns the number of cards actually redrawn for a hand holding
// initialTargets targets, limited by the redraw pool.
func (c Composer) exchanged(initialTargets, exchangeCount, pool int) int {
	policy := c.Policy
	if policy == nil {
		policy = OptimalKeep
	}
	limit := min(exchangeCount, HandSize-initialTargets, pool)
	n := policy(initialTargets, HandSize, exchangeCount)
	if n < 0 {
		return 0
	}
	return min(n, limit)
}
