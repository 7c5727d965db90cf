package odds

import "math/big"

// PMF returns the probability of drawing exactly k targets when n cards are
// sampled without replacement from N cards of which K are targets.
//
// Draws that cannot happen (k > K, k > n, or more non-targets than exist)
// return 0. Out-of-contract arguments return a *DomainError.
func PMF(N, K, n, k int) (float64, error) {
	p, err := pmfRat("pmf", N, K, n, k)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

// ExactlyK is PMF under the name the deck vocabulary uses.
func ExactlyK(deckSize, targetCards, drawCount, exactCount int) (float64, error) {
	return PMF(deckSize, targetCards, drawCount, exactCount)
}

// CDFAtLeast returns P(X >= minK) for the same distribution as PMF.
func CDFAtLeast(N, K, n, minK int) (float64, error) {
	p, err := cdfAtLeastRat("cdfAtLeast", N, K, n, minK)
	if err != nil {
		return 0, err
	}
	return ratFloat(p), nil
}

func checkPopulation(op string, N, K, n, k int) error {
	if anyNegative(N, K, n, k) {
		return domainErr(op, ErrNegative)
	}
	if K > N {
		return domainErr(op, ErrTargetsExceedPopulation)
	}
	if n > N {
		return domainErr(op, ErrSampleExceedsPopulation)
	}
	return nil
}

func pmfRat(op string, N, K, n, k int) (*big.Rat, error) {
	if err := checkPopulation(op, N, K, n, k); err != nil {
		return nil, err
	}
	return pmfTerm(N, K, n, k), nil
}

// pmfTerm assumes validated arguments.
func pmfTerm(N, K, n, k int) *big.Rat {
	if k > K || k > n || n-k > N-K {
		return new(big.Rat)
	}
	hits, _ := NCr(K, k)
	misses, _ := NCr(N-K, n-k)
	total, _ := NCr(N, n)
	if total.Sign() == 0 {
		return new(big.Rat)
	}
	num := new(big.Int).Mul(hits, misses)
	return new(big.Rat).SetFrac(num, total)
}

// cdfAtLeastRat sums exact terms, so the full support adds up to exactly 1.
func cdfAtLeastRat(op string, N, K, n, minK int) (*big.Rat, error) {
	if err := checkPopulation(op, N, K, n, minK); err != nil {
		return nil, err
	}
	if minK == 0 {
		return big.NewRat(1, 1), nil
	}
	sum := new(big.Rat)
	for k := minK; k <= min(K, n); k++ {
		sum.Add(sum, pmfTerm(N, K, n, k))
	}
	return sum, nil
}
