package odds

import (
	"errors"
	"math"
	"sort"
)

// MaxTrials caps one simulation run.
const MaxTrials = 1_000_000

var ErrTrials = errors.New("trials must be between 1 and 1000000")

// SimParams describes the game played in every trial.
type SimParams struct {
	Deck     Deck
	Exchange int // cards offered for exchange, 0..4
	Turn     int // single-card draws after the mulligan
	Mode     Mode
	Policy   KeepPolicy // nil means OptimalKeep
}

// Stats summarizes the number of targets seen per trial.
type Stats struct {
	Mean   float64 `json:"mean"`
	Var    float64 `json:"var"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	// raw samples if caller needs histograms/exports
	Samples []int `json:"-"`
}

// SimResult is the outcome of Simulate.
type SimResult struct {
	Trials    int     `json:"trials"`
	Successes int     `json:"successes"`
	Rate      float64 `json:"rate"`
	Seen      Stats   `json:"seen"`
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// drawTargets deals draws cards one by one from a shuffled pool of size
// cards holding targets targets and returns how many targets came up.
func drawTargets(rng RandomSource, size, targets, draws int) int {
	hits := 0
	for i := 0; i < draws && size > 0; i++ {
		if rng.IntN(size) < targets {
			hits++
			targets--
		}
		size--
	}
	return hits
}

// simulateOne plays one opening hand, mulligan and turn sequence and returns
// the number of targets seen. Non-targets go back even when the hand already
// qualifies; that never lowers the target count.
func simulateOne(p SimParams, mode Mode, c Composer, rng RandomSource) int {
	n, k := p.Deck.Size, p.Deck.Targets
	held := drawTargets(rng, n, k, HandSize)

	if p.Exchange > 0 {
		pool := mode.RedrawPool(n, HandSize)
		redraw := c.exchanged(held, p.Exchange, pool)
		held += drawTargets(rng, pool, k-held, redraw)
	}

	remaining := n - HandSize
	return held + drawTargets(rng, remaining, k-held, min(p.Turn, remaining))
}

// Simulate estimates DrawProbabilityAtTurn by playing trials games. It
// follows the same card model as the exact composer and exists to check it.
func Simulate(p SimParams, trials int, rng RandomSource) (SimResult, error) {
	const op = "simulate"
	if trials <= 0 || trials > MaxTrials {
		return SimResult{}, ErrTrials
	}
	if p.Turn < 0 {
		return SimResult{}, domainErr(op, ErrNegativeTurn)
	}
	mode, err := checkMulligan(op, p.Deck.Size, p.Deck.Targets, p.Exchange, p.Deck.MinTarget, p.Mode)
	if err != nil {
		return SimResult{}, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	c := NewComposer(p.Policy)
	samples := make([]int, trials)
	successes := 0
	for i := range samples {
		seen := simulateOne(p, mode, c, rng)
		if seen >= p.Deck.MinTarget {
			successes++
		}
		samples[i] = seen
	}
	return SimResult{
		Trials:    trials,
		Successes: successes,
		Rate:      float64(successes) / float64(trials),
		Seen:      calcStats(samples),
	}, nil
}
