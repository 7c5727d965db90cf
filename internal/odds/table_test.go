package odds_test

import (
	"context"
	"errors"
	"testing"

	"github.com/xtding233/draw-odds-backend/internal/odds"
)

func TestTurnZeroIsMulligan(t *testing.T) {
	for exchange := 0; exchange <= odds.HandSize; exchange++ {
		turn, err := odds.DrawProbabilityAtTurn(40, 4, 0, exchange, 1, odds.ModeWithoutReplacement)
		if err != nil {
			t.Fatal(err)
		}
		mull, _ := odds.MulliganProbability(40, 4, exchange, 1, odds.ModeWithoutReplacement)
		if turn != mull {
			t.Fatalf("exchange=%d turn0=%v mulligan=%v", exchange, turn, mull)
		}
	}
}

func TestTurnKnownValues(t *testing.T) {
	tests := []struct {
		deck, targets, turn, exchange, min int
		mode                               odds.Mode
		want                               float64
	}{
		{40, 4, 1, 0, 1, odds.ModeWithoutReplacement, 0.427071},
		{40, 4, 5, 4, 1, odds.ModeWithoutReplacement, 0.789817},
		{40, 3, 3, 2, 1, odds.ModeWithoutReplacement, 0.537181},
		{40, 3, 1, 4, 1, odds.ModeWithReplacement, 0.521266},
		{40, 3, 3, 2, 2, odds.ModeWithReplacement, 0.112737},
	}
	for _, tt := range tests {
		got, err := odds.DrawProbabilityAtTurn(tt.deck, tt.targets, tt.turn, tt.exchange, tt.min, tt.mode)
		if err != nil {
			t.Fatal(err)
		}
		if !near(got, tt.want, 1e-6) {
			t.Errorf("%d/%d turn=%d exchange=%d min=%d %s: got %.6f want %.6f",
				tt.deck, tt.targets, tt.turn, tt.exchange, tt.min, tt.mode, got, tt.want)
		}
	}
}

func TestTurnMonotonic(t *testing.T) {
	for _, mode := range odds.Modes {
		for _, need := range []int{1, 2, 3} {
			var prevByExchange [odds.HandSize + 1]float64
			for turn := 0; turn <= 40; turn++ {
				prev := -1.0
				for exchange := 0; exchange <= odds.HandSize; exchange++ {
					p, err := odds.DrawProbabilityAtTurn(40, 4, turn, exchange, need, mode)
					if err != nil {
						t.Fatal(err)
					}
					if p < 0 || p > 1 {
						t.Fatalf("probability %v out of [0,1]", p)
					}
					if p < prev {
						t.Fatalf("%s min=%d turn=%d: exchange %d (%v) below exchange %d (%v)", mode, need, turn, exchange, p, exchange-1, prev)
					}
					if p < prevByExchange[exchange] {
						t.Fatalf("%s min=%d exchange=%d: turn %d (%v) below turn %d (%v)", mode, need, exchange, turn, p, turn-1, prevByExchange[exchange])
					}
					prev = p
					prevByExchange[exchange] = p
				}
			}
		}
	}
}

func TestTurnSaturates(t *testing.T) {
	// 36 draws empty the deck; any later turn sees the same cards.
	full, err := odds.DrawProbabilityAtTurn(40, 3, 36, 0, 1, odds.ModeWithoutReplacement)
	if err != nil {
		t.Fatal(err)
	}
	if full != 1 {
		t.Fatalf("whole deck drawn = %v, want 1", full)
	}
	later, err := odds.DrawProbabilityAtTurn(40, 3, 100, 4, 3, odds.ModeWithReplacement)
	if err != nil {
		t.Fatal(err)
	}
	if later != 1 {
		t.Fatalf("turn past deck end = %v, want 1", later)
	}
}

func TestTurnValidation(t *testing.T) {
	if _, err := odds.DrawProbabilityAtTurn(40, 4, -1, 0, 1, odds.ModeWithoutReplacement); !errors.Is(err, odds.ErrNegativeTurn) {
		t.Fatalf("negative turn err=%v", err)
	}
	if _, err := odds.DrawProbabilityAtTurn(40, 41, 2, 0, 1, odds.ModeWithoutReplacement); !errors.Is(err, odds.ErrTargetsExceedDeck) {
		t.Fatalf("targets over deck err=%v", err)
	}
	if _, err := odds.DrawProbabilityAtTurn(40, 4, 2, 7, 1, odds.ModeWithoutReplacement); !errors.Is(err, odds.ErrExchangeRange) {
		t.Fatalf("exchange 7 err=%v", err)
	}
}

func TestDrawProbabilityRows(t *testing.T) {
	rows, err := odds.DrawProbability(40, 4, 1, 5, 1, odds.ModeWithoutReplacement)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}
	for i, row := range rows {
		if row.Turn != i+1 {
			t.Fatalf("row %d has turn %d", i, row.Turn)
		}
		for exchange, pct := range row.Percentages() {
			if pct < 0 || pct > 100 {
				t.Fatalf("turn %d exchange %d: %v out of [0,100]", row.Turn, exchange, pct)
			}
			if row.At(exchange) != pct {
				t.Fatalf("At(%d) disagrees with Percentages", exchange)
			}
		}
	}

	first := rows[0].None / 100
	if first <= 0.35 || first >= 0.45 {
		t.Fatalf("turn 1 without exchange = %v, want within (0.35,0.45)", first)
	}
}

func TestDrawProbabilityMoreExchangesHelp(t *testing.T) {
	rows, err := odds.DrawProbability(40, 3, 1, 5, 1, odds.ModeWithoutReplacement)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rows {
		cells := r.Percentages()
		for e := 1; e < len(cells); e++ {
			if cells[e] <= cells[e-1] {
				t.Fatalf("turn %d: exchange %d (%v) not above exchange %d (%v)", r.Turn, e, cells[e], e-1, cells[e-1])
			}
		}
	}
}

func TestDrawProbabilityImpossibleThreshold(t *testing.T) {
	for _, mode := range odds.Modes {
		rows, err := odds.DrawProbability(40, 1, 0, 10, 2, mode)
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range rows {
			for e, pct := range r.Percentages() {
				if pct != 0 {
					t.Fatalf("%s turn %d exchange %d = %v, want 0", mode, r.Turn, e, pct)
				}
			}
		}
	}
}

func TestDrawProbabilityEmptyRange(t *testing.T) {
	rows, err := odds.DrawProbability(40, 4, 5, 1, 1, odds.ModeWithoutReplacement)
	if err != nil {
		t.Fatal(err)
	}
	if rows == nil || len(rows) != 0 {
		t.Fatalf("inverted range = %v, want empty slice", rows)
	}
}

func TestDrawProbabilityDeterministic(t *testing.T) {
	first, err := odds.DrawProbability(40, 3, 1, 10, 1, odds.ModeWithReplacement)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := odds.DrawProbability(60, 8, 1, 10, 2, odds.ModeWithoutReplacement); err != nil {
		t.Fatal(err)
	}
	if _, err := odds.MulliganProbability(30, 5, 3, 2, odds.ModeWithReplacement); err != nil {
		t.Fatal(err)
	}
	second, err := odds.DrawProbability(40, 3, 1, 10, 1, odds.ModeWithReplacement)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("row count changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestDrawProbabilityConcurrentMatches(t *testing.T) {
	cases := []struct {
		name              string
		deck, targets     int
		from, to, minimum int
		mode              odds.Mode
	}{
		{"short", 60, 8, 0, 20, 2, odds.ModeWithoutReplacement},
		// Far more turns than goroutines run at once.
		{"wide", 40, 3, 0, 300, 1, odds.ModeWithReplacement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := odds.DrawProbability(tc.deck, tc.targets, tc.from, tc.to, tc.minimum, tc.mode)
			if err != nil {
				t.Fatal(err)
			}
			got, err := odds.DrawProbabilityConcurrent(context.Background(), tc.deck, tc.targets, tc.from, tc.to, tc.minimum, tc.mode)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(want) {
				t.Fatalf("got %d rows, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("row %d: concurrent %+v, sequential %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestDrawProbabilityConcurrentCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := odds.DrawProbabilityConcurrent(ctx, 40, 4, 1, 10, 1, odds.ModeWithoutReplacement)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
}

func TestDrawProbabilityValidation(t *testing.T) {
	if _, err := odds.DrawProbability(40, 4, -1, 3, 1, odds.ModeWithoutReplacement); !errors.Is(err, odds.ErrNegativeTurn) {
		t.Fatalf("negative from err=%v", err)
	}
	if _, err := odds.DrawProbability(40, 4, 1, 3, 1, "sideboard"); !errors.Is(err, odds.ErrUnknownMode) {
		t.Fatalf("bad mode err=%v", err)
	}
}
