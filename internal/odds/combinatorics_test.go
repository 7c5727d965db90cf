package odds_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/xtding233/draw-odds-backend/internal/odds"
)

func TestNCrKnownValues(t *testing.T) {
	tests := []struct {
		n, r int
		want int64
	}{
		{40, 4, 91390},
		{52, 5, 2598960},
		{5, 2, 10},
		{10, 0, 1},
		{10, 10, 1},
		{3, 5, 0},
		{0, 0, 1},
	}
	for _, tt := range tests {
		got, err := odds.NCr(tt.n, tt.r)
		if err != nil {
			t.Fatalf("NCr(%d,%d) unexpected error: %v", tt.n, tt.r, err)
		}
		if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("NCr(%d,%d) = %s, want %d", tt.n, tt.r, got, tt.want)
		}
	}
}

func TestNCrSymmetry(t *testing.T) {
	for n := 0; n <= 60; n++ {
		for r := 0; r <= n; r++ {
			a, _ := odds.NCr(n, r)
			b, _ := odds.NCr(n, n-r)
			if a.Cmp(b) != 0 {
				t.Fatalf("NCr(%d,%d)=%s != NCr(%d,%d)=%s", n, r, a, n, n-r, b)
			}
		}
	}
}

func TestNCrStaysExactBeyond64Bits(t *testing.T) {
	got, err := odds.NCr(100, 50)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := new(big.Int).SetString("100891344545564193334812497256", 10)
	if got.Cmp(want) != 0 {
		t.Fatalf("NCr(100,50) = %s, want %s", got, want)
	}
	if got.Cmp(new(big.Int).Binomial(100, 50)) != 0 {
		t.Fatalf("NCr(100,50) disagrees with big.Int.Binomial")
	}
}

func TestNCrRejectsNegative(t *testing.T) {
	for _, args := range [][2]int{{-1, 2}, {5, -1}} {
		_, err := odds.NCr(args[0], args[1])
		if !errors.Is(err, odds.ErrNegative) || !odds.IsDomainError(err) {
			t.Fatalf("NCr(%d,%d) err=%v, want domain ErrNegative", args[0], args[1], err)
		}
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "1"},
		{1, "1"},
		{5, "120"},
		{20, "2432902008176640000"},
		{25, "15511210043330985984000000"},
	}
	for _, tt := range tests {
		got, err := odds.Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d) unexpected error: %v", tt.n, err)
		}
		if got.String() != tt.want {
			t.Errorf("Factorial(%d) = %s, want %s", tt.n, got, tt.want)
		}
	}

	if _, err := odds.Factorial(-3); !errors.Is(err, odds.ErrNegative) {
		t.Fatalf("Factorial(-3) err=%v, want ErrNegative", err)
	}
}

func TestIntArg(t *testing.T) {
	if v, err := odds.IntArg("deck", 40); err != nil || v != 40 {
		t.Fatalf("IntArg(40) = %d, %v", v, err)
	}
	if v, err := odds.IntArg("deck", -2); err != nil || v != -2 {
		t.Fatalf("IntArg(-2) = %d, %v", v, err)
	}
	for _, bad := range []float64{2.5, math.NaN(), math.Inf(1)} {
		if _, err := odds.IntArg("deck", bad); !errors.Is(err, odds.ErrNonInteger) {
			t.Fatalf("IntArg(%v) err=%v, want ErrNonInteger", bad, err)
		}
	}
	for _, huge := range []float64{1e12, -1e12, math.MaxInt32 + 1} {
		_, err := odds.IntArg("deck", huge)
		if !errors.Is(err, odds.ErrOutOfRange) || errors.Is(err, odds.ErrNonInteger) || !odds.IsDomainError(err) {
			t.Fatalf("IntArg(%v) err=%v, want ErrOutOfRange", huge, err)
		}
	}
	if v, err := odds.IntArg("deck", math.MaxInt32); err != nil || v != math.MaxInt32 {
		t.Fatalf("IntArg(MaxInt32) = %d, %v", v, err)
	}
}
