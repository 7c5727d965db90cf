package odds

import "math/big"

// Factorial returns n! exactly.
func Factorial(n int) (*big.Int, error) {
	if n < 0 {
		return nil, domainErr("factorial", ErrNegative)
	}
	result := big.NewInt(1)
	var f big.Int
	for i := 2; i <= n; i++ {
		result.Mul(result, f.SetInt64(int64(i)))
	}
	return result, nil
}

// NCr returns the binomial coefficient C(n, r), and 0 when r > n.
//
// Uses the multiplicative recurrence result = result*(n-i)/(i+1). After step
// i the partial result equals C(n, i+1), so every division is exact.
func NCr(n, r int) (*big.Int, error) {
	if n < 0 || r < 0 {
		return nil, domainErr("nCr", ErrNegative)
	}
	if r > n {
		return new(big.Int), nil
	}
	if r == 0 || r == n {
		return big.NewInt(1), nil
	}
	if r > n-r {
		r = n - r
	}

	result := big.NewInt(1)
	var f big.Int
	for i := 0; i < r; i++ {
		result.Mul(result, f.SetInt64(int64(n-i)))
		result.Quo(result, f.SetInt64(int64(i+1)))
	}
	return result, nil
}
