package palindrome

import "math"

// Check reports whether the decimal digit sequence of n is the same read
// forward and backward.
//
// Defined for n >= 0. A negative nonzero input never enters the digit loop
// and reports false. Inputs whose reversal exceeds the int64 range wrap
// silently; use Reverse to detect that case.
func Check(n int64) bool {
	original := n
	var reversed int64
	for n > 0 {
		reversed = reversed*10 + n%10
		n /= 10
	}
	return original == reversed
}

// Reverse returns n with its decimal digits in reverse order.
//
// Unlike Check it makes the boundary cases explicit: ErrNegative for n < 0,
// ErrOverflow when the reversal does not fit in an int64.
func Reverse(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	var reversed int64
	for n > 0 {
		digit := n % 10
		if reversed > (math.MaxInt64-digit)/10 {
			return 0, ErrOverflow
		}
		reversed = reversed*10 + digit
		n /= 10
	}
	return reversed, nil
}

// Digits returns the decimal digits of n, most significant first, as a
// float64 slice ready for plotting. Negative inputs use the magnitude.
func Digits(n int64) []float64 {
	if n < 0 {
		n = -n
	}
	if n == 0 {
		return []float64{0}
	}
	var digits []float64
	for n > 0 {
		digits = append(digits, float64(n%10))
		n /= 10
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}
