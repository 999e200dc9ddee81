package palindrome

import "errors"

// Domain errors for digit reversal.
var (
	// ErrNegative indicates a negative input, which has no defined reversal.
	ErrNegative = errors.New("palindrome: negative input not supported")

	// ErrOverflow indicates the reversed value does not fit in an int64.
	ErrOverflow = errors.New("palindrome: reversed value overflows int64")
)
