// Package palindrome checks whether an integer's decimal digit sequence
// reads the same forward and backward.
//
// The basic predicate is [Check]:
//
//	palindrome.Check(12321) // true
//	palindrome.Check(123)   // false
//
// Check implements the classic digit-fold: the working value is stripped of
// its trailing decimal digit each iteration while a reversed accumulator is
// built up, then compared against the original. It is allocation-free and
// bounded by the digit count of an int64 (at most 19 iterations).
//
// [Reverse] exposes the same fold with an explicit policy for the two inputs
// Check stays silent on: negative values and reversals that do not fit in an
// int64. [Digits] returns the digit sequence for presentation.
package palindrome
