package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/palin/internal/palindrome"
)

// Verdict returns the result line for a checked value.
func Verdict(n int64, ok bool) string {
	if ok {
		return fmt.Sprintf("%d is a palindrome.", n)
	}
	return fmt.Sprintf("%d is not a palindrome.", n)
}

// StyledVerdict is Verdict with color for TTY surfaces.
func StyledVerdict(n int64, ok bool) string {
	if ok {
		return green.Render(Verdict(n, ok))
	}
	return red.Render(Verdict(n, ok))
}

// DigitPlot renders the digit sequence of n as an ascii graph. A palindrome
// plots mirror-symmetric about its center.
func DigitPlot(n int64) string {
	digits := palindrome.Digits(n)
	if len(digits) == 1 {
		// a flat two-point line reads better than a lone dot
		digits = append(digits, digits[0])
	}
	return asciigraph.Plot(digits,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("digits of %d", n)),
	)
}
