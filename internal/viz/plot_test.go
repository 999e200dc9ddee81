package viz

import (
	"strings"
	"testing"
)

func TestVerdict(t *testing.T) {
	if got := Verdict(121, true); got != "121 is a palindrome." {
		t.Errorf("unexpected verdict: %q", got)
	}
	if got := Verdict(123, false); got != "123 is not a palindrome." {
		t.Errorf("unexpected verdict: %q", got)
	}
}

func TestDigitPlot(t *testing.T) {
	out := DigitPlot(12321)
	if out == "" {
		t.Fatal("expected a plot")
	}
	if !strings.Contains(out, "digits of 12321") {
		t.Error("expected caption with the value")
	}
}

func TestDigitPlot_SingleDigit(t *testing.T) {
	if DigitPlot(7) == "" {
		t.Error("expected a plot for a single digit")
	}
}
