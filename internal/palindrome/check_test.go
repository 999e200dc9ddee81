package palindrome_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/palin/internal/palindrome"
)

var _ = Describe("Check", func() {
	It("treats zero as a palindrome", func() {
		Expect(palindrome.Check(0)).To(BeTrue())
	})

	It("treats every single digit as a palindrome", func() {
		for d := int64(0); d <= 9; d++ {
			Expect(palindrome.Check(d)).To(BeTrue(), "digit %d", d)
		}
	})

	DescribeTable("multi-digit values",
		func(n int64, want bool) {
			Expect(palindrome.Check(n)).To(Equal(want))
		},
		Entry("121 reads the same both ways", int64(121), true),
		Entry("123 does not", int64(123), false),
		Entry("1001 has an even digit count", int64(1001), true),
		Entry("12321 has an odd digit count", int64(12321), true),
		Entry("trailing zero can never mirror", int64(1210), false),
	)

	It("is idempotent", func() {
		first := palindrome.Check(12321)
		Expect(palindrome.Check(12321)).To(Equal(first))
	})

	It("reports false for negative values", func() {
		Expect(palindrome.Check(-121)).To(BeFalse())
	})
})

var _ = Describe("Reverse", func() {
	It("reverses the digit sequence", func() {
		Expect(palindrome.Reverse(123)).To(Equal(int64(321)))
	})

	It("accepts the widest palindromic int64", func() {
		// 19 digits, reverses to itself, so no overflow is possible.
		Expect(palindrome.Reverse(1000000000000000001)).To(Equal(int64(1000000000000000001)))
	})

	It("rejects a reversal past the int64 max", func() {
		// One step across the boundary: 1999999999999999999 would reverse
		// to 9999999999999999991. The wrapped value itself is undefined, so
		// only the error is asserted.
		_, err := palindrome.Reverse(1999999999999999999)
		Expect(err).To(MatchError(palindrome.ErrOverflow))
	})

	It("rejects negative input", func() {
		_, err := palindrome.Reverse(-7)
		Expect(err).To(MatchError(palindrome.ErrNegative))
	})
})
