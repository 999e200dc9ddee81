package palindrome_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestPalindrome(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Palindrome Suite")
}
