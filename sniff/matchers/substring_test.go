package matchers_test

import (
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/bmsearch/boyermoore"
	"github.com/pivotal-cf/bmsearch/sniff/matchers"
)

var _ = Describe("Substring", func() {
	var matcher matchers.Matcher

	BeforeEach(func() {
		var err error
		matcher, err = matchers.Substring("exact match")
		Expect(err).NotTo(HaveOccurred())
	})

	It("returns true when the line matches case-sensitively", func() {
		line := []byte("this is an exact match")
		matched, start, end := matcher.Match(line)
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(11))
		Expect(end).To(Equal(22))
	})

	It("returns the leftmost occurrence", func() {
		line := []byte("exact match, exact match")
		matched, start, end := matcher.Match(line)
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(0))
		Expect(end).To(Equal(11))
	})

	It("returns false when the line does not match case-sensitively", func() {
		line := []byte("THIS IS NOT QUITE AN EXACT MATCH")
		Expect(matcher.Match(line)).To(BeFalse())
	})

	It("returns false when the line does not match", func() {
		line := []byte("this is not exactly a match")
		Expect(matcher.Match(line)).To(BeFalse())
	})

	It("returns an error when the pattern is too long", func() {
		_, err := matchers.Substring(strings.Repeat("x", boyermoore.MaxPatternLength+1))
		Expect(err).To(BeAssignableToTypeOf(&boyermoore.InvalidPatternError{}))
	})
})

var _ = Describe("Substrings", func() {
	It("matches any of the substrings", func() {
		matcher, err := matchers.Substrings("needle", "pin")
		Expect(err).NotTo(HaveOccurred())

		matched, start, end := matcher.Match([]byte("a pin in a haystack"))
		Expect(matched).To(BeTrue())
		Expect(start).To(Equal(2))
		Expect(end).To(Equal(5))
	})

	It("reports every invalid substring", func() {
		tooLong := strings.Repeat("x", boyermoore.MaxPatternLength+1)

		_, err := matchers.Substrings(tooLong, "fine", tooLong)
		Expect(err).To(HaveOccurred())
		Expect(strings.Count(err.Error(), "invalid pattern")).To(Equal(2))
	})
})
