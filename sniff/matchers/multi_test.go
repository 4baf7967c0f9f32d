package matchers_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/bmsearch/sniff/matchers"
	"github.com/pivotal-cf/bmsearch/sniff/matchers/matchersfakes"
)

var _ = Describe("UpcasedMulti", func() {
	var (
		matcher      *matchersfakes.FakeMatcher
		multimatcher matchers.Matcher

		matches    bool
		start, end int
	)

	BeforeEach(func() {
		matcher = new(matchersfakes.FakeMatcher)
		multimatcher = matchers.UpcasedMulti(matcher)
	})

	JustBeforeEach(func() {
		matches, start, end = multimatcher.Match([]byte("this is a line"))
	})

	It("calls each matcher with the upcased line", func() {
		Expect(matcher.MatchCallCount()).To(Equal(1))
		Expect(matcher.MatchArgsForCall(0)).To(Equal([]byte("THIS IS A LINE")))
	})

	It("returns false", func() {
		Expect(matches).To(BeFalse())
	})

	Context("when more than one matcher returns true", func() {
		BeforeEach(func() {
			trueMatcher := new(matchersfakes.FakeMatcher)
			trueMatcher.MatchReturns(true, 8, 9)

			matcher.MatchReturns(true, 5, 7)

			multimatcher = matchers.UpcasedMulti(trueMatcher, matcher)
		})

		It("returns the leftmost match", func() {
			Expect(matches).To(BeTrue())
			Expect(start).To(Equal(5))
			Expect(end).To(Equal(7))
		})
	})

	Context("with substring matchers", func() {
		BeforeEach(func() {
			substring, err := matchers.Substring("A LINE")
			Expect(err).NotTo(HaveOccurred())

			multimatcher = matchers.UpcasedMulti(substring)
		})

		It("matches regardless of case and keeps the original offsets", func() {
			Expect(matches).To(BeTrue())
			Expect(start).To(Equal(8))
			Expect(end).To(Equal(14))
		})
	})
})

var _ = Describe("Multi", func() {
	It("does not change the line", func() {
		matcher := new(matchersfakes.FakeMatcher)
		matchers.Multi(matcher).Match([]byte("MiXeD"))

		Expect(matcher.MatchArgsForCall(0)).To(Equal([]byte("MiXeD")))
	})

	It("returns false without matchers", func() {
		Expect(matchers.Multi().Match([]byte("anything"))).To(BeFalse())
	})
})

var _ = Describe("UpcaseASCII", func() {
	It("leaves non-ASCII bytes alone", func() {
		Expect(matchers.UpcaseASCII([]byte("straße"))).To(Equal([]byte("STRAßE")))
	})
})
