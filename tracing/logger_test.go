package tracing_test

import (
	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/pivotal-cf/bmsearch/boyermoore"
	"github.com/pivotal-cf/bmsearch/tracing"
)

var _ = Describe("Logger Tracer", func() {
	var logger *lagertest.TestLogger

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("tracing")
	})

	JustBeforeEach(func() {
		p := boyermoore.MustPreprocess([]byte("IJK"))
		boyermoore.Search([]byte("ABCDEFGHIJK"), p, tracing.NewLoggerTracer(logger)).All()
	})

	It("logs one line per alignment", func() {
		Expect(logger.LogMessages()).To(Equal([]string{
			"tracing.boyer-moore.mismatch",
			"tracing.boyer-moore.mismatch",
			"tracing.boyer-moore.mismatch",
			"tracing.boyer-moore.match",
		}))
	})

	It("logs at debug level", func() {
		for _, log := range logger.Logs() {
			Expect(log.LogLevel).To(Equal(lager.DEBUG))
		}
	})

	It("includes the shifts for a mismatch", func() {
		mismatch := logger.Logs()[0]
		Expect(mismatch.Data).To(HaveKeyWithValue("offset", BeNumerically("==", 0)))
		Expect(mismatch.Data).To(HaveKeyWithValue("mismatch-index", BeNumerically("==", 2)))
		Expect(mismatch.Data).To(HaveKeyWithValue("bad-character-shift", BeNumerically("==", 3)))
		Expect(mismatch.Data).To(HaveKeyWithValue("good-suffix-shift", BeNumerically("==", 1)))
		Expect(mismatch.Data).To(HaveKeyWithValue("shift-applied", BeNumerically("==", 3)))
	})

	It("includes the offset of a match", func() {
		Expect(logger).To(gbytes.Say(`"message":"tracing.boyer-moore.match"`))
		match := logger.Logs()[3]
		Expect(match.Data).To(HaveKeyWithValue("offset", BeNumerically("==", 8)))
	})
})
