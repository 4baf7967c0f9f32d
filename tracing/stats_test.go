package tracing_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/bmsearch/boyermoore"
	"github.com/pivotal-cf/bmsearch/boyermoore/boyermoorefakes"
	"github.com/pivotal-cf/bmsearch/tracing"
)

var _ = Describe("Stats", func() {
	It("counts alignments, matches and distance advanced", func() {
		stats := &tracing.Stats{}
		p := boyermoore.MustPreprocess([]byte("AA"))
		boyermoore.Search([]byte("AAAAAA"), p, stats).All()

		Expect(stats.Alignments()).To(BeEquivalentTo(5))
		Expect(stats.Matches()).To(BeEquivalentTo(5))
		Expect(stats.Advanced()).To(BeEquivalentTo(5))

		stats.Reset()
		Expect(stats.Alignments()).To(BeZero())
	})
})

var _ = Describe("Multi", func() {
	It("forwards every event to each tracer", func() {
		first := new(boyermoorefakes.FakeTracer)
		second := new(boyermoorefakes.FakeTracer)

		p := boyermoore.MustPreprocess([]byte("IJK"))
		boyermoore.Search([]byte("ABCDEFGHIJK"), p, tracing.Multi(first, nil, second)).All()

		Expect(first.AlignmentCallCount()).To(Equal(4))
		Expect(second.AlignmentCallCount()).To(Equal(4))
		Expect(second.AlignmentArgsForCall(3).Offset).To(Equal(8))
	})

	It("returns nil when there is nothing to forward to", func() {
		Expect(tracing.Multi()).To(BeNil())
		Expect(tracing.Multi(nil, nil)).To(BeNil())
	})

	It("returns a lone tracer unwrapped", func() {
		tracer := new(boyermoorefakes.FakeTracer)
		Expect(tracing.Multi(nil, tracer)).To(BeIdenticalTo(tracer))
	})
})
