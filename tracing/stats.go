package tracing

import (
	"sync/atomic"

	"github.com/pivotal-cf/bmsearch/boyermoore"
)

// Stats counts what the scanner did. It is safe for concurrent use.
type Stats struct {
	alignments int64
	matches    int64
	advanced   int64
}

func (s *Stats) Alignment(e boyermoore.Event) {
	atomic.AddInt64(&s.alignments, 1)
	atomic.AddInt64(&s.advanced, int64(e.AppliedShift))
	if e.FullMatch() {
		atomic.AddInt64(&s.matches, 1)
	}
}

func (s *Stats) Alignments() int64 { return atomic.LoadInt64(&s.alignments) }

func (s *Stats) Matches() int64 { return atomic.LoadInt64(&s.matches) }

// Advanced is the total distance the pattern moved along the text.
func (s *Stats) Advanced() int64 { return atomic.LoadInt64(&s.advanced) }

func (s *Stats) Reset() {
	atomic.StoreInt64(&s.alignments, 0)
	atomic.StoreInt64(&s.matches, 0)
	atomic.StoreInt64(&s.advanced, 0)
}
