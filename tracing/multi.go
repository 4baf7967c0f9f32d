package tracing

import "github.com/pivotal-cf/bmsearch/boyermoore"

type multi []boyermoore.Tracer

// Multi forwards every event to each non-nil tracer in order. It returns
// nil when there is nothing to forward to.
func Multi(tracers ...boyermoore.Tracer) boyermoore.Tracer {
	var m multi
	for _, t := range tracers {
		if t != nil {
			m = append(m, t)
		}
	}

	switch len(m) {
	case 0:
		return nil
	case 1:
		return m[0]
	}
	return m
}

func (m multi) Alignment(e boyermoore.Event) {
	for _, t := range m {
		t.Alignment(e)
	}
}
