package boyermoore

//go:generate counterfeiter . Tracer

// Tracer observes the scanner. Alignment is called once for every
// alignment examined, after the shift for it has been decided.
type Tracer interface {
	Alignment(Event)
}

type TracerFunc func(Event)

func (f TracerFunc) Alignment(e Event) { f(e) }

// Event describes one alignment of the pattern against the text.
type Event struct {
	Offset int

	// MismatchIndex is the pattern index of the rightmost mismatch, or -1
	// when the pattern matched in full at Offset.
	MismatchIndex int

	// BadCharShift is zero for a full match.
	BadCharShift    int
	GoodSuffixShift int
	AppliedShift    int
}

func (e Event) FullMatch() bool {
	return e.MismatchIndex < 0
}
