package boyermoore

// Matches is the lazily evaluated sequence of offsets at which a pattern
// occurs in a text. It is a value; every call to Iterator starts the scan
// over from the beginning of the text.
type Matches struct {
	text    []byte
	pattern *Pattern
	tracer  Tracer
}

// Search returns the occurrences of p in text. The tracer may be nil.
func Search(text []byte, p *Pattern, tracer Tracer) Matches {
	return Matches{
		text:    text,
		pattern: p,
		tracer:  tracer,
	}
}

func (p *Pattern) Search(text []byte) Matches {
	return Search(text, p, nil)
}

func (p *Pattern) SearchString(text string) Matches {
	return Search([]byte(text), p, nil)
}

func (m Matches) Iterator() *Iterator {
	return &Iterator{
		text:    m.text,
		pattern: m.pattern,
		tracer:  m.tracer,
		match:   -1,
	}
}

func (m Matches) All() []int {
	offsets := []int{}
	for it := m.Iterator(); it.Next(); {
		offsets = append(offsets, it.Offset())
	}
	return offsets
}

// First returns the leftmost occurrence.
func (m Matches) First() (int, bool) {
	it := m.Iterator()
	if !it.Next() {
		return -1, false
	}
	return it.Offset(), true
}

func (m Matches) Count() int {
	n := 0
	for it := m.Iterator(); it.Next(); {
		n++
	}
	return n
}

// Iterator walks the text once, left to right. It is not safe for
// concurrent use.
type Iterator struct {
	text    []byte
	pattern *Pattern
	tracer  Tracer

	// offset is the next alignment to examine.
	offset int
	match  int
}

// Next advances to the next occurrence and reports whether there was one.
func (it *Iterator) Next() bool {
	p := it.pattern
	pattern := p.pattern
	n, m := len(it.text), len(pattern)

	for it.offset <= n-m {
		i := it.offset

		j := m - 1
		for j >= 0 && pattern[j] == it.text[i+j] {
			j--
		}

		if j < 0 {
			it.advance(Event{
				Offset:          i,
				MismatchIndex:   -1,
				GoodSuffixShift: p.shift[0],
				AppliedShift:    p.shift[0],
			})
			it.match = i
			return true
		}

		badChar := j - p.occurrence[it.text[i+j]]
		if badChar < 1 {
			badChar = 1
		}
		goodSuffix := p.shift[j+1]

		applied := badChar
		if goodSuffix > applied {
			applied = goodSuffix
		}

		it.advance(Event{
			Offset:          i,
			MismatchIndex:   j,
			BadCharShift:    badChar,
			GoodSuffixShift: goodSuffix,
			AppliedShift:    applied,
		})
	}

	it.match = -1
	return false
}

func (it *Iterator) advance(e Event) {
	if it.tracer != nil {
		it.tracer.Alignment(e)
	}
	it.offset += e.AppliedShift
}

// Offset returns the occurrence found by the last call to Next, or -1.
func (it *Iterator) Offset() int {
	return it.match
}
