package matchers

// Multi reports the leftmost hit of any of its matchers. Ties go to the
// matcher listed first.
func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

// UpcasedMulti is Multi over the line with ASCII letters upcased. Only
// ASCII is touched so offsets still index the original line.
func UpcasedMulti(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
		upcase:   true,
	}
}

type multi struct {
	matchers []Matcher
	upcase   bool
}

func (m *multi) Match(line []byte) (bool, int, int) {
	if m.upcase {
		line = UpcaseASCII(line)
	}

	matched := false
	start, end := 0, 0

	for _, matcher := range m.matchers {
		ok, s, e := matcher.Match(line)
		if !ok {
			continue
		}
		if !matched || s < start {
			matched, start, end = true, s, e
		}
	}

	return matched, start, end
}

// UpcaseASCII returns a copy of b with a-z mapped to A-Z.
func UpcaseASCII(b []byte) []byte {
	upper := make([]byte, len(b))
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper[i] = c
	}
	return upper
}
