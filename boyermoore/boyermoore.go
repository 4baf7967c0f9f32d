// Package boyermoore finds every occurrence of a byte pattern in a text
// using the Boyer-Moore algorithm with both the bad-character and the
// good-suffix heuristics.
//
// A pattern is preprocessed once with Preprocess and the resulting
// *Pattern may then be searched against any number of texts, including
// from several goroutines at once.
package boyermoore

import "fmt"

// MaxPatternLength bounds the size of the shift table built for a pattern.
const MaxPatternLength = 1 << 20

const alphabetSize = 256

// absent marks a byte that does not occur in the pattern.
const absent = -1

// debug turns on the table invariant checks after preprocessing.
const debug = false

type InvalidPatternError struct {
	Length int
	Reason string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern (length %d): %s", e.Length, e.Reason)
}

// Pattern holds a pattern together with the tables the scanner consults.
// It must not be modified after Preprocess returns, and the caller must
// not mutate the underlying pattern bytes while the Pattern is in use.
type Pattern struct {
	pattern    []byte
	occurrence [alphabetSize]int
	shift      []int
}

func Preprocess(pattern []byte) (*Pattern, error) {
	if len(pattern) > MaxPatternLength {
		return nil, &InvalidPatternError{
			Length: len(pattern),
			Reason: fmt.Sprintf("longer than the maximum of %d bytes", MaxPatternLength),
		}
	}

	p := &Pattern{
		pattern:    pattern,
		occurrence: buildOccurrence(pattern),
	}

	shift, borders := buildBorders(pattern)
	p.shift = finalizeShifts(shift, borders)

	if debug {
		checkTables(p, borders)
	}

	return p, nil
}

func PreprocessString(pattern string) (*Pattern, error) {
	return Preprocess([]byte(pattern))
}

// MustPreprocess is like Preprocess but panics if the pattern is invalid.
func MustPreprocess(pattern []byte) *Pattern {
	p, err := Preprocess(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Len() int { return len(p.pattern) }

func (p *Pattern) Bytes() []byte { return p.pattern }

func (p *Pattern) String() string { return string(p.pattern) }

// Occurrence returns the rightmost index of c in the pattern, or -1.
func (p *Pattern) Occurrence(c byte) int { return p.occurrence[c] }

// Shift returns the good-suffix shift for a mismatch at pattern index j-1.
// Shift(0) is the distance to advance after a full match.
func (p *Pattern) Shift(j int) int { return p.shift[j] }

// Shifts returns a copy of the whole shift table, indices 0 through Len().
func (p *Pattern) Shifts() []int {
	shifts := make([]int, len(p.shift))
	copy(shifts, p.shift)
	return shifts
}

// IndexAll returns the offset of every occurrence of pattern in text,
// overlapping occurrences included.
func IndexAll(text, pattern []byte) ([]int, error) {
	p, err := Preprocess(pattern)
	if err != nil {
		return nil, err
	}
	return p.Search(text).All(), nil
}
