package matchers

//go:generate counterfeiter . Matcher

// Matcher reports the first occurrence of something in a line as the
// half-open byte range [start, end).
type Matcher interface {
	Match([]byte) (bool, int, int)
}
