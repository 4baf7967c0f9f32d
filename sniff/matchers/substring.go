package matchers

import (
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/bmsearch/boyermoore"
)

type substringMatcher struct {
	pattern *boyermoore.Pattern
}

func Substring(s string) (Matcher, error) {
	pattern, err := boyermoore.PreprocessString(s)
	if err != nil {
		return nil, err
	}

	return &substringMatcher{
		pattern: pattern,
	}, nil
}

// Substrings builds one Substring matcher per string and combines them
// with Multi. Every invalid string is reported, not just the first.
func Substrings(ss ...string) (Matcher, error) {
	var (
		ms     []Matcher
		result error
	)

	for _, s := range ss {
		m, err := Substring(s)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		ms = append(ms, m)
	}

	if result != nil {
		return nil, result
	}

	return Multi(ms...), nil
}

func (m *substringMatcher) Match(line []byte) (bool, int, int) {
	start, found := m.pattern.Search(line).First()
	if !found {
		return false, 0, 0
	}

	end := start + m.pattern.Len()

	return true, start, end
}
