package matchers

import (
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/bmsearch/boyermoore"
)

// Filter only consults submatcher for lines that contain at least one of
// the filters.
func Filter(submatcher Matcher, filters ...string) (Matcher, error) {
	fs := make([]*boyermoore.Pattern, 0, len(filters))

	var result error
	for i := range filters {
		p, err := boyermoore.PreprocessString(filters[i])
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		fs = append(fs, p)
	}

	if result != nil {
		return nil, result
	}

	return &filter{
		matcher: submatcher,
		filters: fs,
	}, nil
}

type filter struct {
	matcher Matcher
	filters []*boyermoore.Pattern
}

func (f *filter) Match(line []byte) (bool, int, int) {
	found := false

	for i := range f.filters {
		if _, ok := f.filters[i].Search(line).First(); ok {
			found = true
			break
		}
	}

	if !found {
		return false, 0, 0
	}

	return f.matcher.Match(line)
}
