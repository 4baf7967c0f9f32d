package sniff

import (
	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"

	"github.com/pivotal-cf/bmsearch/scanners"
	"github.com/pivotal-cf/bmsearch/sniff/matchers"
)

//go:generate counterfeiter . Scanner

type Scanner interface {
	Scan(lager.Logger) bool
	Line(lager.Logger) *scanners.Line
	Err() error
}

//go:generate counterfeiter . Sniffer

type Sniffer interface {
	Sniff(lager.Logger, Scanner, MatchHandlerFunc) error
}

type MatchHandlerFunc func(lager.Logger, scanners.Match) error

type sniffer struct {
	matcher          matchers.Matcher
	exclusionMatcher matchers.Matcher
}

// NewSniffer reports lines that matcher hits. Lines that exclusionMatcher
// hits are skipped; it may be nil.
func NewSniffer(matcher, exclusionMatcher matchers.Matcher) Sniffer {
	return &sniffer{
		matcher:          matcher,
		exclusionMatcher: exclusionMatcher,
	}
}

func (s *sniffer) Sniff(
	logger lager.Logger,
	scanner Scanner,
	handleMatch MatchHandlerFunc,
) error {
	logger = logger.Session("sniff")
	logger.Debug("starting")

	var result error

	for scanner.Scan(logger) {
		line := scanner.Line(logger)

		if s.exclusionMatcher != nil {
			if match, _, _ := s.exclusionMatcher.Match(line.Content); match {
				continue
			}
		}

		if match, start, end := s.matcher.Match(line.Content); match {
			m := scanners.Match{
				Line:  *line,
				Start: start,
				End:   end,
			}

			err := handleMatch(logger, m)
			if err != nil {
				logger.Error("handle-match-failed", err)
				result = multierror.Append(result, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("scanning-failed", err)
		result = multierror.Append(result, err)
	}

	logger.Debug("done")
	return result
}
