package filescanner

import (
	"bufio"
	"io"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/bmsearch/scanners"
)

// MaxLineSize is the longest line the scanner will hold; longer lines stop
// the scan with bufio.ErrTooLong.
const MaxLineSize = 1024 * 1024

type fileScanner struct {
	path         string
	bufioScanner *bufio.Scanner
	lineNumber   int
}

func New(r io.Reader, filename string) *fileScanner {
	bufioScanner := bufio.NewScanner(r)
	bufioScanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)

	return &fileScanner{
		path:         filename,
		bufioScanner: bufioScanner,
	}
}

func (s *fileScanner) Scan(logger lager.Logger) bool {
	success := s.bufioScanner.Scan()

	if err := s.bufioScanner.Err(); err != nil {
		logger.Session("file-scanner").Error("bufio-error", err, lager.Data{
			"path":        s.path,
			"line-number": s.lineNumber + 1,
		})
		return false
	}

	if success {
		s.lineNumber++
	}
	return success
}

func (s *fileScanner) Line(logger lager.Logger) *scanners.Line {
	content := s.bufioScanner.Bytes()
	line := make([]byte, len(content))
	copy(line, content)

	return &scanners.Line{
		Content:    line,
		LineNumber: s.lineNumber,
		Path:       s.path,
	}
}

func (s *fileScanner) Err() error {
	return s.bufioScanner.Err()
}
