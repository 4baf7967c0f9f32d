package textscanner

import (
	"strings"

	"github.com/pivotal-cf/bmsearch/scanners/filescanner"
	"github.com/pivotal-cf/bmsearch/sniff"
)

func New(text string) sniff.Scanner {
	reader := strings.NewReader(text)

	return filescanner.New(reader, "text")
}
