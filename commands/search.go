package commands

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/bmsearch/boyermoore"
	"github.com/pivotal-cf/bmsearch/scanners"
	"github.com/pivotal-cf/bmsearch/scanners/filescanner"
	"github.com/pivotal-cf/bmsearch/sniff"
	"github.com/pivotal-cf/bmsearch/sniff/matchers"
	"github.com/pivotal-cf/bmsearch/tracing"
)

// ErrNoMatch is returned when a search completed without finding anything.
var ErrNoMatch = errors.New("no matches found")

type SearchCommand struct {
	Patterns   []string `short:"p" long:"pattern" description:"the pattern to search for, may be repeated" value-name:"PATTERN" env:"BMSEARCH_PATTERNS" env-delim:","`
	File       string   `short:"f" long:"file" description:"the file to search, STDIN when omitted" value-name:"FILE"`
	Lines      bool     `long:"lines" description:"search line by line and report PATH:LINE:COLUMN"`
	IgnoreCase bool     `short:"i" long:"ignore-case" description:"match ASCII letters regardless of case"`
	Exclude    []string `long:"exclude" description:"skip lines containing this string (with --lines)" value-name:"STRING"`
	Trace      bool     `long:"trace" description:"print every alignment the scanner examines"`
	Stats      bool     `long:"stats" description:"print how many alignments were examined"`
	NoColor    bool     `long:"no-color" description:"disable colored output"`
	Debug      bool     `long:"debug" description:"enables debug logging"`
}

func (command *SearchCommand) Execute(args []string) error {
	ansi.DisableColors(command.NoColor)

	logger := lager.NewLogger("bmsearch")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	} else {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.INFO))
	}

	if len(command.Patterns) == 0 {
		return errors.New("at least one --pattern is required")
	}

	if command.Trace && command.Lines {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "--trace is ignored with --lines")
	}

	input, name, err := command.openInput()
	if err != nil {
		return err
	}
	defer input.Close()

	if command.Lines {
		return command.searchLines(logger, input, name)
	}

	return command.searchText(logger, input, name)
}

func (command *SearchCommand) openInput() (io.ReadCloser, string, error) {
	if command.File == "" {
		return ioutil.NopCloser(os.Stdin), "STDIN", nil
	}

	file, err := os.Open(command.File)
	if err != nil {
		return nil, "", err
	}

	return file, command.File, nil
}

func (command *SearchCommand) fold(ss []string) []string {
	if !command.IgnoreCase {
		return ss
	}

	upcased := make([]string, len(ss))
	for i, s := range ss {
		upcased[i] = string(matchers.UpcaseASCII([]byte(s)))
	}
	return upcased
}

func (command *SearchCommand) searchText(logger lager.Logger, input io.Reader, name string) error {
	logger = logger.Session("search-text", lager.Data{"input": name})
	logger.Debug("starting")
	defer logger.Debug("done")

	var (
		compiled []*boyermoore.Pattern
		result   error
	)

	for _, p := range command.fold(command.Patterns) {
		pattern, err := boyermoore.PreprocessString(p)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		compiled = append(compiled, pattern)
	}

	if result != nil {
		logger.Error("preprocess-failed", result)
		return result
	}

	text, err := ioutil.ReadAll(input)
	if err != nil {
		logger.Error("read-failed", err)
		return err
	}

	original := text
	if command.IgnoreCase {
		text = matchers.UpcaseASCII(text)
	}

	found := 0
	for i, pattern := range compiled {
		stats := &tracing.Stats{}

		var printer *tracing.Printer
		tracers := []boyermoore.Tracer{stats}
		if command.Debug {
			tracers = append(tracers, tracing.NewLoggerTracer(logger))
		}
		if command.Trace {
			printer = tracing.NewPrinter(os.Stdout, original, []byte(command.Patterns[i]), !command.NoColor)
			tracers = append(tracers, printer)
		}

		for it := boyermoore.Search(text, pattern, tracing.Multi(tracers...)).Iterator(); it.Next(); {
			found++
			fmt.Printf("%s %q found at index %d\n", green("[MATCH]"), command.Patterns[i], it.Offset())
		}

		if printer != nil && printer.Err() != nil {
			return printer.Err()
		}

		if command.Stats {
			fmt.Printf("%s %q: %d alignments examined, %d matches, advanced %d bytes over %d\n",
				yellow("[STATS]"), command.Patterns[i], stats.Alignments(), stats.Matches(), stats.Advanced(), len(text))
		}

		logger.Info("searched", lager.Data{
			"pattern":    command.Patterns[i],
			"alignments": stats.Alignments(),
			"matches":    stats.Matches(),
		})
	}

	if found == 0 {
		return ErrNoMatch
	}

	return nil
}

func (command *SearchCommand) searchLines(logger lager.Logger, input io.Reader, name string) error {
	matcher, err := matchers.Substrings(command.fold(command.Patterns)...)
	if err != nil {
		logger.Error("preprocess-failed", err)
		return err
	}

	var exclusionMatcher matchers.Matcher
	if len(command.Exclude) > 0 {
		exclusionMatcher, err = matchers.Substrings(command.fold(command.Exclude)...)
		if err != nil {
			logger.Error("preprocess-failed", err)
			return err
		}
	}

	if command.IgnoreCase {
		matcher = matchers.UpcasedMulti(matcher)
		if exclusionMatcher != nil {
			exclusionMatcher = matchers.UpcasedMulti(exclusionMatcher)
		}
	}

	counter := &matchCounter{}
	sniffer := sniff.NewSniffer(matcher, exclusionMatcher)

	err = sniffer.Sniff(logger, filescanner.New(input, name), counter.HandleMatch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s searching failed: %s\n", red("[FAILED]"), err)
		return err
	}

	if counter.count == 0 {
		return ErrNoMatch
	}

	return nil
}

type matchCounter struct {
	count int
}

func (c *matchCounter) HandleMatch(logger lager.Logger, match scanners.Match) error {
	line := match.Line
	c.count++

	fmt.Printf("%s %s:%d:%d %s\n", green("[MATCH]"), line.Path, line.LineNumber, match.Column(), line.Content)

	logger.Debug("match-found", lager.Data{"path": line.Path, "line": line.LineNumber, "count": c.count})

	return nil
}
