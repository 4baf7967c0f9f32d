package tracing

import (
	"fmt"
	"io"
	"strings"

	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/bmsearch/boyermoore"
)

// Printer writes a human readable account of every alignment: the text,
// the pattern shifted underneath it, and how far the scanner moved on.
// The first write error stops all further output and is kept for Err.
type Printer struct {
	w       io.Writer
	text    []byte
	pattern []byte

	red   func(string) string
	green func(string) string
	bold  func(string) string

	err error
}

func NewPrinter(w io.Writer, text, pattern []byte, colored bool) *Printer {
	p := &Printer{
		w:       w,
		text:    text,
		pattern: pattern,
		red:     plain,
		green:   plain,
		bold:    plain,
	}

	if colored {
		p.red = ansi.ColorFunc("red+b")
		p.green = ansi.ColorFunc("green+b")
		p.bold = ansi.ColorFunc("white+b")
	}

	return p
}

func plain(s string) string { return s }

func (p *Printer) Alignment(e boyermoore.Event) {
	if p.err != nil {
		return
	}

	var b strings.Builder

	fmt.Fprintf(&b, "text:    %s\n", printable(p.text))
	fmt.Fprintf(&b, "pattern: %s%s\n", strings.Repeat(" ", e.Offset), printable(p.pattern))

	if e.FullMatch() {
		fmt.Fprintf(&b, "%s\n", p.green(fmt.Sprintf("pattern found at index %d", e.Offset)))
	} else {
		j := e.MismatchIndex
		fmt.Fprintf(&b, "%s at pattern index %d (pattern %q != text %q)\n",
			p.red("mismatch"), j, p.pattern[j], p.text[e.Offset+j])
		fmt.Fprintf(&b, "  bad character shift: %d\n", e.BadCharShift)
		fmt.Fprintf(&b, "  good suffix shift:   %d\n", e.GoodSuffixShift)
	}
	fmt.Fprintf(&b, "  shift applied:       %s\n\n", p.bold(fmt.Sprint(e.AppliedShift)))

	_, p.err = io.WriteString(p.w, b.String())
}

func (p *Printer) Err() error {
	return p.err
}

// printable keeps one column per byte so the pattern lines up under the
// text.
func printable(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c < 0x20 || c >= 0x7f {
			c = '.'
		}
		out[i] = c
	}
	return string(out)
}
