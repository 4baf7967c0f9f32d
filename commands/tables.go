package commands

import (
	"fmt"

	"github.com/pivotal-cf/bmsearch/boyermoore"
)

type TablesCommand struct {
	Pattern string `short:"p" long:"pattern" description:"the pattern to preprocess" value-name:"PATTERN" required:"true"`
}

func (command *TablesCommand) Execute(args []string) error {
	p, err := boyermoore.PreprocessString(command.Pattern)
	if err != nil {
		return err
	}

	fmt.Printf("pattern: %q (length %d)\n\n", command.Pattern, p.Len())

	fmt.Println("occurrence (rightmost index, bytes not listed are absent):")
	for c := 0; c < 256; c++ {
		if idx := p.Occurrence(byte(c)); idx >= 0 {
			fmt.Printf("  %q\t%d\n", byte(c), idx)
		}
	}
	fmt.Println()

	fmt.Println("shift (good suffix):")
	for j, s := range p.Shifts() {
		fmt.Printf("  s[%d]\t%d\n", j, s)
	}

	return nil
}
