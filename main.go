package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/pivotal-cf/bmsearch/commands"
)

func main() {
	parser := flags.NewParser(&commands.BMSearch, flags.HelpFlag)
	parser.NamespaceDelimiter = "-"

	_, err := parser.Parse()
	if err == nil {
		return
	}

	if errors.Is(err, commands.ErrNoMatch) {
		os.Exit(1)
	}

	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		fmt.Println(err)
		os.Exit(0)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
