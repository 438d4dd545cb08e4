package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pcmove/cmd/pcmove"
	"github.com/arthur-debert/pcmove/internal/version"
)

func main() {
	rootCmd := pcmove.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PCMOVE",
		Section: "1",
		Source:  "pcmove " + version.Version,
		Manual:  "pcmove manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
