package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pcmove/cmd/pcmove"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
		os.Exit(1)
	}

	rootCmd := pcmove.NewRootCmd()
	if err := pcmove.GenCompletion(rootCmd, os.Args[1], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating completion: %v\n", err)
		os.Exit(1)
	}
}
