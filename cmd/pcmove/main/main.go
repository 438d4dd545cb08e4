package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pcmove/cmd/pcmove"
	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/ui"
)

func main() {
	rootCmd := pcmove.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer := ui.NewRenderer(ui.DetectFormat(os.Stderr))
		fmt.Fprintln(os.Stderr, renderer.RenderError(err))
		if errors.IsErrorCode(err, errors.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
