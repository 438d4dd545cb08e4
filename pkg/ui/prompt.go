package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pcmove/pkg/relocate"
	"github.com/pterm/pterm"
)

// MsgConfirmMove is the question asked before a move starts.
const MsgConfirmMove = "Are you sure you want to move your configuration?"

func stdout() *os.File { return os.Stdout }

// Prompt asks the operator to confirm a move. On a terminal it uses an
// interactive pterm prompt; otherwise it reads one line from In and
// accepts anything starting with "y".
type Prompt struct {
	In          io.Reader
	Out         io.Writer
	Interactive bool
	Renderer    *Renderer
}

// NewPrompt returns a prompt on stdin and stdout.
func NewPrompt(format Format) *Prompt {
	return &Prompt{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: IsTerminal(os.Stdin) && IsTerminal(os.Stdout),
		Renderer:    NewRenderer(format),
	}
}

// Confirm shows the overview and asks whether to proceed.
func (p *Prompt) Confirm(o relocate.Overview) (bool, error) {
	fmt.Fprintln(p.Out, p.Renderer.RenderOverview(o))
	fmt.Fprintln(p.Out)

	if p.Interactive {
		return pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			Show(MsgConfirmMove)
	}

	fmt.Fprintf(p.Out, "%s [Yes/No] ", MsgConfirmMove)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}
