package ui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/relocate"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var platformLabels = map[types.Platform]string{
	types.PlatformLinux:   "Linux",
	types.PlatformWindows: "Windows",
	types.PlatformMac:     "Mac",
}

// Renderer renders command output in one format.
type Renderer struct {
	format Format
}

// NewRenderer returns a renderer for format. FormatAuto is resolved against
// stdout.
func NewRenderer(format Format) *Renderer {
	return &Renderer{format: resolve(format, stdout())}
}

// Format returns the concrete format in use.
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) styled(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return GetStyle(name).Render(s)
}

// RenderOverview shows current and new paths of a configuration.
func (r *Renderer) RenderOverview(o relocate.Overview) string {
	title := fmt.Sprintf("Overview of Configuration '%s' (id %d)", o.Record.Code, o.Record.ID)
	if r.format != FormatTerminal {
		return renderOverviewText(title, o)
	}

	rows := []string{r.styled("Title", title)}
	for _, p := range types.Platforms {
		label := platformLabels[p]
		if p == o.Platform {
			label += " *"
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			r.styled("Label", label),
			r.styled("Current", display(o.Record.Location.For(p))),
			"  ->  ",
			r.styled("Path", display(o.Target.For(p))),
		))
	}
	rows = append(rows, "", r.styled("Muted", "* files are copied on this platform"))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderOverviewText(title string, o relocate.Overview) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 62) + "\n\n")
	for _, p := range types.Platforms {
		fmt.Fprintf(&b, "Current %-8s Path: %s\n", platformLabels[p], display(o.Record.Location.For(p)))
	}
	b.WriteString("\n")
	for _, p := range types.Platforms {
		fmt.Fprintf(&b, "New %-8s Path:     %s\n", platformLabels[p], display(o.Target.For(p)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func display(path string) string {
	if path == "" {
		return "(none)"
	}
	return path
}

// RenderResult summarizes a finished or failed move.
func (r *Renderer) RenderResult(res *relocate.Result) string {
	if res == nil {
		return ""
	}
	if r.format == FormatJSON {
		return r.mustJSON(resultJSON(res))
	}

	var b strings.Builder
	if res.Copy != nil {
		fmt.Fprintf(&b, "Copied %d files to %s\n", len(res.Copy.Copied), res.Destination)
	}
	if res.Mappings != nil && len(res.Mappings.Updated) > 0 {
		fmt.Fprintf(&b, "Updated %d storage roots\n", len(res.Mappings.Updated))
	}
	if res.Cleanup != nil && len(res.Cleanup.Failures) > 0 {
		b.WriteString(r.styled("Warning",
			fmt.Sprintf("%d items of the original configuration could not be removed:", len(res.Cleanup.Failures))) + "\n")
		for _, f := range res.Cleanup.Failures {
			b.WriteString("  " + f.Error() + "\n")
		}
	}
	if res.Phase == relocate.PhaseDone {
		b.WriteString(r.styled("Success", "All done! Your configuration has been successfully moved."))
	} else {
		b.WriteString(r.styled("Error", fmt.Sprintf("Move failed while %s.", res.FailedIn)))
	}
	return b.String()
}

type resultOutput struct {
	Phase         string         `json:"phase"`
	FailedIn      string         `json:"failed_in,omitempty"`
	Source        string         `json:"source"`
	Destination   string         `json:"destination"`
	Target        types.Location `json:"target"`
	Copied        int            `json:"copied"`
	Skipped       []string       `json:"skipped,omitempty"`
	Failures      []string       `json:"failures,omitempty"`
	UpdatedRoots  []string       `json:"updated_roots,omitempty"`
	CleanupErrors []string       `json:"cleanup_errors,omitempty"`
}

func resultJSON(res *relocate.Result) resultOutput {
	out := resultOutput{
		Phase:       string(res.Phase),
		FailedIn:    string(res.FailedIn),
		Source:      res.Source,
		Destination: res.Destination,
		Target:      res.Target,
	}
	if res.Copy != nil {
		out.Copied = len(res.Copy.Copied)
		out.Skipped = res.Copy.Skipped
		out.Failures = itemStrings(res.Copy.Failures)
	}
	if res.Mappings != nil {
		out.UpdatedRoots = res.Mappings.Updated
	}
	if res.Cleanup != nil {
		out.CleanupErrors = itemStrings(res.Cleanup.Failures)
	}
	return out
}

func itemStrings(items []relocate.ItemError) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Error())
	}
	return out
}

// RenderRecords lists registry records.
func (r *Renderer) RenderRecords(records []types.Record) string {
	if r.format == FormatJSON {
		return r.mustJSON(records)
	}
	if len(records) == 0 {
		return r.styled("Muted", "No pipeline configurations registered.")
	}

	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "%s %s\n", r.styled("Title", fmt.Sprintf("%d", rec.ID)), rec.Code)
		for _, p := range types.Platforms {
			fmt.Fprintf(&b, "    %-8s %s\n", platformLabels[p], r.styled("Path", display(rec.Location.For(p))))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderError renders err with its code when it has one.
func (r *Renderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	code := errors.GetErrorCode(err)
	msg := strings.TrimPrefix(err.Error(), "["+string(code)+"] ")
	if r.format != FormatTerminal {
		if code == errors.ErrUnknown {
			return "Error: " + msg
		}
		return fmt.Sprintf("Error [%s]: %s", code, msg)
	}
	if code == errors.ErrUnknown {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(msg))
	}
	return fmt.Sprintf("%s Error [%s]: %s",
		pterm.Error.Prefix.Text,
		pterm.Error.MessageStyle.Sprint(code),
		msg)
}

func (r *Renderer) mustJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}
