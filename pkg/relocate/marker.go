package relocate

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/types"
	"gopkg.in/yaml.v3"
)

// Marker keys, as read by the installation tooling.
const (
	markerKeyWindows = "Windows"
	markerKeyMac     = "Darwin"
	markerKeyLinux   = "Linux"
)

// FormatMarker renders the location marker file for loc.
func FormatMarker(loc types.Location) []byte {
	var b bytes.Buffer
	b.WriteString("# Pipeline configuration location file\n")
	b.WriteString("# This file reflects the paths in the pipeline configuration\n")
	b.WriteString("# entity which is associated with this location\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s\n", markerKeyWindows, singleQuote(loc.Windows))
	fmt.Fprintf(&b, "%s: %s\n", markerKeyMac, singleQuote(loc.Mac))
	fmt.Fprintf(&b, "%s: %s\n", markerKeyLinux, singleQuote(loc.Linux))
	b.WriteString("\n")
	b.WriteString("# End of file.\n")
	return b.Bytes()
}

// singleQuote renders s as a YAML single-quoted scalar.
func singleQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// WriteMarker overwrites <root>/config/core/install_location.yml with loc.
// The file is made writable first and left read-only for everybody. A crash
// between the steps leaves either the old content or the new content
// unlocked.
func WriteMarker(fsys types.FS, root string, loc types.Location) error {
	path := paths.MarkerPath(root)

	if err := fsys.Chmod(path, 0666); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to unlock %s", path)
	}
	if err := fsys.WriteFile(path, FormatMarker(loc), 0666); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	if err := fsys.Chmod(path, 0444); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to lock %s", path)
	}
	return nil
}

// ReadMarker parses the location marker of the configuration at root.
func ReadMarker(fsys types.FS, root string) (types.Location, error) {
	path := paths.MarkerPath(root)
	data, err := fsys.ReadFile(path)
	if err != nil {
		return types.Location{}, errors.Wrapf(err, errors.ErrNotConfigurationRoot, "failed to read %s", path)
	}

	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return types.Location{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	return types.Location{
		Linux:   values[markerKeyLinux],
		Windows: values[markerKeyWindows],
		Mac:     values[markerKeyMac],
	}, nil
}
