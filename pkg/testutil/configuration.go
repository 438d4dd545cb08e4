package testutil

import (
	"fmt"
	"path/filepath"
	"testing"
)

// ConfigurationTree writes a minimal pipeline configuration at root: the
// location marker, the descriptor with id and any extra files.
func ConfigurationTree(t *testing.T, root string, id int, extra map[string]string) string {
	t.Helper()

	tree := map[string]string{
		"config/core/install_location.yml":       "Linux: '" + root + "'\n",
		"config/core/pipeline_configuration.yml": fmt.Sprintf("pc_id: %d\npc_name: Primary\nproject_name: big_buck\n", id),
	}
	for name, content := range extra {
		tree[name] = content
	}
	WriteTree(t, root, tree)
	return filepath.Clean(root)
}
