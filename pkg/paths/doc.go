// Package paths provides centralized path handling for pcmove.
//
// It knows two layouts:
//
//   - The pipeline configuration tree being relocated: where the location
//     marker, the localized API marker, the pipeline descriptor and the
//     storage roots file live relative to a configuration root.
//   - pcmove's own XDG directories (config, data, state), used for the
//     application config file, the registry database and the log file.
//
// # Environment Variables
//
//   - PCMOVE_CONFIG_ROOT: configuration root to operate on (default: search
//     upward from the working directory)
//   - PCMOVE_DATA_DIR: override $XDG_DATA_HOME/pcmove
//   - PCMOVE_CONFIG_DIR: override $XDG_CONFIG_HOME/pcmove
//   - PCMOVE_STATE_DIR: override $XDG_STATE_HOME/pcmove
//
// # Usage
//
//	root, err := paths.FindConfigRoot("")
//	marker := paths.MarkerPath(root)  // <root>/config/core/install_location.yml
package paths
