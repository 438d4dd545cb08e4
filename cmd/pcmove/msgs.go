package pcmove

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Relocate pipeline configurations on disk"
	MsgMoveShort       = "Move a pipeline configuration to a new location"
	MsgRegisterShort   = "Register a pipeline configuration in the registry"
	MsgRegisterLong    = "Register reads the location marker of a pipeline configuration, creates a registry record for it and writes the new id into its descriptor."
	MsgListShort       = "List registered pipeline configurations"
	MsgListLong        = "List displays every pipeline configuration in the registry with its per-platform paths."
	MsgConfigShort     = "Manage the pcmove configuration file"
	MsgConfigInitShort = "Write a configuration file with the default settings"
	MsgConfigPathShort = "Print the location of the configuration file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgRegistered    = "Registered configuration %d (%s)\n"
	MsgConfigWritten = "Wrote default configuration to %s\n"
	MsgVersionFormat = "pcmove version %s\n  commit: %s\n  built:  %s\n"
	MsgSkipConfirm   = "Skipping confirmation"
	MsgMoveUsage     = "move takes exactly three paths: LINUX_PATH WINDOWS_PATH MAC_PATH"
	MsgNoSubcommand  = "no command specified"
	MsgUnknownShell  = "unsupported shell %q"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrConfigRoot = "failed to find the pipeline configuration: %w"
	MsgErrRegistry   = "failed to open registry: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v DEBUG, -vv TRACE)"
	MsgFlagConfig     = "Configuration file (default is $XDG_CONFIG_HOME/pcmove/config.toml)"
	MsgFlagFormat     = "Output format: auto, term, text or json"
	MsgFlagConfigRoot = "Pipeline configuration to operate on (default: search upwards from the working directory)"
	MsgFlagYes        = "Do not ask for confirmation"
	MsgFlagID         = "Registry id of the configuration (default: pc_id from its descriptor)"
	MsgFlagCode       = "Name of the registry record (default: pc_name from the descriptor, then the folder name)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/move-long.txt
	msgMoveLongRaw string
	MsgMoveLong    = strings.TrimSpace(msgMoveLongRaw)

	//go:embed msgs/move-example.txt
	msgMoveExampleRaw string
	MsgMoveExample    = strings.TrimRight(msgMoveExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
