package pcmove

import (
	"github.com/arthur-debert/pcmove/internal/version"
	"github.com/arthur-debert/pcmove/pkg/config"
	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/logging"
	"github.com/arthur-debert/pcmove/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// settings are the global flags and the configuration they resolve to.
type settings struct {
	verbosity  int
	configFile string
	format     string
	cfg        *config.Config
}

func (s *settings) renderer() *ui.Renderer {
	f, err := ui.ParseFormat(s.format)
	if err != nil {
		f = ui.FormatAuto
	}
	return ui.NewRenderer(f)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	s := &settings{}

	rootCmd := &cobra.Command{
		Use:     "pcmove",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ui.ParseFormat(s.format); err != nil {
				return errors.Wrap(err, errors.ErrUsage, "invalid --format")
			}
			cfg, err := config.LoadConfiguration(s.configFile)
			if err != nil {
				return err
			}
			s.cfg = cfg
			logging.SetupLoggerWithFile(s.verbosity, cfg.Log.File)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrUsage, MsgNoSubcommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&s.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&s.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&s.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newMoveCmd(s))
	rootCmd.AddCommand(newRegisterCmd(s))
	rootCmd.AddCommand(newListCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}
