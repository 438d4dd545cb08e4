package pcmove

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pcmove/internal/version"
	"github.com/arthur-debert/pcmove/pkg/commands"
	"github.com/arthur-debert/pcmove/pkg/commands/list"
	"github.com/arthur-debert/pcmove/pkg/commands/move"
	"github.com/arthur-debert/pcmove/pkg/commands/register"
	"github.com/arthur-debert/pcmove/pkg/config"
	"github.com/arthur-debert/pcmove/pkg/errors"
	"github.com/arthur-debert/pcmove/pkg/filesystem"
	"github.com/arthur-debert/pcmove/pkg/paths"
	"github.com/arthur-debert/pcmove/pkg/relocate"
	"github.com/arthur-debert/pcmove/pkg/types"
	"github.com/arthur-debert/pcmove/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMoveCmd(s *settings) *cobra.Command {
	var (
		configRoot string
		yes        bool
		id         int
	)

	cmd := &cobra.Command{
		Use:     "move LINUX_PATH WINDOWS_PATH MAC_PATH",
		Short:   MsgMoveShort,
		Long:    MsgMoveLong,
		Example: MsgMoveExample,
		GroupID: "core",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				_ = cmd.Help()
				return errors.New(errors.ErrUsage, MsgMoveUsage)
			}
			for _, a := range args {
				if err := paths.ValidatePath(a); err != nil {
					return errors.Wrap(err, errors.ErrUsage, "invalid path argument")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.FindConfigRoot(configRoot)
			if err != nil && id == 0 {
				return fmt.Errorf(MsgErrConfigRoot, err)
			}

			store, err := commands.OpenRegistry(cmd.Context(), s.cfg)
			if err != nil {
				return fmt.Errorf(MsgErrRegistry, err)
			}
			defer store.Close()

			var confirmer relocate.Confirmer
			if yes || !s.cfg.Move.Confirm {
				log.Debug().Msg(MsgSkipConfirm)
			} else {
				f, _ := ui.ParseFormat(s.format)
				prompt := ui.NewPrompt(f)
				if in := cmd.InOrStdin(); in != io.Reader(os.Stdin) {
					prompt.In = in
					prompt.Interactive = false
				}
				prompt.Out = cmd.OutOrStdout()
				confirmer = prompt
			}

			result, err := move.MoveConfiguration(cmd.Context(), move.MoveOptions{
				ConfigRoot: root,
				ID:         id,
				Target:     types.Location{Linux: args[0], Windows: args[1], Mac: args[2]},
				FS:         filesystem.NewOS(),
				Registry:   store,
				Confirmer:  confirmer,
				Config:     s.cfg,
			})
			if result != nil && result.FailedIn != relocate.PhaseLookup && result.FailedIn != relocate.PhaseConfirming {
				fmt.Fprintln(cmd.OutOrStdout(), s.renderer().RenderResult(result))
			}
			return err
		},
	}

	cmd.Flags().StringVar(&configRoot, "config-root", "", MsgFlagConfigRoot)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().IntVar(&id, "id", 0, MsgFlagID)
	return cmd
}

func newRegisterCmd(s *settings) *cobra.Command {
	var (
		configRoot string
		code       string
	)

	cmd := &cobra.Command{
		Use:     "register",
		Short:   MsgRegisterShort,
		Long:    MsgRegisterLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := paths.FindConfigRoot(configRoot)
			if err != nil {
				return fmt.Errorf(MsgErrConfigRoot, err)
			}

			store, err := commands.OpenRegistry(cmd.Context(), s.cfg)
			if err != nil {
				return fmt.Errorf(MsgErrRegistry, err)
			}
			defer store.Close()

			rec, err := register.RegisterConfiguration(cmd.Context(), register.RegisterOptions{
				ConfigRoot: root,
				Code:       code,
				FS:         filesystem.NewOS(),
				Registry:   store,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgRegistered, rec.ID, rec.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&configRoot, "config-root", "", MsgFlagConfigRoot)
	cmd.Flags().StringVar(&code, "code", "", MsgFlagCode)
	return cmd
}

func newListCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := commands.OpenRegistry(cmd.Context(), s.cfg)
			if err != nil {
				return fmt.Errorf(MsgErrRegistry, err)
			}
			defer store.Close()

			records, err := list.ListConfigurations(cmd.Context(), list.ListOptions{Registry: store})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.renderer().RenderRecords(records))
			return nil
		},
	}
}

func newConfigCmd(s *settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: MsgConfigInitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := s.configFile
			if path == "" {
				path = paths.AppConfigPath()
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			path := s.configFile
			if path == "" {
				path = paths.AppConfigPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	})
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
