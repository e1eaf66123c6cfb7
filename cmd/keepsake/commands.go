package keepsake

import (
	stderrors "errors"
	"fmt"
	"io/fs"

	"github.com/arthur-debert/keepsake/internal/version"
	"github.com/arthur-debert/keepsake/pkg/config"
	"github.com/arthur-debert/keepsake/pkg/datastore"
	"github.com/arthur-debert/keepsake/pkg/logging"
	"github.com/arthur-debert/keepsake/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// appState is filled in before any subcommand runs.
type appState struct {
	settings *config.Settings
	storage  datastore.Storage
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configFile string
		appID      string
		codecName  string
		memory     bool
	)
	app := &appState{}

	rootCmd := &cobra.Command{
		Use:     "keepsake",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The logger exists before settings load; its level follows
			// the resolved settings afterwards.
			logging.SetupLogger(verbosity)

			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("app") {
				overrides["app_id"] = appID
			}
			if cmd.Flags().Changed("codec") {
				overrides["codec"] = codecName
			}
			if cmd.Flags().Changed("memory") {
				overrides["memory"] = memory
			}
			if cmd.Flags().Changed("verbose") {
				overrides["verbosity"] = verbosity
			}

			settings, err := config.Load(config.LoadOptions{
				ConfigFile: configFile,
				Overrides:  overrides,
			})
			if err != nil {
				return fmt.Errorf(MsgErrSettings, err)
			}

			logging.SetVerbosity(settings.Verbosity)
			logging.LogCommand(cmd.Name(), args)

			storage, err := settings.Storage()
			if err != nil {
				return fmt.Errorf(MsgErrStorage, err)
			}
			app.settings = settings
			app.storage = storage
			log.Debug().Str("command", cmd.Name()).Str("codec", storage.Codec().Name()).Msg("Command started")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&appID, "app", "", MsgFlagApp)
	rootCmd.PersistentFlags().StringVar(&codecName, "codec", "", MsgFlagCodec)
	rootCmd.PersistentFlags().BoolVar(&memory, "memory", false, MsgFlagMemory)

	rootCmd.AddCommand(newPathsCmd(app))
	rootCmd.AddCommand(newPathCmd(app))
	rootCmd.AddCommand(newShowCmd(app))
	rootCmd.AddCommand(newRmCmd(app))
	rootCmd.AddCommand(newCounterCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newPathsCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: MsgPathsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			roots := app.storage.Roots()
			for _, c := range types.Categories {
				fmt.Fprintf(out, MsgRootLine, formatLabel(out, c.String()), formatPath(out, roots.For(c)))
			}
			return nil
		},
	}
}

func newPathCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:       "path <category> <identifier>",
		Short:     MsgPathShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(app.storage, args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatPath(out, path))
			return nil
		},
	}
}

// newShowCmd prints raw bytes and never creates a missing file.
func newShowCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:       "show <category> <identifier>",
		Short:     MsgShowShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(app.storage, args[0], args[1])
			if err != nil {
				return err
			}
			data, err := readStored(app.storage, path)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// newRmCmd deletes a stored file; the next read recreates the default.
func newRmCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:       "rm <category> <identifier>",
		Short:     MsgRmShort,
		Args:      cobra.ExactArgs(2),
		ValidArgs: categoryNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(app.storage, args[0], args[1])
			if err != nil {
				return err
			}
			if err := removeStored(app.storage, path); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgRemoved, formatPath(out, path))
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func readStored(storage datastore.Storage, path string) ([]byte, error) {
	data, err := storage.FS().ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf(MsgErrNotStored, path)
	}
	if err != nil {
		return nil, fmt.Errorf(MsgErrReadStored, path, err)
	}
	return data, nil
}

func removeStored(storage datastore.Storage, path string) error {
	_, err := storage.FS().Stat(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf(MsgErrNotStored, path)
	}
	if err != nil {
		return fmt.Errorf(MsgErrRmStored, path, err)
	}
	if err := storage.FS().Remove(path); err != nil {
		return fmt.Errorf(MsgErrRmStored, path, err)
	}
	return nil
}

func resolvePath(storage datastore.Storage, category, identifier string) (string, error) {
	c, err := types.ParseCategory(category)
	if err != nil {
		return "", err
	}
	return storage.PathFor(c, identifier)
}

func categoryNames() []string {
	names := make([]string, 0, len(types.Categories))
	for _, c := range types.Categories {
		names = append(names, c.String())
	}
	return names
}
