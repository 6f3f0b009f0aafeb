package main

import (
	"io"
	"log/slog"

	"github.com/jacksmith/emp/internal/cli"
	"github.com/jacksmith/emp/internal/config"
	emplog "github.com/jacksmith/emp/internal/log"
	"github.com/jacksmith/emp/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// app carries global flags and the resources built from them.
type app struct {
	// global flags
	file       string
	configPath string
	logLevel   string
	noColor    bool

	// editor overrides $VISUAL/$EDITOR when set
	editor *cli.Editor

	cfg    *config.Config
	logger *slog.Logger
	store  *storage.Store
	closer io.Closer
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emp",
		Short: "emp - manage employee records in a spreadsheet",
		Long: `emp keeps a small table of employees (ID, Name, Age, Department)
in an .xlsx spreadsheet.

Run without a command to open the interactive menu. Changes made in the
menu are written to the spreadsheet only when you choose "Save & Exit".
The list, add, update and delete commands do the same work in one shot
and save immediately.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags of the command being completed are parsed after this hook.
			if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, a)
		},
	}
	cmd.SetVersionTemplate("emp version {{.Version}}\n")
	cmd.CompletionOptions.DisableDefaultCmd = true

	addGlobalFlags(cmd.PersistentFlags(), a)

	cmd.AddCommand(
		newInitCmd(a),
		newListCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newCompletionCmd(),
	)
	return cmd
}

func addGlobalFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVarP(&a.file, "file", "f", "", "employee spreadsheet (default "+config.DefaultFile+")")
	fs.StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultConfigFile+")")
	fs.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVar(&a.noColor, "no-color", false, "disable colored output")
}

// setup resolves configuration and builds the logger and store.
// It is safe to call more than once.
func (a *app) setup(cmd *cobra.Command) error {
	if a.store != nil {
		return nil
	}
	if a.noColor {
		cli.SetColorEnabled(false)
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigPath: a.configPath,
		DotEnv:     []string{".env"},
		Overrides: config.Overrides{
			File:     a.file,
			LogLevel: a.logLevel,
		},
	})
	if err != nil {
		return err
	}

	logger, closer, err := emplog.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.closer = closer
	a.store = storage.New(cfg.File, cfg.Sheet, logger)
	logger.Debug("configuration resolved", "file", cfg.File, "sheet", cfg.Sheet)
	return nil
}

// Close releases the log file, if any.
func (a *app) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer.Close()
	a.closer = nil
	return err
}

func (a *app) getEditor() *cli.Editor {
	if a.editor != nil {
		return a.editor
	}
	return cli.EditorFromEnv()
}
