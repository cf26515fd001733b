package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tabuddy/tabuddy/config"
	"github.com/tabuddy/tabuddy/internal/application/logic"
	"github.com/tabuddy/tabuddy/internal/application/model"
	"github.com/tabuddy/tabuddy/internal/infrastructure/persistence"
	"github.com/tabuddy/tabuddy/internal/interface/cli"
	"github.com/tabuddy/tabuddy/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// APPLICATION STATE
// ══════════════════════════════════════════════════════════════════════════════

// app carries flag values and what PersistentPreRunE builds from them.
type app struct {
	configPath string
	verbose    bool
	storage    string
	dataPath   string

	cfg *config.Config
	log *logger.Logger
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("storage") {
		cfg.Storage.Backend = a.storage
	}
	if flags.Changed("data") {
		cfg.Storage.Path = a.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := cfg.LoggerOptions(a.verbose)
	opts.Output = cmd.ErrOrStderr()
	a.cfg = cfg
	a.log = logger.New(opts).With(logger.String("app", cfg.App.Name))
	return nil
}

// openLogic opens storage, loads the saved data and returns a ready manager.
// The returned function closes the storage.
func (a *app) openLogic(ctx context.Context) (*logic.Manager, func(), error) {
	handle, err := persistence.Open(ctx, storageOptions(a.cfg), a.log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s storage: %w", a.cfg.Storage.Backend, err)
	}

	a.log.Debug("storage opened", logger.Backend(handle.Backend))

	initial := logic.LoadInitial(ctx, handle.Repository, a.log)
	mgr := logic.NewManager(model.NewManager(initial), handle.Repository, a.log)

	closeFn := func() {
		if err := handle.Close(); err != nil {
			a.log.Warn("failed to close storage", logger.Err(err))
		}
	}
	return mgr, closeFn, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// ROOT
// ══════════════════════════════════════════════════════════════════════════════

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tabuddy",
		Short: "TA Buddy: an address book for teaching assistants",
		Long: `TA Buddy keeps track of the modules you teach, the students in each module
and the tasks they have completed.

Run without arguments for an interactive session, or use "tabuddy exec"
to run a single command.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			mgr, closeFn, err := a.openLogic(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			session := cli.NewSession(mgr, cmd.InOrStdin(), cmd.OutOrStdout(), a.log)
			if err := session.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.storage, "storage", "", "storage backend: "+strings.Join(config.Backends, ", "))
	pf.StringVar(&a.dataPath, "data", "", "data file for the json and sqlite backends")

	root.AddCommand(newExecCmd(a), newConfigCmd(a))
	return root
}

// ══════════════════════════════════════════════════════════════════════════════
// EXEC
// ══════════════════════════════════════════════════════════════════════════════

func newExecCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single command and print its result",
		Example: `  tabuddy exec list
  tabuddy exec add module m/CS2103T
  tabuddy exec mark m/CS2103T ti/T1 s/A0123456X`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mgr, closeFn, err := a.openLogic(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			result, err := mgr.Execute(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			p := cli.NewPresenter(cmd.OutOrStdout())
			p.Result(result)
			if !result.Exit && !result.ShowHelp {
				p.Modules(mgr.FilteredModules())
			}
			return nil
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// CONFIG
// ══════════════════════════════════════════════════════════════════════════════

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default configuration to PATH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
