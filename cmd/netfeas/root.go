package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/netfeas/internal/logging"
)

// version is set via build-time ldflags
var version = "dev"

// app carries state shared by every subcommand.
type app struct {
	logCfg logging.Config
	log    *zap.Logger
}

// newRootCommand builds the command tree. Each call returns a fresh tree so
// tests can run commands in isolation.
func newRootCommand() *cobra.Command {
	a := &app{logCfg: logging.DefaultConfig(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "netfeas",
		Short: "Resolve unknown road weights and vet restricted friend requests",
		Long: `netfeas works on two kinds of YAML scenario:

  road networks   assign weights to roads under construction so the
                  shortest route between two nodes costs exactly a target
  friend requests approve or deny each request in order so that no
                  restricted pair ever ends up in the same group

Use 'netfeas <command> --help' for the file format of each command.`,
		Version:       version,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			l, err := logging.New(a.logCfg)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	bindLogFlags(root.PersistentFlags(), &a.logCfg)

	root.AddCommand(
		newDistancesCommand(a),
		newResolveCommand(a),
		newRequestsCommand(a),
	)

	return root
}

func bindLogFlags(fs *pflag.FlagSet, cfg *logging.Config) {
	fs.StringVar(&cfg.Level, "log-level", cfg.Level, "Minimum log level (debug, info, warn, error)")
	fs.StringVar(&cfg.Format, "log-format", cfg.Format, "Log encoding (console, json)")
	fs.StringVar(&cfg.Output, "log-output", cfg.Output, "Log destination (stderr, stdout or a file path)")
	fs.BoolVar(&cfg.Development, "log-development", cfg.Development, "Enable development logging")
}
