package cmd

import (
	"io"

	"github.com/inovacc/gpm/internal/application"
	"github.com/spf13/cobra"
)

// Run builds the command tree, executes it with args[1:] and returns the
// process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp(stdout, stderr)

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return 1
	}

	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   application.AppName,
		Short: "Your Git Project Monitor",
		Long: `gpm keeps track of the git repositories on your disk.

Repositories found by a scan are recorded as watched or ignored in a TOML
file (~/.gpm by default). Watched repositories can then be inspected with
the status command.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.reset {
				return nil
			}

			return cmd.Help()
		},
		PersistentPostRunE: a.finish,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.reset, "reset", "r", false, "Reset the configuration file")
	flags.StringVar(&a.configPath, "config", "", "Configuration file (default ~/.gpm, or $"+application.ConfigEnvVar+")")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newScanCmd(a),
		newOverrideCmd(a),
		newStatusCmd(a),
		newListCmd(a),
		newWatchCmd(a),
		newIgnoreCmd(a),
		newForgetCmd(a),
		newGroupCmd(a),
	)

	return rootCmd
}
