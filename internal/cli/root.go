// Package cli wires the lvlds library packages into cobra commands.
package cli

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlds/internal/config"
)

// app carries state shared by every command of one invocation.
type app struct {
	verbose    bool
	configFile string
	envFile    string
	lookupEnv  func(string) (string, bool)

	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	root := newRootCommand(version, os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(version string, stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, lookupEnv: lookupEnv}

	rootCmd := &cobra.Command{
		Use:               "lvlds",
		Short:             "Graph, heap and union-find drivers: clustering, graph rendering, heap smoke test.",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "path to a dotenv file with LVLDS_* overrides")

	rootCmd.AddCommand(
		newClusterCommand(a),
		newGraphCommand(a),
		newBFSCommand(a),
		newDFSCommand(a),
		newPathCommand(a),
		newHeapCommand(a),
	)

	return rootCmd
}

// setup resolves configuration and logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Sources{
		ConfigFile: a.configFile,
		EnvFile:    a.envFile,
		LookupEnv:  a.lookupEnv,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = log.DebugLevel
	}
	configureLogging(a.stderr, level)
	log.Debugf("config: %+v", cfg)

	return nil
}
