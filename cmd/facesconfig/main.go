package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacoelho/facesconfig"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// exitError ends the command with code after its output is written.
type exitError struct {
	code int
}

func (e exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	// stderr does not support fsync on every platform.
	_ = a.log.Sync()
	if err == nil {
		return 0
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
		return 1
	}
	return 1
}

// app carries the configuration shared by every subcommand.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	cfg        config
	log        *zap.Logger
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "facesconfig",
		Short: "Inspect and edit JSF faces-config descriptors",
		Long: `Inspect and edit JSF faces-config descriptors.

Documents from 1.0 through 4.0 are read without losing comments, whitespace
or unknown content. Settings come from flags, FACESCONFIG_* environment
variables and an optional facesconfig.yaml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./facesconfig.yaml when present)")
	root.PersistentFlags().String(keyLogLevel, defaultLogLevel, "log level: debug, info, warn or error")

	root.AddCommand(
		newVersionCommand(a),
		newTreeCommand(a),
		newCheckCommand(a),
		newNormalizeCommand(a),
		newNewCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configPath, cmd.Flags().Lookup(keyLogLevel))
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel, a.stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug("configuration loaded",
		zap.String("config", cfg.source),
		zap.Int("undo-limit", cfg.UndoLimit),
		zap.Bool("permissive", cfg.Permissive))
	return nil
}

func (a *app) options() facesconfig.LoadOptions {
	return facesconfig.NewLoadOptions().
		WithLogger(a.log).
		WithUndoLimit(a.cfg.UndoLimit).
		WithPermissive(a.cfg.Permissive)
}

func (a *app) load(path string) (*facesconfig.Model, error) {
	return facesconfig.LoadFileWithOptions(path, a.options())
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
