package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/inovacc/gpm/internal/application"
	"github.com/inovacc/gpm/internal/store"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one run.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	reset      bool
	verbose    bool

	logger  *slog.Logger
	store   *store.Store
	colors  palette
	changed bool // store must be written when the command succeeds
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.DiscardHandler),
	}
}

// setup configures logging and loads the configuration file.
func (a *app) setup(_ *cobra.Command, _ []string) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.colors = newPalette(a.stdout)

	path, err := a.resolveConfigPath()
	if err != nil {
		return err
	}

	a.configPath = path
	a.store = store.Load(path, a.logger)

	if a.reset {
		a.printf("%s\n", a.colors.warn("[WARNING] Resetting the configuration file "+path))
		a.store.Reset()
		a.changed = true
	}

	return nil
}

func (a *app) resolveConfigPath() (string, error) {
	if a.configPath == "" {
		return application.GetConfigPath()
	}

	path, err := filepath.Abs(a.configPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve configuration path: %w", err)
	}

	return path, nil
}

// finish writes the configuration once, if the run changed it.
func (a *app) finish(_ *cobra.Command, _ []string) error {
	if !a.changed {
		return nil
	}

	if err := a.store.Save(a.configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	a.logger.Debug("configuration saved", "path", a.configPath)

	return nil
}

func (a *app) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.stdout, format, args...)
}

// warnf prints a recoverable per-key failure and keeps going.
func (a *app) warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(a.stdout, a.colors.fail("[ERROR] "+fmt.Sprintf(format, args...)))
}
