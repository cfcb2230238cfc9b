package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/csheth/spltui/internal/config"
	"github.com/csheth/spltui/internal/session"
	"github.com/csheth/spltui/internal/theme"
	"github.com/csheth/spltui/internal/tui"
)

var errorColor = color.New(color.FgRed, color.Bold)

type options struct {
	configFile  string
	splsv       bool
	spldv       bool
	hasil       bool
	verbose     bool
	theme       string
	logFile     string
	noAltScreen bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		_, _ = errorColor.Fprintf(os.Stderr, "spltui: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(&options{})
}

func newRootCommandWith(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "spltui",
		Short:         "Solve one- and two-variable linear equation systems step by step",
		Version:       tui.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configFile, "config", "", "config file path")
	flags.BoolVar(&opts.splsv, "splsv", false, "start in the one-variable (SPLSV) form")
	flags.BoolVar(&opts.spldv, "spldv", false, "start in the two-variable (SPLDV) form")
	flags.BoolVar(&opts.hasil, "hasil", false, "start on the information screen")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "write a debug session log")
	flags.StringVar(&opts.theme, "theme", "dark", "color theme: dark or light")
	flags.StringVar(&opts.logFile, "log-file", "spltui.log", "session log path used with --verbose")
	flags.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	cmd.MarkFlagsMutuallyExclusive("splsv", "spldv", "hasil")
	return cmd
}

func startFromFlags(opts *options) session.Start {
	switch {
	case opts.splsv:
		return session.StartOneVar
	case opts.spldv:
		return session.StartTwoVar
	case opts.hasil:
		return session.StartInfo
	default:
		return ""
	}
}

// loadConfig returns the merged configuration and the config file it read.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, string, error) {
	loader, err := config.NewLoader(opts.configFile)
	if err != nil {
		return nil, "", err
	}
	bindings := map[string]string{
		"ui.theme":    "theme",
		"log.verbose": "verbose",
		"log.file":    "log-file",
	}
	for key, flag := range bindings {
		if err := loader.BindFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, "", err
		}
	}
	if opts.noAltScreen {
		loader.Override("ui.alt_screen", false)
	}
	if start := startFromFlags(opts); start != "" {
		loader.Override("ui.start", string(start))
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, loader.ConfigFileUsed(), nil
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, configFile, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	palette, err := theme.Lookup(cfg.UI.Theme)
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("starting application",
		"config", configFile,
		"start", cfg.UI.Start,
		"theme", palette.Name,
		"debounce", cfg.Input.Debounce)

	programOpts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Start:    cfg.UI.StartScreen(),
			Palette:  palette,
			Debounce: cfg.Input.Debounce,
			Logger:   logger,
		}),
		programOpts...,
	)

	if _, err := program.Run(); err != nil {
		logger.Error("program error", "error", err)
		return fmt.Errorf("program error: %w", err)
	}
	logger.Debug("exiting application")
	return nil
}

// setupLogger returns a debug logger writing to cfg.File when verbose logging
// is on. The terminal belongs to the TUI, so logs never go to stdout.
func setupLogger(cfg config.LogConfig) (*slog.Logger, func(), error) {
	if !cfg.Verbose {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return logger, func() {}, nil
	}

	file, err := os.Create(cfg.File)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	slog.SetDefault(logger)
	return logger, func() { _ = file.Close() }, nil
}
