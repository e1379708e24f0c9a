package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/durpick/internal/config"
	"github.com/akyairhashvil/durpick/internal/duration"
	"github.com/akyairhashvil/durpick/internal/tui"
	"github.com/akyairhashvil/durpick/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// errCancelled ends the process with a non-zero status and no message.
var errCancelled = errors.New("cancelled")

type programRunner func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error)

func runProgram(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

type options struct {
	configPath string
	theme      string
	format     string
	logFile    string
	title      string
}

func main() {
	if err := newRootCmd(runProgram).Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd(run programRunner) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   config.AppName + " [initial]",
		Short: "Pick an hours/minutes/seconds duration in the terminal",
		Long: "Opens an interactive duration picker. The chosen value is printed to\n" +
			"stdout on save; cancelling exits with status 1.\n\n" +
			"initial is H:MM:SS, MM:SS or a Go duration such as 1h30m.",
		Args:          cobra.MaximumNArgs(1),
		Version:       tui.VersionLabel(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = initialValue(args[0])
			}
			return runPicker(cmd, initial, opts, run)
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/durpick/config.yaml)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "color theme")
	cmd.Flags().StringVar(&opts.format, "format", "", "output format: clock, seconds or go")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	cmd.Flags().StringVar(&opts.title, "title", "", "prompt shown above the picker")
	return cmd
}

func runPicker(cmd *cobra.Command, initial string, opts options, run programRunner) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}
	theme, err := tui.ThemeByName(settings.Theme)
	if err != nil {
		return err
	}

	util.EnableDebug(os.Getenv(config.DebugEnv) != "")
	logs, err := util.SetupLogging(logPath(opts.logFile))
	if err != nil {
		return err
	}
	defer func() { util.LogError("close log", logs.Close()) }()

	var saved *string
	editor := tui.NewEditor(tui.EditorOptions{
		Initial:  initial,
		Title:    opts.title,
		Theme:    theme,
		Settings: settings,
		Sink: tui.SinkFuncs{
			OnSave: func(value string) { saved = &value },
		},
	})

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	// Keep stdout clean for the result when it is captured.
	if !isTerminal(cmd.OutOrStdout()) {
		progOpts = append(progOpts, tea.WithOutput(os.Stderr))
	}
	if _, err := run(tui.NewMainModel(editor), progOpts...); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	if saved == nil {
		return errCancelled
	}
	fmt.Fprintln(cmd.OutOrStdout(), duration.Render(duration.Parse(*saved), settings.Format))
	return nil
}

// resolveSettings loads the settings file and applies flag overrides.
func resolveSettings(cmd *cobra.Command, opts options) (config.Settings, error) {
	var (
		settings config.Settings
		err      error
	)
	if opts.configPath != "" {
		settings, err = config.LoadSettingsFrom(opts.configPath)
	} else {
		settings, err = config.LoadSettings()
	}
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if cmd.Flags().Changed("theme") {
		settings.Theme = opts.theme
	}
	if cmd.Flags().Changed("format") {
		settings.Format = opts.format
	}
	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}

// initialValue accepts Go duration syntax alongside the clock form.
func initialValue(arg string) string {
	if d, err := time.ParseDuration(arg); err == nil {
		return duration.Format(duration.FromTotal(d))
	}
	return arg
}

func logPath(flag string) string {
	if flag != "" || !util.DebugEnabled() {
		return flag
	}
	dir := util.StateDir(config.AppName)
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, config.AppName+".log")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
