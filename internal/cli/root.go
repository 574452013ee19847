package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/grocery/internal/config"
	"github.com/idilsaglam/grocery/internal/logging"
	"github.com/idilsaglam/grocery/internal/remote"
	"github.com/idilsaglam/grocery/internal/tui"
	"github.com/idilsaglam/grocery/internal/ui"
)

// App carries root flags and what PersistentPreRunE builds from them.
type App struct {
	ConfigPath string
	API        string
	Theme      string
	Color      string
	LogFile    string
	Verbose    bool

	cfg      config.Config
	log      *logrus.Logger
	closeLog func() error
	client   *remote.Client
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:           "grocery",
		Short:         "Shared household grocery list and note",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Open the shared list (polls every few seconds, note autosaves)
  grocery

  # Scriptable commands
  grocery ls
  grocery ls --format json
  grocery toggle 2
  grocery note set "get the oat milk, not almond"
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), app.client, tui.Options{
				PollInterval: app.cfg.PollInterval.Std(),
				SaveDebounce: app.cfg.SaveDebounce.Std(),
				ConfirmFor:   app.cfg.ConfirmFor.Std(),
				FlushTimeout: app.cfg.RequestTimeout.Std(),
				Theme:        app.cfg.Theme,
				Log:          app.log.WithField("cmd", "view"),
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "Path to config.toml (default ~/.grocery/config.toml)")
	cmd.PersistentFlags().StringVar(&app.API, "api", "", "Remote store base URL (overrides config and $"+config.EnvAPI+")")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "Output theme: classic, neon or mono")
	cmd.PersistentFlags().StringVar(&app.Color, "color", "auto", "Color one-shot output: auto, always or never")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Write logs here instead of the configured file")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Enable debug logging")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if skipSetup(cmd) {
			return nil
		}
		return app.setup()
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog()
		}
		return nil
	}

	cmd.AddCommand(
		newListCmd(app),
		newToggleCmd(app),
		newNoteCmd(app),
		newConfigCmd(app),
	)
	return cmd
}

// skipSetup is true for commands that must work without a valid config.
func skipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipSetup"] == "true" {
			return true
		}
	}
	return false
}

// setup resolves config (file, env, then flags), the logger and the client.
func (a *App) setup() error {
	if err := ui.SetColorMode(a.Color); err != nil {
		return err
	}
	path, err := config.Path(a.ConfigPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, a.ConfigPath != "")
	if err != nil {
		return err
	}
	if a.API != "" {
		cfg.BaseURL = a.API
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if a.Theme != "" {
		cfg.Theme = a.Theme
	}
	if a.LogFile != "" {
		cfg.LogFile = a.LogFile
	}
	a.cfg = cfg
	ui.SetTheme(cfg.Theme)

	a.log, a.closeLog = logging.New(logging.Options{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		File:    cfg.LogFile,
		Verbose: a.Verbose,
	})

	a.client, err = remote.New(remote.Options{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout.Std(),
		Log:     logrus.NewEntry(a.log),
	})
	if err != nil {
		return fmt.Errorf("remote store: %w", err)
	}
	a.log.WithFields(logrus.Fields{"base_url": a.client.BaseURL(), "config": path}).Debug("ready")
	return nil
}
