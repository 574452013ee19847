package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/grocery/internal/config"
	"github.com/idilsaglam/grocery/internal/ui"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(newConfigInitCmd(app), newConfigShowCmd(app))
	return cmd
}

func newConfigInitCmd(app *App) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the defaults",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipSetup": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path(app.ConfigPath)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat: %w", err)
			}

			cfg := config.Default()
			if app.API != "" {
				cfg.BaseURL = app.API
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// show prints the effective config after file, env and flags are applied.
func newConfigShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := toml.Marshal(app.cfg)
			if err != nil {
				return fmt.Errorf("toml marshal: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
