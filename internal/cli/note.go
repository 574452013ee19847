package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/grocery/internal/ui"
)

func newNoteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Print the shared note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := app.client.Note(cmd.Context())
			if err != nil {
				return fmt.Errorf("note: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), n.Text)
			return nil
		},
	}
	cmd.AddCommand(newNoteSetCmd(app))
	return cmd
}

func newNoteSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <text...>",
		Short: "Overwrite the shared note (\"-\" reads stdin)",
		Long: strings.TrimSpace(`
Overwrite the shared note. Words are joined with single spaces.
Pass "-" to read the whole note from stdin, keeping its line breaks.
Pass "" to clear it.`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 1 && args[0] == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = strings.TrimRight(string(b), "\r\n")
			}
			if err := app.client.SaveNote(cmd.Context(), text); err != nil {
				return fmt.Errorf("save: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), "saved")
			return nil
		},
	}
}
