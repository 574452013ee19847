package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/remote"
	"github.com/idilsaglam/grocery/internal/ui"
)

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Move one item to the other section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.StringID(strings.TrimSpace(args[0]))
			if err := app.client.Toggle(cmd.Context(), id); err != nil {
				if remote.Is(err, remote.ErrCodeHTTPStatus) {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.C(ui.Current().Muted, "Hint: run `grocery ls` to see valid ids"))
				}
				return fmt.Errorf("toggle: %w", err)
			}

			items, err := app.client.Items(cmd.Context())
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			ui.OK(cmd.OutOrStdout(), toggledMessage(items, id))
			ui.Panel(cmd.OutOrStdout(), listLines(items))
			return nil
		},
	}
}

// toggledMessage names the section the item landed in, when it is still listed.
func toggledMessage(items []model.Item, id model.ID) string {
	for _, it := range items {
		if it.ID.String() != id.String() {
			continue
		}
		if it.InStock {
			return fmt.Sprintf("%s moved to To Buy", it.Name)
		}
		return fmt.Sprintf("%s moved to In stock", it.Name)
	}
	return "toggled"
}
