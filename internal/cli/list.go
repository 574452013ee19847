package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/grocery/internal/model"
	"github.com/idilsaglam/grocery/internal/ui"
)

// sections is the machine-readable shape of `ls`.
type sections struct {
	ToBuy   []model.Item `json:"to_buy" yaml:"to_buy"`
	InStock []model.Item `json:"in_stock" yaml:"in_stock"`
}

func newListCmd(app *App) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "Print both sections of the shared list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.client.Items(cmd.Context())
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			return writeItems(cmd.OutOrStdout(), items, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format: text, json or yaml")
	return cmd
}

func writeItems(w io.Writer, items []model.Item, format string) error {
	toBuy, inStock := model.Partition(items)
	s := sections{ToBuy: nonNil(toBuy), InStock: nonNil(inStock)}

	switch format {
	case "", "text":
		ui.Panel(w, listLines(items))
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

func nonNil(items []model.Item) []model.Item {
	if items == nil {
		return []model.Item{}
	}
	return items
}

// listLines renders the header, a ratio bar and both sections.
func listLines(items []model.Item) []string {
	th := ui.Current()
	b, s := model.Stats(items)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(th.Title, "Groceries"),
		ui.C(th.Pending, th.ArrowRight), b,
		ui.C(th.Success, th.ArrowLeft), s,
		ui.C(th.Accent, "Total"), len(items),
	)

	toBuy, inStock := model.Partition(items)
	lines := []string{
		header,
		ui.C(th.Muted, ui.Ratio(b, b+s, 28)),
		"",
		ui.C(th.Accent, "To Buy"),
	}
	lines = append(lines, sectionLines(toBuy, th.ArrowRight)...)
	lines = append(lines, "", ui.C(th.Accent, "In stock"))
	lines = append(lines, sectionLines(inStock, th.ArrowLeft)...)
	lines = append(lines, "", ui.C(th.Muted, "Tip: move an item with `grocery toggle <id>`"))
	return lines
}

func sectionLines(items []model.Item, arrow string) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "No items here.")}
	}
	limit := ui.Width(40, 80) - 20
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, fmt.Sprintf("%s %s  %s  %s",
			ui.C(ui.Dim, fmt.Sprintf("%2d.", i+1)),
			ui.Truncate(it.Name, limit),
			arrow,
			ui.C(ui.Current().Muted, "#"+it.ID.String()),
		))
	}
	return out
}
