package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	var inventory string

	cmd := &cobra.Command{
		Use:   "inspect <character>",
		Short: "List a character's categories and articles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.lib.Catalog(args[0], inventory)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s): %d articles, %d categories\n",
				cat.Name, cat.InventoryFile, cat.Len(), len(cat.Categories()))

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, name := range cat.Categories() {
				list := cat.ArticlesByCategory(name)
				fmt.Fprintf(tw, "\n[%s]\t%d\n", name, len(list))
				for _, art := range list {
					fmt.Fprintf(tw, "  %s\t%s\t%s\t%d,%d\n", art.ID, art.Image, art.Layer, art.X, art.Y)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory file (default from config)")
	return cmd
}
