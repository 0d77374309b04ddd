package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/wardrobe/catalog"
	"github.com/gogpu/wardrobe/sheet"
)

func newSheetCmd(a *app) *cobra.Command {
	var (
		inventory string
		category  string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "sheet <character>",
		Short: "Write a captioned thumbnail sheet of a character's images",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.lib.Catalog(args[0], inventory)
			if err != nil {
				return err
			}

			var articles []catalog.Article
			if category != "" {
				if !cat.HasCategory(category) {
					return fmt.Errorf("character %q has no category %q", cat.Name, category)
				}
				articles = cat.ArticlesByCategory(category)
			} else {
				articles = cat.Articles()
			}

			img, err := sheet.Render(articles, sheet.Options{
				ThumbSize: a.cfg.Sheet.ThumbSize,
				Columns:   a.cfg.Sheet.Columns,
				Logger:    a.logger,
			})
			if err != nil {
				return err
			}
			if err := img.SavePNG(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d images)\n", output, len(sheet.Entries(articles)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory file (default from config)")
	cmd.Flags().StringVar(&category, "category", "", "Only include this category")
	cmd.Flags().StringVarP(&output, "output", "o", "sheet.png", "Output PNG path")
	return cmd
}
