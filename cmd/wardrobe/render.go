package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/wardrobe"
	"github.com/gogpu/wardrobe/compositor"
)

// renderFlags are shared by commands that write a composite.
type renderFlags struct {
	output  string
	padding int
	preview bool
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "out.png", "Output PNG path")
	cmd.Flags().IntVarP(&f.padding, "padding", "p", -1, "Transparent margin in pixels (default from config)")
	cmd.Flags().BoolVar(&f.preview, "preview", false, "Upscale the output by the configured zoom")
}

// write renders doc and saves it according to f.
func (f *renderFlags) write(cmd *cobra.Command, doc *wardrobe.Document) error {
	var (
		img *compositor.Image
		err error
	)
	switch {
	case f.preview:
		img, err = doc.Preview()
	case f.padding >= 0:
		img, err = doc.RenderPadded(f.padding)
	default:
		img, err = doc.Render()
	}
	if err != nil {
		return err
	}
	if err := img.SavePNG(f.output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", f.output, img.Width(), img.Height())
	return nil
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		inventory string
		flags     renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render <character> <article-id>...",
		Short: "Render the given articles to a PNG",
		Long: `Render selects each article id in order and writes the composite.
A later id replaces an earlier one on the same layer.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0], inventory)
			if err != nil {
				return err
			}
			if err := selectIDs(doc, args[1:]); err != nil {
				return err
			}
			return flags.write(cmd, doc)
		},
	}

	cmd.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory file (default from config)")
	flags.register(cmd)
	return cmd
}

// selectIDs selects ids in order. Unknown ids fail immediately; undecodable
// images are collected so the rest of the outfit is still applied.
func selectIDs(doc *wardrobe.Document, ids []string) error {
	var errs []error
	for _, id := range ids {
		err := doc.SelectID(id)
		switch {
		case errors.Is(err, wardrobe.ErrUnknownArticle):
			return err
		case err != nil:
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
