package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Save and render project files",
	}
	cmd.AddCommand(newProjectSaveCmd(a), newProjectRenderCmd(a))
	return cmd
}

func newProjectSaveCmd(a *app) *cobra.Command {
	var (
		inventory string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "save <character> <article-id>...",
		Short: "Save a selection of articles as a project file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0], inventory)
			if err != nil {
				return err
			}
			if err := selectIDs(doc, args[1:]); err != nil {
				return err
			}
			if err := doc.SaveProject(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d articles)\n", output, len(doc.Active()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory file (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "project.stp", "Output project path")
	return cmd
}

func newProjectRenderCmd(a *app) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render <project-file>",
		Short: "Render a saved project to a PNG",
		Long: `Render restores a project and writes its composite. Articles the
catalog no longer has are skipped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.lib.OpenProject(args[0])
			if doc == nil {
				return err
			}
			// Render what could be restored even when some images failed.
			if werr := flags.write(cmd, doc); werr != nil {
				return werr
			}
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
