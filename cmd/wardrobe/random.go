package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"
)

func newRandomCmd(a *app) *cobra.Command {
	var (
		inventory  string
		seed       uint64
		clothes    bool
		categories []string
		save       string
		flags      renderFlags
	)

	cmd := &cobra.Command{
		Use:   "random <character>",
		Short: "Render a random outfit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0], inventory)
			if err != nil {
				return err
			}

			var rng *rand.Rand
			if cmd.Flags().Changed("seed") {
				rng = rand.New(rand.NewPCG(seed, seed))
			}

			switch {
			case len(categories) > 0:
				err = doc.RandomizeSubset(categories, rng)
			case clothes:
				err = doc.RandomizeClothes(rng)
			default:
				err = doc.Randomize(rng)
			}
			if err != nil {
				return err
			}

			ids := make([]string, 0, len(doc.Active()))
			for _, art := range doc.Active() {
				ids = append(ids, art.Category+"="+art.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "outfit: %s\n", strings.Join(ids, " "))

			if save != "" {
				if err := doc.SaveProject(save); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "saved %s\n", save)
			}
			return flags.write(cmd, doc)
		},
	}

	cmd.Flags().StringVarP(&inventory, "inventory", "i", "", "Inventory file (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for a reproducible outfit")
	cmd.Flags().BoolVar(&clothes, "clothes", false, "Randomize everything except body, hair, face and head")
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "Randomize only these categories")
	cmd.Flags().StringVar(&save, "save", "", "Also save the outfit as a project file")
	flags.register(cmd)
	return cmd
}
