package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/gradviz/internal/dataset"
)

func datasetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "dataset <linear|blobs|xor|spiral>",
		Short:     "Print a normalized dataset as x y label lines",
		Long:      "Generate one of the demo datasets with its default recipe and print it. Regression points carry label -1.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"linear", "blobs", "logistic", "xor", "spiral"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shape, err := dataset.ParseShape(args[0])
			if err != nil {
				return err
			}

			gen := dataset.NewGeneratorFrom(nil)
			if a.cfg.Run.Seed != 0 {
				gen = dataset.NewGenerator(a.cfg.Run.Seed)
			}
			points := gen.Generate(shape, dataset.DefaultRecipe(shape))
			a.log.Debugw("generated dataset", "shape", shape.String(), "points", len(points))

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, p := range points {
				fmt.Fprintf(w, "%.6f %.6f %d\n", p.X, p.Y, p.Label)
			}
			return w.Flush()
		},
	}
	a.attachFlags(cmd, "seed")
	return cmd
}
