package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [FILE|-]",
		Short: "Print the furthest loop distance and the enclosed tile count",
		Long: `Reads a grid from FILE, or stdin when FILE is omitted or "-", and prints two lines:
the number of steps to the loop point furthest from the anchor, then the number of
tiles enclosed by the loop.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			res, err := analyze(a, text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Result().FurthestDistance)
			fmt.Fprintln(out, res.Result().EnclosedCount)
			return nil
		},
	}
}

func analyze(a *app, text string) (*pipeloop.Analysis, error) {
	res, err := pipeloop.Analyze(text, pipeloop.WithLogger(a.log))
	if err != nil {
		a.log.Debug("analysis failed", "error", err)
		return nil, err
	}
	return res, nil
}
