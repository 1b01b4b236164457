package main

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pipeloop/render"
)

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [FILE|-]",
		Short: "Draw the loop and its enclosed tiles",
		Long: `Reads a grid like solve does and draws it with every pipe that is not part of the
loop removed. Enclosed tiles are marked I (ascii) or • (box). Flags override the
render section of the configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd, args)
		},
	}

	cmd.Flags().StringP("out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().String("charset", "ascii", "Glyph set: ascii or box")
	cmd.Flags().Bool("color", false, "Color the output when the destination supports it")
	return cmd
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	opts := a.cfg.Render
	flags := cmd.Flags()
	if flags.Changed("out") {
		opts.Output, _ = flags.GetString("out")
	}
	if flags.Changed("charset") {
		opts.Charset, _ = flags.GetString("charset")
	}
	if flags.Changed("color") {
		opts.Color, _ = flags.GetBool("color")
	}

	charset, err := render.ParseCharset(opts.Charset)
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	res, err := analyze(a, text)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	var file *os.File
	if opts.Output != "" {
		file, err = os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		w = file
	}

	profile := termenv.Ascii
	if opts.Color {
		profile = termenv.NewOutput(w).Profile
	}
	a.log.Debug("rendering", "charset", charset.String(), "color", opts.Color, "output", opts.Output)

	if err := render.Render(w, res.Cleaned, res.Enclosed,
		render.WithCharset(charset),
		render.WithProfile(profile),
	); err != nil {
		return err
	}
	if file != nil {
		return file.Close()
	}
	return nil
}
