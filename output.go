package main

import (
	"fmt"
	"io"
	"os"

	"github.com/crillab/gopherlogic/config"
	"github.com/crillab/gopherlogic/display"
	"github.com/crillab/gopherlogic/truth"
	"github.com/spf13/cobra"
)

// outputFlags are the flags overriding the output settings of the configuration.
type outputFlags struct {
	format   string
	glyphs   string
	color    string
	maxAtoms int
}

func (o *outputFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "text", "output format (text, json, yaml)")
	cmd.Flags().StringVar(&o.glyphs, "glyphs", "unicode", "operators in the table header (unicode, ascii)")
	cmd.Flags().StringVar(&o.color, "color", "auto", "color true and false cells (auto, always, never)")
	cmd.Flags().IntVar(&o.maxAtoms, "max-atoms", truth.DefaultMaxAtoms, "maximum number of distinct atoms in a formula")
}

// output is the result of merging outputFlags into a configuration.
type output struct {
	format   display.Format
	text     display.Text
	maxAtoms int
}

func (o *outputFlags) resolve(cmd *cobra.Command, cfg *config.Config, w io.Writer) (*output, error) {
	out := &output{format: cfg.Format, maxAtoms: cfg.MaxAtoms, text: display.Text{Glyphs: cfg.Glyphs}}
	mode := cfg.Color
	flags := cmd.Flags()
	if flags.Changed("format") {
		f, err := display.ParseFormat(o.format)
		if err != nil {
			return nil, err
		}
		out.format = f
	}
	if flags.Changed("glyphs") {
		switch o.glyphs {
		case "unicode":
			out.text.Glyphs = true
		case "ascii":
			out.text.Glyphs = false
		default:
			return nil, fmt.Errorf("invalid glyphs %q (expected unicode or ascii)", o.glyphs)
		}
	}
	if flags.Changed("color") {
		m, err := display.ParseColorMode(o.color)
		if err != nil {
			return nil, err
		}
		mode = m
	}
	if flags.Changed("max-atoms") {
		if o.maxAtoms < 1 || o.maxAtoms > truth.MaxAtoms {
			return nil, fmt.Errorf("invalid max-atoms %d (expected an integer between 1 and %d)", o.maxAtoms, truth.MaxAtoms)
		}
		out.maxAtoms = o.maxAtoms
	}
	if f, ok := w.(*os.File); ok {
		out.text.Color = mode.Enabled(f)
	} else {
		out.text.Color = mode == display.ColorAlways
	}
	return out, nil
}
