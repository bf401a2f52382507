package main

import (
	"fmt"
	"strings"

	"github.com/crillab/gopherlogic/display"
	"github.com/crillab/gopherlogic/truth"
	"github.com/spf13/cobra"
)

func newTableCmd(a *app) *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "table <formula>...",
		Short: "Print the truth table of a formula and classify it",
		Long:  "Print the truth table of a formula and classify it.\nArguments are joined, so the formula may be written with spaces.\n\n" + rules,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			out, err := flags.resolve(cmd, a.cfg, w)
			if err != nil {
				return err
			}
			table, err := truth.Analyze(strings.Join(args, " "), truth.WithMaxAtoms(out.maxAtoms))
			if err != nil {
				return fmt.Errorf("invalid formula: %w", err)
			}
			return display.Write(w, table, out.format, out.text)
		},
	}

	flags.bind(cmd)

	return cmd
}
