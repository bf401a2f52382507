package main

import (
	"fmt"
	"strings"

	"github.com/crillab/gopherlogic/grammar"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <formula>...",
		Short: "Validate a formula and show how it is split into groups",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := grammar.Validate(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("invalid formula: %w", err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "formula: %s\n", f.Source)
			fmt.Fprintf(w, "flat:    %s\n", f.Flat)
			fmt.Fprintf(w, "atoms:   %s\n", strings.Join(strings.Split(string(f.Atoms), ""), " "))
			if len(f.Groups) > 0 {
				fmt.Fprintln(w, "groups:")
				for key, group := range f.Groups {
					fmt.Fprintf(w, "  %d: %s = %s\n", key, group, f.Expand(key))
				}
			}
			return nil
		},
	}
}
