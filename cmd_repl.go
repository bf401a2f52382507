package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/crillab/gopherlogic/display"
	"github.com/crillab/gopherlogic/truth"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	var flags outputFlags

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read formulas interactively, one per line",
		Long:  "Read formulas interactively, one per line, until end of input or \"quit\".",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			out, err := flags.resolve(cmd, a.cfg, w)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, rules)
			sc := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprintln(w, "\nType a complex proposition:")
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if strings.EqualFold(line, "quit") || strings.EqualFold(line, "exit") {
					return nil
				}
				table, err := truth.Analyze(line, truth.WithMaxAtoms(out.maxAtoms))
				if err != nil {
					fmt.Fprintf(w, "%v\nType valid input (see rules above)!\nTry again:\n", err)
					continue
				}
				if err := display.Write(w, table, out.format, out.text); err != nil {
					return err
				}
				fmt.Fprintln(w, "\nType a complex proposition:")
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("could not read input: %w", err)
			}
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}
