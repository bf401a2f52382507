package main

import (
	"fmt"
	"os"

	"github.com/crillab/gopherlogic/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const rules = `Rules for valid input:
- use a single letter for a simple proposition
- logical operators are:
  ~ (¬ not)
  & (∧ and)
  | (∨ or)
  + (⊕ exclusive or, xor)
  > (→ implies, if)
  < (≡ equivalent, iff)
- allowed characters: spaces, letters, parentheses (round) and listed operators
- parentheses may be nested in other parentheses, but they must be paired
- binary operators have the same priority and group from the left: use parentheses`

// app holds what every command shares.
type app struct {
	verbose int
	envFile string
	cfg     *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:          "gopherlogic",
		Short:        "Truth tables of propositional formulas",
		Long:         "Displays the truth table of a complex proposition and determines whether it is\na tautology, a contradiction or contingent.\n\n" + rules,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(a.verbose, nil)
			cfg, err := config.Load(a.envFile)
			if err != nil {
				return fmt.Errorf("could not load configuration: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env", "", "dotenv file to load settings from (default $"+config.EnvPath+" or "+config.DefaultEnvFile+")")

	rootCmd.AddCommand(newTableCmd(a))
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newReplCmd(a))

	return rootCmd
}
