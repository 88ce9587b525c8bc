package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiam/minilisp"
	"github.com/xiam/minilisp/ast"
	"github.com/xiam/minilisp/parser"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var (
		trace     bool
		printTree bool
	)

	cmd := &cobra.Command{
		Use:   "minilisp PROGRAM",
		Short: "Evaluate a lisp program",
		Long: `Evaluate the lisp program given as the only argument and print the
value of its last top-level form.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if trace {
				minilisp.SetLogOutput(cmd.ErrOrStderr())
			}

			if printTree {
				program, err := parser.ParseSource([]byte(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ast.Pretty(program))
				return nil
			}

			value, err := minilisp.Run(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&trace, "trace", "t", false,
		"Log every evaluated expression to stderr")
	cmd.Flags().BoolVar(&printTree, "ast", false,
		"Print the parsed program as dotted pairs instead of evaluating it")

	return cmd
}
