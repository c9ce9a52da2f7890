package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "rus",
		Short: "Tooling for the Rus language front end",
		Long: `rus lexes and parses Rus source files.

The lex and parse commands print the token stream and the syntax tree of
a file. repl opens an interactive inspector, and watch re-checks files
whenever they change on disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "rus.toml", "path to the configuration file")
	root.PersistentFlags().Bool("color", true, "colorize output (overrides the config file)")
	root.PersistentFlags().String("format", formatAST, "output format for parse and repl, ast or tokens (overrides the config file)")

	root.AddCommand(
		newLexCmd(&cfgPath),
		newParseCmd(&cfgPath),
		newReplCmd(&cfgPath),
		newWatchCmd(&cfgPath),
	)
	return root
}
