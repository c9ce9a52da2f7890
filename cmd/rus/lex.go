package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rus-lang/rus/rus"
)

func newLexCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Print the token stream of a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *cfgPath)
			if err != nil {
				return err
			}
			return runLex(cmd, args[0], cfg)
		},
	}
}

func runLex(cmd *cobra.Command, path string, cfg config) error {
	label, source, err := readSource(path)
	if err != nil {
		return err
	}
	color := cfg.Output.Color

	tokens, errs := rus.Scan(label, strings.NewReader(source))
	printTokens(cmd.OutOrStdout(), tokens, color)

	if len(errs) > 0 {
		reportLexicalErrors(cmd.ErrOrStderr(), source, errs, color)
		return fmt.Errorf("%d lexical error(s) in %s", len(errs), path)
	}
	return nil
}
