package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rus-lang/rus/rus"
)

func newParseCmd(cfgPath *string) *cobra.Command {
	var checkOnly bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a source file and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *cfgPath)
			if err != nil {
				return err
			}
			return runParse(cmd, args[0], cfg, checkOnly)
		},
	}
	cmd.Flags().BoolVar(&checkOnly, "check", false, "report diagnostics without printing the tree")
	return cmd
}

func runParse(cmd *cobra.Command, path string, cfg config, checkOnly bool) error {
	tokens, stmts, err := checkFile(cmd.ErrOrStderr(), path, cfg)
	if err != nil {
		return err
	}
	if checkOnly {
		return nil
	}
	if cfg.Output.Format == formatTokens {
		printTokens(cmd.OutOrStdout(), tokens, cfg.Output.Color)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rus.Dump(stmts))
	return nil
}

// checkFile lexes and parses one file (or stdin, as "-"), printing
// every diagnostic to w. It returns the tokens and statements on
// success and a summary error otherwise.
func checkFile(w io.Writer, path string, cfg config) ([]rus.Token, []rus.Stmt, error) {
	label, source, err := readSource(path)
	if err != nil {
		return nil, nil, err
	}
	color := cfg.Output.Color

	tokens, errs := rus.Scan(label, strings.NewReader(source))
	if len(errs) > 0 {
		reportLexicalErrors(w, source, errs, color)
		return nil, nil, fmt.Errorf("%d lexical error(s) in %s", len(errs), path)
	}

	stmts, err := rus.NewParser(tokens).Parse()
	if err != nil {
		if perr, ok := err.(*rus.ParseError); ok {
			reportParseError(w, source, perr, color)
			return nil, nil, fmt.Errorf("parse failed for %s", path)
		}
		return nil, nil, err
	}
	return tokens, stmts, nil
}
