package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/diagfmt"
	"loom/internal/driver"
)

func newTokenizeCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.bal|directory>",
		Short: "Tokenize a source file or directory",
		Long:  `Tokenize breaks a .bal source file (or every .bal file of a directory) into tokens with their trivia`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runTokenize(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func (st *cliState) runTokenize(cmd *cobra.Command, path string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	info, err := statPath(path)
	if err != nil {
		return err
	}
	timer := newTimer(cmd)
	opts, err := st.driverOptions(cmd, timer)
	if err != nil {
		return err
	}
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if !info.IsDir() {
		result, err := driver.Tokenize(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
		// Выводим диагностику в stderr, если есть
		if result.Bag.Len() > 0 {
			diagfmt.Pretty(errOut, result.Bag, result.FileSet, st.prettyOpts(cmd, errOut))
		}
		if format == "json" {
			err = diagfmt.FormatTokensJSON(out, result.Tokens)
		} else {
			err = diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
		}
		if err != nil {
			return err
		}
		return printTimings(cmd, "tokenize", path, timer)
	}

	fs, results, err := driver.TokenizeDir(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	for idx, r := range results {
		if r.Bag.Len() > 0 {
			diagfmt.Pretty(errOut, r.Bag, fs, st.prettyOpts(cmd, errOut))
		}
		if r.Tokens == nil {
			continue
		}
		if !quiet(cmd) {
			display := fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())
			if _, err := fmt.Fprintf(out, "== %s ==\n", display); err != nil {
				return err
			}
		}
		if format == "json" {
			err = diagfmt.FormatTokensJSON(out, r.Tokens)
		} else {
			err = diagfmt.FormatTokensPretty(out, r.Tokens, fs)
		}
		if err != nil {
			return err
		}
		if !quiet(cmd) && idx < len(results)-1 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
	}
	return printTimings(cmd, "tokenize", path, timer)
}
