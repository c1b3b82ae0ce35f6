package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/driver"
	"loom/internal/source"
	"loom/internal/testkit"
)

func newVerifyCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [flags] <file.bal|directory>",
		Short: "Check that syntax trees are lossless and well-formed",
		Long: `Verify parses every file and checks the tree invariants: the tree prints
back the exact source, widths add up, positions are contiguous and parent
links are consistent. Syntax errors do not fail verification.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runVerify(cmd, args[0])
		},
	}
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func (st *cliState) runVerify(cmd *cobra.Command, path string) error {
	info, err := statPath(path)
	if err != nil {
		return err
	}
	timer := newTimer(cmd)
	opts, err := st.driverOptions(cmd, timer)
	if err != nil {
		return err
	}

	type checked struct {
		path   string
		result *driver.ParseResult
	}
	var (
		fs    *source.FileSet
		items []checked
	)
	if !info.IsDir() {
		result, err := driver.Parse(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		fs = result.FileSet
		items = append(items, checked{path: path, result: result})
	} else {
		var results []driver.ParseDirResult
		fs, results, err = driver.ParseDir(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		for _, r := range results {
			items = append(items, checked{path: r.Path, result: r.Result})
		}
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, it := range items {
		if it.result == nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: cannot read file\n", it.path)
			continue
		}
		display := it.result.File.FormatPath("auto", fs.BaseDir())
		if err := testkit.CheckTree(it.result.Tree, it.result.File); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", display, err)
			continue
		}
		if !quiet(cmd) {
			fmt.Fprintf(out, "ok   %s\n", display)
		}
	}
	if err := printTimings(cmd, "verify", path, timer); err != nil {
		return err
	}
	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d file(s) failed verification\n", failed, len(items))
		return &exitError{code: 1}
	}
	return nil
}
