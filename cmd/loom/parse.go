package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"loom/internal/diagfmt"
	"loom/internal/driver"
	"loom/internal/source"
	"loom/internal/syntax"
)

func newParseCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.bal|directory>",
		Short: "Parse a source file or directory and print its syntax tree",
		Long:  `Parse builds the lossless syntax tree of a .bal file, or of every .bal file in a directory, and prints it`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runParse(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "tree", "output format (tree|json|source)")
	cmd.Flags().Bool("minutiae", false, "include whitespace, comments and skipped tokens")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().String("ui", "off", "show progress UI for directories (auto|on|off)")
	return cmd
}

func (st *cliState) runParse(cmd *cobra.Command, path string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "json", "source":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	minutiae, err := cmd.Flags().GetBool("minutiae")
	if err != nil {
		return fmt.Errorf("failed to get minutiae flag: %w", err)
	}
	treeOpts := diagfmt.TreeOpts{PathMode: diagfmt.PathModeRelative, Minutiae: minutiae}

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
		result, err := driver.Parse(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		if result.Bag.Len() > 0 {
			diagfmt.Pretty(errOut, result.Bag, result.FileSet, st.prettyOpts(cmd, errOut))
		}
		if format == "json" {
			err = diagfmt.FormatTreeJSON(out, result.Tree, result.FileSet, treeOpts)
		} else {
			err = writeTree(out, format, result.Tree, result.FileSet, treeOpts)
		}
		if err != nil {
			return err
		}
		return printTimings(cmd, "parse", path, timer)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	var (
		fs      *source.FileSet
		results []driver.ParseDirResult
	)
	if shouldUseTUI(mode, errOut) {
		fs, results, err = runParseDirWithUI(cmd.Context(), "parse "+path, path, opts, errOut)
	} else {
		fs, results, err = driver.ParseDir(cmd.Context(), path, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	for _, r := range results {
		if r.Bag.Len() > 0 {
			diagfmt.Pretty(errOut, r.Bag, fs, st.prettyOpts(cmd, errOut))
		}
	}

	switch format {
	case "json":
		output := make(map[string]*diagfmt.TreeOutput, len(results))
		for _, r := range results {
			if r.Result == nil {
				output[r.Path] = nil
				continue
			}
			tree := diagfmt.BuildTreeOutput(r.Result.Tree, fs, treeOpts)
			output[tree.File] = &tree
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return err
		}
	default:
		for idx, r := range results {
			if r.Result == nil {
				continue
			}
			// исходник печатаем без заголовков, иначе вывод не склеить обратно
			if format == "tree" && !quiet(cmd) && idx > 0 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
			if err := writeTree(out, format, r.Result.Tree, fs, treeOpts); err != nil {
				return err
			}
		}
	}
	return printTimings(cmd, "parse", path, timer)
}

func writeTree(w io.Writer, format string, tree *syntax.Tree, fs *source.FileSet, opts diagfmt.TreeOpts) error {
	if format == "source" {
		_, err := io.WriteString(w, tree.ToSourceCode())
		return err
	}
	return diagfmt.FormatTreePretty(w, tree, fs, opts)
}
