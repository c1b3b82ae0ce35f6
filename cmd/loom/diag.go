package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/driver"
	"loom/internal/source"
)

func newDiagCmd(st *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] <file.bal|directory>",
		Short: "Report syntax and check diagnostics",
		Long: `Diag parses a .bal file, or every .bal file in a directory, runs the check
pass over the trees and reports every diagnostic. Exits with status 1 when an
error was found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runDiagnose(cmd, args[0])
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Int("max-args", 0, "report calls with more arguments than this (0 = default limit)")
	cmd.Flags().Bool("no-warnings", false, "ignore warnings in diagnostics")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	cmd.Flags().Bool("fullpath", false, "emit absolute file paths in output (same as --path-mode absolute)")
	cmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	return cmd
}

type diagFlags struct {
	format     string
	noWarnings bool
	withNotes  bool
	pathMode   diagfmt.PathMode
}

func (st *cliState) readDiagFlags(cmd *cobra.Command) (diagFlags, error) {
	var f diagFlags
	var err error
	if f.format, err = stringSetting(cmd, "format", st.cfg().Diagnostics.Format); err != nil {
		return f, err
	}
	switch f.format {
	case "pretty", "json", "short":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.noWarnings, err = cmd.Flags().GetBool("no-warnings"); err != nil {
		return f, fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	if f.withNotes, err = cmd.Flags().GetBool("with-notes"); err != nil {
		return f, fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return f, fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	if fullPath {
		f.pathMode = diagfmt.PathModeAbsolute
		return f, nil
	}
	mode, err := cmd.Flags().GetString("path-mode")
	if err != nil {
		return f, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	f.pathMode, err = diagfmt.ParsePathMode(strings.ToLower(strings.TrimSpace(mode)))
	return f, err
}

func (st *cliState) runDiagnose(cmd *cobra.Command, path string) error {
	flags, err := st.readDiagFlags(cmd)
	if err != nil {
		return err
	}
	maxArgs, err := cmd.Flags().GetInt("max-args")
	if err != nil {
		return fmt.Errorf("failed to get max-args flag: %w", err)
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
	opts.MaxArgs = maxArgs

	var (
		fs   *source.FileSet
		bags []namedBag
	)
	if !info.IsDir() {
		result, err := driver.Diagnose(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
		fs = result.FileSet
		bags = []namedBag{{path: path, bag: result.Bag}}
	} else {
		var results []driver.ParseDirResult
		fs, results, err = driver.DiagnoseDir(cmd.Context(), path, opts)
		if err != nil {
			return fmt.Errorf("diagnosis failed: %w", err)
		}
		for _, r := range results {
			bags = append(bags, namedBag{path: r.Path, bag: r.Bag})
		}
	}

	exit := 0
	for i := range bags {
		if flags.noWarnings {
			bags[i].bag = withoutWarnings(bags[i].bag)
		}
		if bags[i].bag.HasErrors() {
			exit = 1
		}
	}
	if err := st.writeDiagnostics(cmd, flags, fs, bags, info.IsDir()); err != nil {
		return err
	}
	if err := printTimings(cmd, "diag", path, timer); err != nil {
		return err
	}
	if exit != 0 {
		return &exitError{code: exit}
	}
	return nil
}

type namedBag struct {
	path string
	bag  *diag.Bag
}

func (st *cliState) writeDiagnostics(cmd *cobra.Command, flags diagFlags, fs *source.FileSet, bags []namedBag, dir bool) error {
	out := cmd.OutOrStdout()
	if flags.format == "short" {
		for _, nb := range bags {
			if text := diag.FormatShort(nb.bag.Items(), fs, flags.withNotes); text != "" {
				if _, err := fmt.Fprintln(out, text); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if flags.format == "pretty" {
		opts := st.prettyOpts(cmd, out)
		opts.PathMode = flags.pathMode
		opts.ShowNotes = flags.withNotes
		for _, nb := range bags {
			diagfmt.Pretty(out, nb.bag, fs, opts)
		}
		return nil
	}

	jsonOpts := diagfmt.JSONOpts{
		IncludePositions: true,
		PathMode:         flags.pathMode,
		IncludeNotes:     flags.withNotes,
	}
	if !dir {
		return diagfmt.JSON(out, bags[0].bag, fs, jsonOpts)
	}
	output := make(map[string]diagfmt.DiagnosticsOutput, len(bags))
	for _, nb := range bags {
		data, err := diagfmt.BuildDiagnosticsOutput(nb.bag, fs, jsonOpts)
		if err != nil {
			return err
		}
		output[nb.path] = data
	}
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func withoutWarnings(bag *diag.Bag) *diag.Bag {
	out := diag.NewBag(0)
	for _, d := range bag.Items() {
		if d.Severity != diag.SevWarning {
			out.Add(d)
		}
	}
	return out
}
