package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loom/internal/version"
)

// exitError завершает процесс с кодом без сообщения: диагностики уже напечатаны.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	st := &cliState{}
	root := newRootCmd(st)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	st.finish(stderr, err != nil)

	var exit *exitError
	switch {
	case errors.As(err, &exit):
		return exit.code
	case err != nil:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	default:
		return 0
	}
}

func newRootCmd(st *cliState) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Lossless syntax trees for Ballerina-style sources",
		Long: `loom tokenizes and parses .bal sources into full-fidelity syntax trees,
reports diagnostics and rewrites sources through tree transformations`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			if err := st.loadConfig(cmd); err != nil {
				return err
			}
			st.applyColor(cmd)
			if err := st.setupProfiling(cmd); err != nil {
				return err
			}
			return st.setupTracing(cmd)
		},
	}

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "path to loom.toml (default: search upwards from the working directory)")
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Bool("timings-json", false, "print timings as JSON")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics per file (0 = unlimited)")
	pf.Bool("cache", false, "reuse parsed trees from the on-disk tree cache")
	pf.String("trace", "", "trace output file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.String("trace-format", "auto", "trace encoding (auto|text|ndjson); auto picks ndjson for .json/.ndjson outputs")
	pf.Int("trace-ring-size", 4096, "events kept in ring mode")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
	pf.String("cpu-profile", "", "write CPU profile to file")
	pf.String("mem-profile", "", "write heap profile to file")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	rootCmd.AddCommand(
		newTokenizeCmd(st),
		newParseCmd(st),
		newDiagCmd(st),
		newRenameCmd(st),
		newVerifyCmd(st),
		newCacheCmd(st),
		newVersionCmd(),
	)
	return rootCmd
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
