package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"loom/internal/config"
	"loom/internal/diagfmt"
	"loom/internal/driver"
	"loom/internal/observ"
	"loom/internal/prof"
	"loom/internal/trace"
)

// cliState is what PersistentPreRunE prepares for the subcommands.
type cliState struct {
	manifest  *config.Manifest
	tracer    trace.Tracer
	heartbeat *trace.Heartbeat
	profile   *prof.Session
	closeOnce sync.Once
}

func (st *cliState) loadConfig(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path != "" {
		st.manifest, err = config.Load(path)
		return err
	}
	st.manifest, _, err = config.Discover(".")
	return err
}

func (st *cliState) cfg() config.Config {
	if st.manifest == nil {
		return config.Default()
	}
	return st.manifest.Config
}

// stringSetting: явно заданный флаг важнее loom.toml.
func stringSetting(cmd *cobra.Command, flag, fromConfig string) (string, error) {
	if cmd.Flags().Lookup(flag) == nil || !cmd.Flags().Changed(flag) {
		return strings.ToLower(strings.TrimSpace(fromConfig)), nil
	}
	v, err := cmd.Flags().GetString(flag)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", flag, err)
	}
	return strings.ToLower(strings.TrimSpace(v)), nil
}

func intSetting(cmd *cobra.Command, flag string, fromConfig int) (int, error) {
	if cmd.Flags().Lookup(flag) == nil || !cmd.Flags().Changed(flag) {
		return fromConfig, nil
	}
	v, err := cmd.Flags().GetInt(flag)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s flag: %w", flag, err)
	}
	return v, nil
}

func boolSetting(cmd *cobra.Command, flag string, fromConfig bool) (bool, error) {
	if cmd.Flags().Lookup(flag) == nil || !cmd.Flags().Changed(flag) {
		return fromConfig, nil
	}
	v, err := cmd.Flags().GetBool(flag)
	if err != nil {
		return false, fmt.Errorf("failed to get %s flag: %w", flag, err)
	}
	return v, nil
}

// colorFor решает, раскрашивать ли вывод в w.
func (st *cliState) colorFor(cmd *cobra.Command, w io.Writer) bool {
	mode, err := stringSetting(cmd, "color", st.cfg().Diagnostics.Color)
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}

// applyColor настраивает fatih/color глобально по stdout.
func (st *cliState) applyColor(cmd *cobra.Command) {
	color.NoColor = !st.colorFor(cmd, cmd.OutOrStdout())
}

func (st *cliState) prettyOpts(cmd *cobra.Command, w io.Writer) diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:   st.colorFor(cmd, w),
		Context: 2,
	}
}

// driverOptions собирает driver.Options из флагов и loom.toml.
func (st *cliState) driverOptions(cmd *cobra.Command, timer *observ.Timer) (driver.Options, error) {
	cfg := st.cfg()
	maxDiagnostics, err := intSetting(cmd, "max-diagnostics", cfg.Diagnostics.Max)
	if err != nil {
		return driver.Options{}, err
	}
	jobs, err := intSetting(cmd, "jobs", cfg.Parse.Jobs)
	if err != nil {
		return driver.Options{}, err
	}
	if jobs < 0 {
		return driver.Options{}, fmt.Errorf("--jobs must not be negative")
	}
	opts := driver.Options{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
		Timer:          timer,
	}

	useCache, err := boolSetting(cmd, "cache", cfg.Parse.Cache)
	if err != nil {
		return driver.Options{}, err
	}
	if useCache {
		tc, err := st.treeCache()
		if err != nil {
			return driver.Options{}, err
		}
		opts.TreeCache = tc
	}
	return opts, nil
}

func (st *cliState) treeCache() (*driver.TreeCache, error) {
	dir := ""
	if st.manifest != nil {
		dir = st.manifest.CacheDir()
	}
	tc, err := driver.OpenTreeCache(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree cache: %w", err)
	}
	return tc, nil
}

// newTimer returns nil unless --timings is set; observ.Timer is nil-safe.
func newTimer(cmd *cobra.Command) *observ.Timer {
	show, _ := cmd.Flags().GetBool("timings")
	asJSON, _ := cmd.Flags().GetBool("timings-json")
	if !show && !asJSON {
		return nil
	}
	return observ.NewTimer()
}

func printTimings(cmd *cobra.Command, kind, path string, timer *observ.Timer) error {
	if timer == nil {
		return nil
	}
	asJSON, _ := cmd.Flags().GetBool("timings-json")
	return driver.WriteTimings(cmd.ErrOrStderr(), driver.NewTimingPayload(kind, path, timer), asJSON)
}

// finish останавливает профилировщики и heartbeat и закрывает трейсер.
// Кольцо выгружается только если команда упала.
func (st *cliState) finish(stderr io.Writer, failed bool) {
	st.closeOnce.Do(func() {
		if err := st.profile.Stop(); err != nil {
			fmt.Fprintf(stderr, "profile: %v\n", err)
		}
		if st.heartbeat != nil {
			st.heartbeat.Stop()
		}
		if st.tracer == nil {
			return
		}
		if ring, ok := trace.Ring(st.tracer); ok && failed {
			if err := ring.Dump(stderr, trace.FormatText); err != nil {
				fmt.Fprintf(stderr, "trace: dump error: %v\n", err)
			}
		}
		if err := st.tracer.Flush(); err != nil {
			fmt.Fprintf(stderr, "trace: flush error: %v\n", err)
		}
		if err := st.tracer.Close(); err != nil {
			fmt.Fprintf(stderr, "trace: close error: %v\n", err)
		}
	})
}

func quiet(cmd *cobra.Command) bool {
	q, _ := cmd.Flags().GetBool("quiet")
	return q
}

func statPath(path string) (os.FileInfo, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}
	return st, nil
}
