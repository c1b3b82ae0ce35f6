package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"loom/internal/trace"
)

// setupTracing reads the trace flags (falling back to [trace] of loom.toml)
// and attaches a tracer to the command context.
func (st *cliState) setupTracing(cmd *cobra.Command) error {
	cfg := st.cfg().Trace

	traceOutput, err := stringSetting(cmd, "trace", cfg.Output)
	if err != nil {
		return err
	}
	levelStr, err := stringSetting(cmd, "trace-level", cfg.Level)
	if err != nil {
		return err
	}
	modeStr, err := stringSetting(cmd, "trace-mode", cfg.Mode)
	if err != nil {
		return err
	}
	formatStr, err := stringSetting(cmd, "trace-format", cfg.Format)
	if err != nil {
		return err
	}
	ringSize, err := cmd.Flags().GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}
	heartbeatInterval, err := cmd.Flags().GetDuration("trace-heartbeat")
	if err != nil {
		return fmt.Errorf("failed to get trace-heartbeat flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	// --trace без уровня включает фазы
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return nil
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return err
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}
	st.tracer = tracer

	ctx := trace.WithTracer(cmd.Context(), tracer)
	cmd.SetContext(ctx)
	cmd.Root().SetContext(ctx)

	if heartbeatInterval > 0 {
		st.heartbeat = trace.StartHeartbeat(tracer, heartbeatInterval)
	}
	return nil
}
