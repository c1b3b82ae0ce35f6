package driver

import (
	"encoding/json"
	"fmt"
	"io"

	"loom/internal/observ"
)

// TimingPayload is what --timings prints for one command.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
	Stages  []observ.StageReport `json:"stages,omitempty"`
}

// NewTimingPayload snapshots timer.
func NewTimingPayload(kind, path string, timer *observ.Timer) TimingPayload {
	report := timer.Report()
	if kind == "" {
		kind = "pipeline"
	}
	return TimingPayload{
		Kind:    kind,
		Path:    path,
		TotalMS: report.TotalMS,
		Phases:  report.Phases,
		Stages:  report.Stages,
	}
}

// WriteTimings prints the payload as text or as a single JSON object.
func WriteTimings(w io.Writer, payload TimingPayload, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	header := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		header += " - " + payload.Path
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, p := range payload.Phases {
		line := fmt.Sprintf("  %-32s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			line += "  // " + p.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	// итоги по стадиям имеют смысл только для каталога
	if len(payload.Stages) == len(payload.Phases) {
		return nil
	}
	for _, st := range payload.Stages {
		if _, err := fmt.Fprintf(w, "  %-32s %8.2f ms  // %d files\n", "= "+st.Stage, st.DurationMS, st.Count); err != nil {
			return err
		}
	}
	return nil
}
