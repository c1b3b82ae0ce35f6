package observ

import (
	"strings"
	"sync"
	"time"
)

// PhaseID is returned by Begin and closes the phase in End. NoPhase comes
// from a nil timer.
type PhaseID int

const NoPhase PhaseID = -1

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

// Timer records named phases of a run ("lex a.bal", "parse a.bal").
// Safe for concurrent use: directory runs time every file from its own
// worker. A nil *Timer records nothing.
type Timer struct {
	mu     sync.Mutex
	phases []phase
}

func NewTimer() *Timer { return &Timer{} }

func (t *Timer) Begin(name string) PhaseID {
	if t == nil {
		return NoPhase
	}
	t.mu.Lock()
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	id := PhaseID(len(t.phases) - 1)
	t.mu.Unlock()
	return id
}

// End закрывает фазу; чужие и повторные id молча игнорируются.
func (t *Timer) End(id PhaseID, note string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if id < 0 || int(id) >= len(t.phases) || t.phases[id].dur != 0 {
		return
	}
	p := &t.phases[id]
	p.dur = max(time.Since(p.start), time.Nanosecond)
	p.note = note
}

// PhaseReport is one phase as printed by --timings.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// StageReport sums the phases sharing a first word, e.g. every "parse ..."
// of a directory run.
type StageReport struct {
	Stage      string  `json:"stage"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
}

// Report is a snapshot of the timer. TotalMS sums phase durations, so
// overlapping phases of a parallel run add up to CPU time, not wall time.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
	Stages  []StageReport `json:"stages,omitempty"`
}

func (t *Timer) Report() Report {
	var r Report
	if t == nil {
		return r
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var total time.Duration
	stageAt := make(map[string]int)
	for _, p := range t.phases {
		total += p.dur
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: millis(p.dur), Note: p.note})

		stage, _, _ := strings.Cut(p.name, " ")
		i, ok := stageAt[stage]
		if !ok {
			i = len(r.Stages)
			stageAt[stage] = i
			r.Stages = append(r.Stages, StageReport{Stage: stage})
		}
		r.Stages[i].Count++
		r.Stages[i].DurationMS += millis(p.dur)
	}
	r.TotalMS = millis(total)
	return r
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
