package driver

import "time"

// Stage describes a step of a file's run.
type Stage string

const (
	StageLex   Stage = "lex"
	StageCache Stage = "cache"
	StageParse Stage = "parse"
	StageCheck Stage = "check"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Directory runs call OnEvent from
// several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func (o Options) progress(file string, stage Stage, status Status, started time.Time) {
	if o.Progress == nil {
		return
	}
	ev := Event{File: file, Stage: stage, Status: status}
	if !started.IsZero() {
		ev.Elapsed = time.Since(started)
	}
	o.Progress.OnEvent(ev)
}
