package main

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"loom/internal/driver"
	"loom/internal/source"
	"loom/internal/ui"
)

type parseDirOutcome struct {
	fs      *source.FileSet
	results []driver.ParseDirResult
	err     error
}

// runParseDirWithUI runs driver.ParseDir while a Bubble Tea program renders
// per-file progress on w.
func runParseDirWithUI(ctx context.Context, title, dir string, opts driver.Options, w io.Writer) (*source.FileSet, []driver.ParseDirResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan parseDirOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.ParseDir(ctx, dir, optsCopy)
		outcomeCh <- parseDirOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(w), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI мог закрыться раньше воркеров: дочитываем события, чтобы они не встали
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
