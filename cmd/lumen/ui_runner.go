package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"lumen/internal/driver"
	"lumen/internal/ui"
)

type namesOutcome struct {
	result *driver.Result
	err    error
}

// runNamesWithUI runs driver.Names in the background and renders its
// progress events until the run finishes.
func runNamesWithUI(ctx context.Context, title string, args []string, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan namesOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Names(ctx, args, opts)
		outcomeCh <- namesOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// The model stops reading on ctrl-c; keep the producer unblocked.
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
