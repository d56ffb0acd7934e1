package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"arrowlint/internal/driver"
	"arrowlint/internal/ui"
)

type runOutcome struct {
	report *driver.Report
	err    error
}

// runWithUI runs the driver while a Bubble Tea program renders its
// progress events.
func runWithUI(ctx context.Context, title string, paths []string, mode driver.Mode, opts driver.Options) (*driver.Report, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		report, err := driver.Run(ctx, paths, mode, optsCopy)
		outcomeCh <- runOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// the program may quit early; keep the workers from blocking on send
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
