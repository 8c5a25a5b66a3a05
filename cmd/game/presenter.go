package main

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwebster45206/room-engine/pkg/state"
)

type displayMsg struct{ lines []string }
type imageMsg struct{ ref string }
type promptMsg struct{}
type ackMsg struct{}
type stateChangedMsg struct{ gs state.GameState }
type engineDoneMsg struct{}

// teaPresenter bridges the engine's blocking Presenter calls onto the
// bubbletea event loop. The engine runs in its own goroutine; each prompt
// parks it on a channel until the UI delivers a line. release unblocks the
// engine for good when the UI goes away.
type teaPresenter struct {
	program *tea.Program
	inputCh chan string
	ackCh   chan struct{}
	once    sync.Once
}

func newTeaPresenter() *teaPresenter {
	return &teaPresenter{
		inputCh: make(chan string),
		ackCh:   make(chan struct{}),
	}
}

func (p *teaPresenter) DisplayText(lines ...string) {
	p.program.Send(displayMsg{lines: append([]string(nil), lines...)})
}

func (p *teaPresenter) DisplayImage(ref string) {
	p.program.Send(imageMsg{ref: ref})
}

func (p *teaPresenter) PromptLine() (string, error) {
	p.program.Send(promptMsg{})
	line, ok := <-p.inputCh
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

func (p *teaPresenter) WaitForAcknowledge() error {
	p.program.Send(ackMsg{})
	if _, ok := <-p.ackCh; !ok {
		return io.EOF
	}
	return nil
}

// StateChanged implements game.StateNotifier for the metadata panel.
func (p *teaPresenter) StateChanged(gs state.GameState) {
	p.program.Send(stateChangedMsg{gs: gs})
}

// release closes the prompt channels so a parked engine sees EOF and winds
// down. Safe to call more than once.
func (p *teaPresenter) release() {
	p.once.Do(func() {
		close(p.inputCh)
		close(p.ackCh)
	})
}
