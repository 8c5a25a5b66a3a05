package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const plainWidth = 78

// plainPresenter is the no-frills presenter: line-oriented stdin/stdout,
// selected with UI=plain. Useful over dumb terminals and when piping a
// session for debugging.
type plainPresenter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPlainPresenter(in io.Reader, out io.Writer) *plainPresenter {
	return &plainPresenter{in: bufio.NewScanner(in), out: out}
}

func (p *plainPresenter) DisplayText(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, wordwrap.String(line, plainWidth))
	}
}

func (p *plainPresenter) DisplayImage(ref string) {
	if ref == "" {
		return
	}
	fmt.Fprintf(p.out, "[Scene: %s]\n\n", ref)
}

func (p *plainPresenter) PromptLine() (string, error) {
	fmt.Fprint(p.out, "> ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *plainPresenter) WaitForAcknowledge() error {
	fmt.Fprintln(p.out, "[Press the Enter key to continue.]")
	for {
		fmt.Fprint(p.out, "> ")
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return err
			}
			return io.EOF
		}
		if strings.TrimSpace(p.in.Text()) == "" {
			return nil
		}
		fmt.Fprintln(p.out, "[Invalid entry, please press the Enter key to continue.]")
	}
}
