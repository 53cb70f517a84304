package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Status tells a normal line apart from the two ways a prompt can end early.
type Status int

const (
	StatusOK Status = iota
	StatusClosed
	StatusInterrupted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusClosed:
		return "closed"
	case StatusInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Input is the result of one prompt. Text is only meaningful with StatusOK.
type Input struct {
	Text   string
	Status Status
}

var (
	ErrInputClosed = errors.New("input stream closed")
	ErrInterrupted = errors.New("interrupted")
)

// Err maps a non-OK status to its sentinel error.
func (in Input) Err() error {
	switch in.Status {
	case StatusClosed:
		return ErrInputClosed
	case StatusInterrupted:
		return ErrInterrupted
	default:
		return nil
	}
}

// Prompter writes a prompt and waits for the next line or for ctx to end.
// Lines are read by a single background goroutine so a blocked read never
// holds up cancellation.
type Prompter struct {
	out   io.Writer
	lines chan string
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		lines: make(chan string),
	}
	go p.pump(bufio.NewReader(in))
	return p
}

func (p *Prompter) pump(r *bufio.Reader) {
	defer close(p.lines)
	for {
		line, err := r.ReadString('\n')
		// A final line without a newline still counts.
		if err == nil || line != "" {
			p.lines <- strings.TrimRight(line, "\r\n")
		}
		if err != nil {
			return
		}
	}
}

// Ask prints prompt and returns the next line without its line ending.
func (p *Prompter) Ask(ctx context.Context, prompt string) Input {
	fmt.Fprint(p.out, prompt)

	if ctx.Err() != nil {
		return Input{Status: StatusInterrupted}
	}
	select {
	case <-ctx.Done():
		return Input{Status: StatusInterrupted}
	case line, ok := <-p.lines:
		if !ok {
			return Input{Status: StatusClosed}
		}
		return Input{Text: line, Status: StatusOK}
	}
}
