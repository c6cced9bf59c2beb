// Package prompt collects raw lines of interactive input.
//
// The dispatcher and the interactive operations only see the Prompter
// interface; the readline-backed implementation supplies line editing and
// history, and maps Ctrl-C and Ctrl-D to ErrInterrupted so callers can leave
// the session cleanly.
package prompt

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ErrInterrupted reports that the user asked to leave the session.
var ErrInterrupted = errors.New("input interrupted")

// Prompter asks a question and returns the raw answer.
type Prompter interface {
	Ask(label string) (string, error)
}

// Func adapts a plain function to Prompter.
type Func func(label string) (string, error)

// Ask implements Prompter.
func (f Func) Ask(label string) (string, error) {
	return f(label)
}

// Confirm asks a yes/no question. Only a "y" answer (any case, surrounding
// whitespace ignored) counts as yes.
func Confirm(p Prompter, label string) (bool, error) {
	answer, err := p.Ask(label)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
}

// Readline is a Prompter backed by github.com/chzyer/readline.
type Readline struct {
	rl *readline.Instance
}

// NewReadline opens a line editor on the process terminal.
func NewReadline(stdout, stderr io.Writer) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdout:          stdout,
		Stderr:          stderr,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		HistoryLimit:    200,
	})
	if err != nil {
		return nil, err
	}
	return &Readline{rl: rl}, nil
}

// Ask implements Prompter.
func (r *Readline) Ask(label string) (string, error) {
	r.rl.SetPrompt(label)
	line, err := r.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return line, nil
}

// Close restores the terminal.
func (r *Readline) Close() error {
	return r.rl.Close()
}
