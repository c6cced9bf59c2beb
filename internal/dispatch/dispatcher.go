// Package dispatch runs the interactive menu loop.
//
// The Dispatcher is a small state machine: the menu state reads a choice,
// the executing state gathers links and hands them to the batch runner, and
// any interrupt moves it to the terminal state.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"mediagrab/internal/links"
	"mediagrab/internal/logging"
	"mediagrab/internal/operations"
	"mediagrab/internal/prompt"
)

// State is the dispatcher's position in the session.
type State int

const (
	StateMenu State = iota
	StateExecuting
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateExecuting:
		return "executing"
	case StateTerminal:
		return "terminal"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	choicePrompt = "Enter your choice (1-12): "
	linksPrompt  = "Enter link(s) separated by commas: "

	msgNotNumber  = "Please enter a number between 1 and 12."
	msgOutOfRange = "Invalid choice. Please choose between 1 and 12."
	msgNoLinks    = "No valid links found. Please enter at least one valid URL starting with http:// or https://"
	msgExiting    = "Exiting..."
)

// Catalog resolves a Kind to its operation.
type Catalog interface {
	Lookup(kind operations.Kind) (operations.Operation, error)
}

// BatchRunner applies an operation to links.
type BatchRunner interface {
	Run(ctx context.Context, links []string, op operations.Operation) error
}

// Dispatcher drives one interactive session.
type Dispatcher struct {
	prompter prompt.Prompter
	catalog  Catalog
	runner   BatchRunner
	out      io.Writer
	logger   *slog.Logger

	state   State
	pending Choice
}

// New builds a dispatcher in the menu state.
func New(prompter prompt.Prompter, catalog Catalog, runner BatchRunner, out io.Writer, logger *slog.Logger) *Dispatcher {
	if out == nil {
		out = os.Stdout
	}
	return &Dispatcher{
		prompter: prompter,
		catalog:  catalog,
		runner:   runner,
		out:      out,
		logger:   logging.NewComponentLogger(logger, "dispatch"),
		state:    StateMenu,
	}
}

// State reports the current state.
func (d *Dispatcher) State() State {
	return d.state
}

// Run steps the machine until it reaches the terminal state. An interrupt is a
// normal exit and yields nil.
func (d *Dispatcher) Run(ctx context.Context) error {
	for d.state != StateTerminal {
		if err := d.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step performs one transition. Only unexpected failures are returned.
func (d *Dispatcher) Step(ctx context.Context) error {
	if ctx.Err() != nil {
		d.terminate("context cancelled")
		return nil
	}
	switch d.state {
	case StateMenu:
		return d.menu()
	case StateExecuting:
		return d.execute(ctx)
	default:
		return nil
	}
}

func (d *Dispatcher) menu() error {
	fmt.Fprintln(d.out)
	fmt.Fprintln(d.out, RenderMenu())
	answer, err := d.prompter.Ask(choicePrompt)
	if err != nil {
		return d.promptFailed(err)
	}
	choice, err := ParseChoice(answer)
	switch {
	case errors.Is(err, ErrNotNumber):
		fmt.Fprintln(d.out, msgNotNumber)
		return nil
	case errors.Is(err, ErrOutOfRange):
		fmt.Fprintln(d.out, msgOutOfRange)
		return nil
	}
	d.pending = choice
	d.state = StateExecuting
	return nil
}

func (d *Dispatcher) execute(ctx context.Context) error {
	kind := d.pending.Kind()
	list, err := d.gatherLinks()
	if err != nil {
		return d.promptFailed(err)
	}
	op, err := d.catalog.Lookup(kind)
	if err != nil {
		return err
	}
	d.logger.Info("dispatching",
		logging.Int("choice", int(d.pending)),
		logging.String(logging.FieldOperation, kind.String()),
		logging.Int("links", len(list)),
	)
	if err := d.runner.Run(ctx, list, op); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) || ctx.Err() != nil {
			d.terminate("batch interrupted")
			return nil
		}
		return err
	}
	d.state = StateMenu
	return nil
}

func (d *Dispatcher) gatherLinks() ([]string, error) {
	for {
		answer, err := d.prompter.Ask(linksPrompt)
		if err != nil {
			return nil, err
		}
		if parsed := links.Parse(answer); len(parsed) > 0 {
			return parsed, nil
		}
		fmt.Fprintln(d.out, msgNoLinks)
	}
}

func (d *Dispatcher) promptFailed(err error) error {
	if errors.Is(err, prompt.ErrInterrupted) {
		d.terminate("input interrupted")
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (d *Dispatcher) terminate(reason string) {
	if d.state == StateTerminal {
		return
	}
	d.state = StateTerminal
	fmt.Fprintf(d.out, "\n%s\n", msgExiting)
	d.logger.Info("session ending", logging.String("reason", reason))
}
