package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/alessio/shellescape"
)

// Command describes a single external process invocation. Args are passed to
// the binary verbatim; nothing is ever interpreted by a shell.
type Command struct {
	Binary string
	Args   []string
	Dir    string
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command for logs.
func (c Command) String() string {
	return shellescape.QuoteCommand(append([]string{c.Binary}, c.Args...))
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, cmd Command) error
}

// CommandExecutor runs commands with os/exec.
type CommandExecutor struct {
	Logger *slog.Logger
}

// Run starts the process and waits for it. Stdin is left detached so the
// child never competes with the line editor for terminal input. A non-zero exit is tagged with
// ErrExternalTool; a binary that cannot be started is tagged with ErrNotFound.
func (e CommandExecutor) Run(ctx context.Context, cmd Command) error {
	proc := exec.CommandContext(ctx, cmd.Binary, cmd.Args...) //nolint:gosec
	proc.Dir = cmd.Dir
	proc.Stdout = cmd.Stdout
	if proc.Stdout == nil {
		proc.Stdout = os.Stdout
	}
	proc.Stderr = cmd.Stderr
	if proc.Stderr == nil {
		proc.Stderr = os.Stderr
	}

	if e.Logger != nil {
		attrs := []any{slog.String("command", cmd.String())}
		if cmd.Dir != "" {
			attrs = append(attrs, slog.String("dir", cmd.Dir))
		}
		if link, ok := LinkFromContext(ctx); ok {
			attrs = append(attrs, slog.String("link", link))
		}
		e.Logger.DebugContext(ctx, "exec external tool", attrs...)
	}

	err := proc.Run()
	if err == nil {
		return nil
	}
	name := filepath.Base(cmd.Binary)
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return Wrap(ErrExternalTool, name, firstArg(cmd.Args), fmt.Sprintf("exit status %d", exitErr.ExitCode()), err)
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return Wrap(ErrNotFound, name, firstArg(cmd.Args), "binary not found", err)
	default:
		return fmt.Errorf("run %s: %w", name, err)
	}
}

// Output runs cmd and returns what it wrote to stdout.
func Output(ctx context.Context, executor Executor, cmd Command) ([]byte, error) {
	var buf bytes.Buffer
	cmd.Stdout = &buf
	if err := executor.Run(ctx, cmd); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
