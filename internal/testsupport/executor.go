package testsupport

import (
	"context"
	"io"
	"sync"

	"mediagrab/internal/services"
)

// Call records a single command invocation seen by StubExecutor.
type Call struct {
	Binary string
	Args   []string
	Dir    string
}

// Has reports whether the call's arguments include flag.
func (c Call) Has(flag string) bool {
	for _, arg := range c.Args {
		if arg == flag {
			return true
		}
	}
	return false
}

// Last returns the final argument, which is the link for every yt-dlp call.
func (c Call) Last() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[len(c.Args)-1]
}

// StubExecutor records invocations and delegates behaviour to Handler. A nil
// Handler makes every command succeed silently.
type StubExecutor struct {
	mu      sync.Mutex
	calls   []Call
	Handler func(call Call, stdout io.Writer) error
}

// Run implements services.Executor.
func (s *StubExecutor) Run(_ context.Context, cmd services.Command) error {
	call := Call{
		Binary: cmd.Binary,
		Args:   append([]string(nil), cmd.Args...),
		Dir:    cmd.Dir,
	}
	s.mu.Lock()
	s.calls = append(s.calls, call)
	handler := s.Handler
	s.mu.Unlock()

	if handler == nil {
		return nil
	}
	stdout := cmd.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	return handler(call, stdout)
}

// Calls returns a snapshot of recorded invocations.
func (s *StubExecutor) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsWith returns recorded invocations whose arguments include flag.
func (s *StubExecutor) CallsWith(flag string) []Call {
	var out []Call
	for _, call := range s.Calls() {
		if call.Has(flag) {
			out = append(out, call)
		}
	}
	return out
}

// ToolFailure builds the error a real executor returns for a non-zero exit.
func ToolFailure(step string) error {
	return services.Wrap(services.ErrExternalTool, "yt-dlp", step, "exit status 1", nil)
}
