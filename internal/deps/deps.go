// Package deps reports whether the external binaries mediagrab drives are
// installed and answering.
package deps

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"mediagrab/internal/services"
)

// Requirement defines an external dependency mediagrab relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	// VersionArgs, when set, are run to confirm the binary actually starts.
	VersionArgs []string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Path        string
	Description string
	Optional    bool
	Available   bool
	Version     string
	Detail      string
}

// CheckBinaries evaluates the provided requirements against PATH.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, lookup(req))
	}
	return results
}

// Probe resolves req on PATH and, when VersionArgs are set, runs the binary
// and records the first line it prints.
func Probe(ctx context.Context, executor services.Executor, req Requirement) Status {
	status := lookup(req)
	if !status.Available || len(req.VersionArgs) == 0 {
		return status
	}
	out, err := services.Output(ctx, executor, services.Command{
		Binary: status.Path,
		Args:   req.VersionArgs,
		Stderr: io.Discard,
	})
	if err != nil {
		status.Available = false
		status.Detail = fmt.Sprintf("%s %s failed: %v", status.Command, strings.Join(req.VersionArgs, " "), err)
		return status
	}
	status.Version = firstLine(string(out))
	return status
}

func lookup(req Requirement) Status {
	cmd := strings.TrimSpace(req.Command)
	status := Status{
		Name:        req.Name,
		Command:     cmd,
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if cmd == "" {
		status.Detail = "command not configured"
		return status
	}
	path, err := exec.LookPath(cmd)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", cmd)
		return status
	}
	status.Path = path
	status.Available = true
	return status
}

func firstLine(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
