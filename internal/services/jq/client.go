// Package jq runs the jq JSON processor as a text filter over sidecar files.
package jq

import (
	"context"
	"errors"
	"io"
	"strings"

	"mediagrab/internal/services"
)

// CommentTextFilter selects the text of every comment in a yt-dlp info.json file.
const CommentTextFilter = ".comments[].text"

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// WithStderr routes jq diagnostics.
func WithStderr(w io.Writer) Option {
	return func(c *Client) {
		c.stderr = w
	}
}

// Client wraps jq invocations.
type Client struct {
	binary string
	dir    string
	exec   services.Executor
	stderr io.Writer
}

// New constructs a jq client rooted at workDir.
func New(binary, workDir string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("jq binary required")
	}
	client := &Client{binary: binary, dir: workDir, exec: services.CommandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Filter applies expr to path and writes raw (-r) output lines to w.
func (c *Client) Filter(ctx context.Context, expr, path string, w io.Writer) error {
	return c.exec.Run(ctx, services.Command{
		Binary: c.binary,
		Args:   []string{"-r", expr, path},
		Dir:    c.dir,
		Stdout: w,
		Stderr: c.stderr,
	})
}

// ExtractComments writes one comment per line from the info.json at path.
func (c *Client) ExtractComments(ctx context.Context, path string, w io.Writer) error {
	return c.Filter(ctx, CommentTextFilter, path, w)
}
