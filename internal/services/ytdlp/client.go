package ytdlp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"mediagrab/internal/services"
)

// DefaultOutputTemplate names downloads after the first 80 characters of the title.
const DefaultOutputTemplate = "%(title).80s.%(ext)s"

// Field names a metadata value the tool can print on its own.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
)

func (f Field) flag() string {
	return "--get-" + string(f)
}

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

// WithOutput routes the tool's progress output and diagnostics.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(c *Client) {
		c.stdout = stdout
		c.stderr = stderr
	}
}

// WithLogger sets the logger used for command tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client wraps yt-dlp CLI interactions. Every call blocks until the process exits.
type Client struct {
	binary string
	dir    string
	exec   services.Executor
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// New constructs a yt-dlp client that runs the tool inside workDir.
func New(binary, workDir string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("yt-dlp binary required")
	}
	client := &Client{
		binary: binary,
		dir:    workDir,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.exec == nil {
		client.exec = services.CommandExecutor{Logger: client.logger}
	}
	return client, nil
}

// Binary returns the executable the client invokes.
func (c *Client) Binary() string {
	return c.binary
}

// Version returns the tool's reported version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.text(ctx, "--version")
}

// ListFormats prints the available format table for link to the client output.
func (c *Client) ListFormats(ctx context.Context, link string) error {
	return c.run(ctx, "-F", link)
}

// ResolveFilename asks the tool which file a download of format would produce.
func (c *Client) ResolveFilename(ctx context.Context, link, format, template string) (string, error) {
	return c.text(ctx, "--get-filename", "-f", format, "-o", templateOrDefault(template), link)
}

// Download fetches link in the given format code (for example "22" or "137+140").
func (c *Client) Download(ctx context.Context, link, format, template string) error {
	return c.run(ctx, "-f", format, "-o", templateOrDefault(template), link)
}

// ExtractAudio downloads link and converts it to codec.
func (c *Client) ExtractAudio(ctx context.Context, link, codec string) error {
	return c.run(ctx, "-x", "--audio-format", codec, link)
}

// Metadata prints a single metadata field without downloading media. The
// result is trimmed of surrounding whitespace.
func (c *Client) Metadata(ctx context.Context, link string, field Field) (string, error) {
	return c.text(ctx, field.flag(), link)
}

// WriteComments fetches comments into a "<outputBase>.info.json" sidecar. Media
// is never downloaded.
func (c *Client) WriteComments(ctx context.Context, link, outputBase string) error {
	return c.run(ctx, "--write-comments", "--skip-download", "-o", outputBase, link)
}

func (c *Client) run(ctx context.Context, args ...string) error {
	return c.exec.Run(ctx, c.command(args, c.stdout))
}

func (c *Client) text(ctx context.Context, args ...string) (string, error) {
	out, err := services.Output(ctx, c.exec, c.command(args, nil))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *Client) command(args []string, stdout io.Writer) services.Command {
	return services.Command{
		Binary: c.binary,
		Args:   args,
		Dir:    c.dir,
		Stdout: stdout,
		Stderr: c.stderr,
	}
}

func templateOrDefault(template string) string {
	if strings.TrimSpace(template) == "" {
		return DefaultOutputTemplate
	}
	return template
}
