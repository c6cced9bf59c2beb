package operations

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mediagrab/internal/logging"
	"mediagrab/internal/prompt"
	"mediagrab/internal/services"
	"mediagrab/internal/services/ytdlp"
)

// Operation processes a single link.
type Operation interface {
	Name() string
	Run(ctx context.Context, link string) error
}

// Downloader is the subset of the yt-dlp client the catalog drives.
type Downloader interface {
	ListFormats(ctx context.Context, link string) error
	ResolveFilename(ctx context.Context, link, format, template string) (string, error)
	Download(ctx context.Context, link, format, template string) error
	ExtractAudio(ctx context.Context, link, codec string) error
	Metadata(ctx context.Context, link string, field ytdlp.Field) (string, error)
	WriteComments(ctx context.Context, link, outputBase string) error
}

// CommentExtractor turns an info.json sidecar into plain comment text.
type CommentExtractor interface {
	ExtractComments(ctx context.Context, path string, w io.Writer) error
}

// Deps carries the collaborators and settings shared by every operation.
type Deps struct {
	Downloader Downloader
	Comments   CommentExtractor
	Prompter   prompt.Prompter
	Out        io.Writer
	Logger     *slog.Logger

	WorkDir        string
	MediaDir       string
	OutputTemplate string
	AudioFormat    string

	// Format skips the format-code prompt when set.
	Format string
	// AssumeMove moves downloaded videos without asking.
	AssumeMove bool
}

// Catalog maps each Kind to its implementation. It is immutable once built.
type Catalog struct {
	ops map[Kind]Operation
}

// NewCatalog wires every operation against deps.
func NewCatalog(deps Deps) (*Catalog, error) {
	if deps.Downloader == nil {
		return nil, errors.New("operations: downloader required")
	}
	if deps.Prompter == nil {
		return nil, errors.New("operations: prompter required")
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if strings.TrimSpace(deps.OutputTemplate) == "" {
		deps.OutputTemplate = ytdlp.DefaultOutputTemplate
	}
	if strings.TrimSpace(deps.AudioFormat) == "" {
		deps.AudioFormat = "mp3"
	}
	env := &env{Deps: deps, logger: logging.NewComponentLogger(deps.Logger, "operations")}

	steps := map[Kind]func(context.Context, string) error{
		KindVideoAudio:       env.videoWithAudio,
		KindAudioDescription: env.audioWithDescription,
		KindMediaComments:    env.mediaWithComments,
		KindTitle:            func(ctx context.Context, link string) error { return env.saveMetadata(ctx, link, ytdlp.FieldTitle) },
		KindAudio:            env.audioOnly,
		KindDescription:      func(ctx context.Context, link string) error { return env.saveMetadata(ctx, link, ytdlp.FieldDescription) },
		KindComments:         env.comments,
	}
	ops := make(map[Kind]Operation, len(steps))
	for kind, run := range steps {
		ops[kind] = &operation{kind: kind, env: env, steps: run}
	}
	return &Catalog{ops: ops}, nil
}

// Lookup returns the operation registered for kind.
func (c *Catalog) Lookup(kind Kind) (Operation, error) {
	op, ok := c.ops[kind]
	if !ok {
		return nil, fmt.Errorf("operations: no operation for %s", kind)
	}
	return op, nil
}

type env struct {
	Deps
	logger *slog.Logger
}

func (e *env) printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

// path resolves an artifact name against the working directory.
func (e *env) path(name string) string {
	if filepath.IsAbs(name) || e.WorkDir == "" {
		return name
	}
	return filepath.Join(e.WorkDir, name)
}

type operation struct {
	kind  Kind
	env   *env
	steps func(context.Context, string) error
}

func (o *operation) Name() string {
	return o.kind.String()
}

func (o *operation) Run(ctx context.Context, link string) error {
	ctx = services.WithOperation(services.WithLink(ctx, link), o.kind.String())
	logger := logging.WithContext(ctx, o.env.logger)

	o.env.printf("\n[%s] => %s\n", o.kind.Label(), link)
	logger.Info("operation started")

	err := o.steps(ctx, link)
	if err == nil {
		logger.Info("operation finished")
		return nil
	}
	if !services.IsToolFailure(err) {
		return err
	}

	var failed *stepError
	step, cause := o.kind.String(), err
	if errors.As(err, &failed) {
		step, cause = failed.step, failed.err
	}
	o.env.printf("Error during %s for %s: %v\n", step, link, cause)
	logging.WarnWithContext(logger, "external tool failed", "tool_failure",
		logging.String("step", step),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, "check the link and the selected format code"),
		logging.String(logging.FieldImpact, "remaining steps for this link were skipped"),
	)
	return nil
}

// stepError names the step an operation was on when it failed.
type stepError struct {
	step string
	err  error
}

func (e *stepError) Error() string {
	return e.step + ": " + e.err.Error()
}

func (e *stepError) Unwrap() error {
	return e.err
}

func step(name string, err error) error {
	if err == nil {
		return nil
	}
	return &stepError{step: name, err: err}
}
