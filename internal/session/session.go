// Package session wires configuration, logging, preflight and the operation
// catalog into a running mediagrab session.
//
// A session owns the working-directory lock for its whole lifetime. Open
// performs preflight (installing yt-dlp when allowed) before anything is
// downloaded; Interactive runs the menu loop and Batch runs a single
// operation over links supplied up front.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mediagrab/internal/batch"
	"mediagrab/internal/config"
	"mediagrab/internal/dispatch"
	"mediagrab/internal/logging"
	"mediagrab/internal/operations"
	"mediagrab/internal/preflight"
	"mediagrab/internal/prompt"
	"mediagrab/internal/services"
	"mediagrab/internal/services/jq"
	"mediagrab/internal/services/ytdlp"
)

// LockFileName marks a working directory as in use by a session.
const LockFileName = ".mediagrab.lock"

// ErrLocked reports that another session holds the working directory.
var ErrLocked = errors.New("another mediagrab session is using this working directory")

// Options configures Open.
type Options struct {
	// Verbose mirrors the log to stderr at debug level.
	Verbose bool
	Out     io.Writer
	ErrOut  io.Writer
	// Prompter defaults to a readline editor opened on first use.
	Prompter  prompt.Prompter
	Installer preflight.Installer
	// Format and AssumeMove preset the video prompts.
	Format     string
	AssumeMove bool
	// HideProgress disables the batch progress bar.
	HideProgress bool
}

// Session is an open, locked, preflighted environment.
type Session struct {
	ID     string
	cfg    *config.Config
	logger *slog.Logger
	lock   *flock.Flock
	report preflight.Report

	out      io.Writer
	prompter prompt.Prompter
	catalog  *operations.Catalog
	runner   *batch.Runner
	closers  []func() error
}

// Open acquires the working-directory lock, runs preflight and builds the
// operation catalog.
func Open(ctx context.Context, cfg *config.Config, opts Options) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: session requires a config", services.ErrConfiguration)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}

	s := &Session{ID: uuid.NewString(), cfg: cfg, out: opts.Out}
	logger, err := logging.NewFromConfig(cfg, s.ID, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	s.logger = logger

	if err := s.acquireLock(); err != nil {
		return nil, err
	}

	ctx = services.WithSessionID(ctx, s.ID)
	executor := services.CommandExecutor{Logger: logger}
	report, err := preflight.Run(ctx, cfg, preflight.Options{
		Executor:  executor,
		Installer: opts.Installer,
		Out:       opts.Out,
		Logger:    logger,
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.report = report

	downloader, err := ytdlp.New(report.YtDLPBinary, cfg.Paths.WorkDir,
		ytdlp.WithExecutor(executor),
		ytdlp.WithOutput(opts.Out, opts.ErrOut),
		ytdlp.WithLogger(logger),
	)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	var comments operations.CommentExtractor
	if report.JQ.Available {
		extractor, err := jq.New(cfg.Tools.JQBinary, cfg.Paths.WorkDir,
			jq.WithExecutor(executor),
			jq.WithStderr(opts.ErrOut),
		)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		comments = extractor
	}

	s.prompter = opts.Prompter
	if s.prompter == nil {
		lazy := &lazyReadline{out: opts.Out, errOut: opts.ErrOut}
		s.prompter = lazy
		s.closers = append(s.closers, lazy.Close)
	}

	s.catalog, err = operations.NewCatalog(operations.Deps{
		Downloader:     downloader,
		Comments:       comments,
		Prompter:       s.prompter,
		Out:            opts.Out,
		Logger:         logger,
		WorkDir:        cfg.Paths.WorkDir,
		MediaDir:       cfg.Paths.MediaDir,
		OutputTemplate: cfg.Download.OutputTemplate,
		AudioFormat:    cfg.Download.AudioFormat,
		Format:         opts.Format,
		AssumeMove:     opts.AssumeMove,
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}

	runnerOpts := []batch.Option{batch.WithProgress(opts.ErrOut)}
	if opts.HideProgress {
		runnerOpts = append(runnerOpts, batch.WithoutProgress())
	}
	s.runner = batch.NewRunner(opts.Out, logger, runnerOpts...)

	logger.Info("session opened",
		logging.String("work_dir", cfg.Paths.WorkDir),
		logging.String("ytdlp", report.YtDLPBinary),
		logging.Bool("ytdlp_installed", report.Installed),
	)
	return s, nil
}

// Report returns the preflight outcome the session was opened with.
func (s *Session) Report() preflight.Report {
	return s.report
}

// Interactive runs the menu loop until the user leaves.
func (s *Session) Interactive(ctx context.Context) error {
	ctx = services.WithSessionID(ctx, s.ID)
	return dispatch.New(s.prompter, s.catalog, s.runner, s.out, s.logger).Run(ctx)
}

// Batch runs one operation over links without the menu. Links that fail
// validation are dropped; an empty result is an error.
func (s *Session) Batch(ctx context.Context, kind operations.Kind, links []string) error {
	if len(links) == 0 {
		return errors.New("no valid links given; links must start with http:// or https://")
	}
	op, err := s.catalog.Lookup(kind)
	if err != nil {
		return err
	}
	ctx = services.WithSessionID(ctx, s.ID)
	err = s.runner.Run(ctx, links, op)
	if errors.Is(err, prompt.ErrInterrupted) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(s.out, "Exiting...")
		return nil
	}
	return err
}

// Close releases the lock and the terminal.
func (s *Session) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	s.closers = nil
	if s.lock != nil {
		errs = append(errs, s.lock.Unlock())
		s.lock = nil
	}
	return errors.Join(errs...)
}

func (s *Session) acquireLock() error {
	if err := os.MkdirAll(s.cfg.Paths.WorkDir, 0o755); err != nil {
		return fmt.Errorf("create working directory: %w", err)
	}
	lock := flock.New(filepath.Join(s.cfg.Paths.WorkDir, LockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLocked, s.cfg.Paths.WorkDir)
	}
	s.lock = lock
	return nil
}

// lazyReadline opens the line editor on the first question so sessions that
// never prompt leave the terminal untouched.
type lazyReadline struct {
	out    io.Writer
	errOut io.Writer

	once sync.Once
	rl   *prompt.Readline
	err  error
}

func (l *lazyReadline) Ask(label string) (string, error) {
	l.once.Do(func() {
		l.rl, l.err = prompt.NewReadline(l.out, l.errOut)
	})
	if l.err != nil {
		return "", fmt.Errorf("open terminal: %w", l.err)
	}
	return l.rl.Ask(label)
}

func (l *lazyReadline) Close() error {
	if l.rl == nil {
		return nil
	}
	return l.rl.Close()
}
