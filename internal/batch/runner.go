// Package batch applies one operation to a list of links, one at a time.
//
// A failing or panicking link is reported and skipped; only an interrupt
// (context cancellation or prompt.ErrInterrupted) ends the batch early.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"

	"mediagrab/internal/logging"
	"mediagrab/internal/operations"
	"mediagrab/internal/prompt"
	"mediagrab/internal/services"
)

// Option configures a Runner.
type Option func(*Runner)

// WithProgress sends the progress bar to w instead of stderr.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.progress = w
		}
	}
}

// WithoutProgress disables the progress bar.
func WithoutProgress() Option {
	return func(r *Runner) {
		r.hideProgress = true
	}
}

// Runner processes links sequentially.
type Runner struct {
	out          io.Writer
	progress     io.Writer
	hideProgress bool
	logger       *slog.Logger
}

// NewRunner builds a runner that prints per-link diagnostics to out.
func NewRunner(out io.Writer, logger *slog.Logger, opts ...Option) *Runner {
	if out == nil {
		out = os.Stdout
	}
	r := &Runner{
		out:      out,
		progress: os.Stderr,
		logger:   logging.NewComponentLogger(logger, "batch"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies op to every link in order. It returns nil once all links were
// attempted, or the interrupt that stopped the batch.
func (r *Runner) Run(ctx context.Context, links []string, op operations.Operation) error {
	bar := r.newBar(len(links))
	r.logger.Info("batch started",
		logging.String(logging.FieldOperation, op.Name()),
		logging.Int("links", len(links)),
	)

	failed := 0
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			r.logger.Info("batch interrupted", logging.Error(err))
			return err
		}
		err := r.runOne(ctx, op, link)
		if interrupted(ctx, err) {
			r.logger.Info("batch interrupted", logging.String(logging.FieldLink, link))
			return err
		}
		if err != nil {
			failed++
			fmt.Fprintf(r.out, "Error processing %s: %v\n", link, err)
			linkCtx := services.WithOperation(services.WithLink(ctx, link), op.Name())
			logging.ErrorWithContext(logging.WithContext(linkCtx, r.logger), "link failed", "link_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "rerun this link on its own to see the full tool output"),
			)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	r.logger.Info("batch finished",
		logging.String(logging.FieldOperation, op.Name()),
		logging.Int("links", len(links)),
		logging.Int("failed", failed),
	)
	return nil
}

// runOne shields the batch from a panicking operation.
func (r *Runner) runOne(ctx context.Context, op operations.Operation, link string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return op.Run(ctx, link)
}

func (r *Runner) newBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetVisibility(!r.hideProgress),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(r.progress)
		}),
	)
}

func interrupted(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, prompt.ErrInterrupted) {
		return true
	}
	return ctx.Err() != nil && errors.Is(err, ctx.Err())
}
