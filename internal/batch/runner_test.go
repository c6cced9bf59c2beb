package batch_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"mediagrab/internal/batch"
	"mediagrab/internal/prompt"
)

type recordingOp struct {
	calls []string
	run   func(ctx context.Context, link string) error
}

func (r *recordingOp) Name() string { return "recording" }

func (r *recordingOp) Run(ctx context.Context, link string) error {
	r.calls = append(r.calls, link)
	if r.run == nil {
		return nil
	}
	return r.run(ctx, link)
}

func newRunner(out io.Writer) *batch.Runner {
	return batch.NewRunner(out, nil, batch.WithoutProgress())
}

func TestRunIsolatesFailingLink(t *testing.T) {
	var out bytes.Buffer
	op := &recordingOp{run: func(_ context.Context, link string) error {
		if link == "https://l2.example" {
			return errors.New("boom")
		}
		return nil
	}}
	links := []string{"https://l1.example", "https://l2.example", "https://l3.example"}

	if err := newRunner(&out).Run(context.Background(), links, op); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if strings.Join(op.calls, ",") != strings.Join(links, ",") {
		t.Fatalf("calls = %v, want %v", op.calls, links)
	}
	if got := out.String(); got != "Error processing https://l2.example: boom\n" {
		t.Fatalf("unexpected report %q", got)
	}
}

func TestRunRecoversPanics(t *testing.T) {
	var out bytes.Buffer
	op := &recordingOp{run: func(_ context.Context, link string) error {
		if link == "https://a.example" {
			panic("nil map")
		}
		return nil
	}}

	err := newRunner(&out).Run(context.Background(), []string{"https://a.example", "https://b.example"}, op)
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if len(op.calls) != 2 {
		t.Fatalf("expected both links attempted, got %v", op.calls)
	}
	if !strings.Contains(out.String(), "Error processing https://a.example: panic: nil map") {
		t.Fatalf("unexpected report %q", out.String())
	}
}

func TestRunStopsOnPromptInterrupt(t *testing.T) {
	op := &recordingOp{run: func(context.Context, string) error {
		return prompt.ErrInterrupted
	}}

	err := newRunner(io.Discard).Run(context.Background(), []string{"https://a.example", "https://b.example"}, op)
	if !errors.Is(err, prompt.ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if len(op.calls) != 1 {
		t.Fatalf("expected batch to stop after first link, got %v", op.calls)
	}
}

func TestRunStopsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	op := &recordingOp{run: func(context.Context, string) error {
		cancel()
		return nil
	}}

	err := newRunner(io.Discard).Run(ctx, []string{"https://a.example", "https://b.example"}, op)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(op.calls) != 1 {
		t.Fatalf("expected one call before cancellation, got %v", op.calls)
	}
}

func TestRunRendersProgress(t *testing.T) {
	var progress bytes.Buffer
	runner := batch.NewRunner(io.Discard, nil, batch.WithProgress(&progress))

	if err := runner.Run(context.Background(), []string{"https://a.example"}, &recordingOp{}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !strings.Contains(progress.String(), "Processing") {
		t.Fatalf("expected progress description, got %q", progress.String())
	}
}
