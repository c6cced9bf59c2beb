package ytdlp_test

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"testing"

	"mediagrab/internal/services"
	"mediagrab/internal/services/ytdlp"
	"mediagrab/internal/testsupport"
)

func newClient(t *testing.T, exec *testsupport.StubExecutor) *ytdlp.Client {
	t.Helper()
	client, err := ytdlp.New("yt-dlp", "/work", ytdlp.WithExecutor(exec), ytdlp.WithOutput(io.Discard, io.Discard))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := ytdlp.New("  ", "."); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestArgumentVectors(t *testing.T) {
	const link = "https://example.com/watch?v=x"
	tests := []struct {
		name string
		call func(context.Context, *ytdlp.Client) error
		want []string
	}{
		{
			name: "list formats",
			call: func(ctx context.Context, c *ytdlp.Client) error { return c.ListFormats(ctx, link) },
			want: []string{"-F", link},
		},
		{
			name: "download default template",
			call: func(ctx context.Context, c *ytdlp.Client) error { return c.Download(ctx, link, "137+140", "") },
			want: []string{"-f", "137+140", "-o", ytdlp.DefaultOutputTemplate, link},
		},
		{
			name: "extract audio",
			call: func(ctx context.Context, c *ytdlp.Client) error { return c.ExtractAudio(ctx, link, "mp3") },
			want: []string{"-x", "--audio-format", "mp3", link},
		},
		{
			name: "write comments",
			call: func(ctx context.Context, c *ytdlp.Client) error { return c.WriteComments(ctx, link, "My Title") },
			want: []string{"--write-comments", "--skip-download", "-o", "My Title", link},
		},
		{
			name: "resolve filename",
			call: func(ctx context.Context, c *ytdlp.Client) error {
				_, err := c.ResolveFilename(ctx, link, "22", "%(id)s.%(ext)s")
				return err
			},
			want: []string{"--get-filename", "-f", "22", "-o", "%(id)s.%(ext)s", link},
		},
		{
			name: "title",
			call: func(ctx context.Context, c *ytdlp.Client) error {
				_, err := c.Metadata(ctx, link, ytdlp.FieldTitle)
				return err
			},
			want: []string{"--get-title", link},
		},
		{
			name: "description",
			call: func(ctx context.Context, c *ytdlp.Client) error {
				_, err := c.Metadata(ctx, link, ytdlp.FieldDescription)
				return err
			},
			want: []string{"--get-description", link},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &testsupport.StubExecutor{}
			client := newClient(t, exec)
			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("call returned error: %v", err)
			}
			calls := exec.Calls()
			if len(calls) != 1 {
				t.Fatalf("expected one invocation, got %d", len(calls))
			}
			if calls[0].Binary != "yt-dlp" || calls[0].Dir != "/work" {
				t.Fatalf("unexpected binary/dir: %+v", calls[0])
			}
			if !reflect.DeepEqual(calls[0].Args, tt.want) {
				t.Fatalf("unexpected args: got %v want %v", calls[0].Args, tt.want)
			}
		})
	}
}

func TestMetadataTrimsOutput(t *testing.T) {
	exec := &testsupport.StubExecutor{Handler: func(call testsupport.Call, stdout io.Writer) error {
		fmt.Fprint(stdout, "  A Title \n")
		return nil
	}}
	client := newClient(t, exec)
	title, err := client.Metadata(context.Background(), "https://example.com/v", ytdlp.FieldTitle)
	if err != nil {
		t.Fatalf("Metadata returned error: %v", err)
	}
	if title != "A Title" {
		t.Fatalf("expected trimmed title, got %q", title)
	}
}

func TestVersionPropagatesToolFailure(t *testing.T) {
	exec := &testsupport.StubExecutor{Handler: func(testsupport.Call, io.Writer) error {
		return testsupport.ToolFailure("--version")
	}}
	client := newClient(t, exec)
	if _, err := client.Version(context.Background()); !services.IsToolFailure(err) {
		t.Fatalf("expected tool failure, got %v", err)
	}
}
