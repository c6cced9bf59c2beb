package main

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"mediagrab/internal/deps"
	"mediagrab/internal/preflight"
)

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("media directory", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Media Directory:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderStatusLineWithColor(t *testing.T) {
	got := renderStatusLine("yt-dlp", statusOK, "ready", true)
	if !strings.HasPrefix(got, "\x1b[32m") {
		t.Fatalf("expected green prefix, got %q", got)
	}
	if !strings.Contains(got, "[OK] ready") {
		t.Fatalf("expected status text, got %q", got)
	}
}

func TestToolRows(t *testing.T) {
	report := preflight.Report{
		YtDLP:  deps.Status{Name: "yt-dlp", Available: true, Path: "/usr/bin/yt-dlp", Version: "2025.01.01"},
		FFmpeg: deps.Status{Name: "ffmpeg", Detail: `binary "ffmpeg" not found`},
		JQ:     deps.Status{Name: "jq", Optional: true, Detail: `binary "jq" not found`},
	}
	rows := toolRows(report, false)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "OK" || rows[0][3] != "/usr/bin/yt-dlp" {
		t.Fatalf("unexpected yt-dlp row %q", rows[0])
	}
	if rows[1][1] != "ERROR" {
		t.Fatalf("expected required tool to be an error, got %q", rows[1])
	}
	if rows[2][1] != "WARN" {
		t.Fatalf("expected optional tool to be a warning, got %q", rows[2])
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}
