package operations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mediagrab/internal/fileutil"
	"mediagrab/internal/logging"
	"mediagrab/internal/prompt"
)

const (
	videoFormatPrompt = "Enter the format code you want to download (e.g., 22 or 137+140): "
	mediaFormatPrompt = "Enter format code (e.g., 22 or 137+140): "
)

func (e *env) videoWithAudio(ctx context.Context, link string) error {
	e.printf("\nAvailable formats:\n\n")
	if err := e.Downloader.ListFormats(ctx, link); err != nil {
		return step("list formats", err)
	}
	format, err := e.formatCode(videoFormatPrompt)
	if err != nil {
		return err
	}
	filename, err := e.Downloader.ResolveFilename(ctx, link, format, e.OutputTemplate)
	if err != nil {
		return step("resolve filename", err)
	}
	if err := e.Downloader.Download(ctx, link, format, e.OutputTemplate); err != nil {
		return step("download", err)
	}
	return e.offerMove(ctx, filename)
}

func (e *env) mediaWithComments(ctx context.Context, link string) error {
	if err := e.Downloader.ListFormats(ctx, link); err != nil {
		return step("list formats", err)
	}
	format, err := e.formatCode(mediaFormatPrompt)
	if err != nil {
		return err
	}
	if err := e.Downloader.Download(ctx, link, format, e.OutputTemplate); err != nil {
		return step("download", err)
	}
	return e.comments(ctx, link)
}

func (e *env) audioOnly(ctx context.Context, link string) error {
	return step("extract audio", e.Downloader.ExtractAudio(ctx, link, e.AudioFormat))
}

func (e *env) formatCode(label string) (string, error) {
	if preset := strings.TrimSpace(e.Format); preset != "" {
		return preset, nil
	}
	answer, err := e.Prompter.Ask(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// offerMove relocates a finished download into the media directory when the
// user agrees. A missing download is reported, never retried.
func (e *env) offerMove(ctx context.Context, filename string) error {
	logger := logging.WithContext(ctx, e.logger)
	if strings.TrimSpace(e.MediaDir) == "" {
		return nil
	}

	move := e.AssumeMove
	if !move {
		var err error
		move, err = prompt.Confirm(e.Prompter, fmt.Sprintf("Move to video folder %s? (y/n): ", e.MediaDir))
		if err != nil {
			return err
		}
	}
	if !move {
		return nil
	}

	if err := os.MkdirAll(e.MediaDir, 0o755); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}
	source := e.path(filename)
	if _, err := os.Stat(source); err != nil {
		e.printf("Downloaded file not found: %s\n", filename)
		logging.WarnWithContext(logger, "downloaded file missing", "download_missing",
			logging.String("file", source),
			logging.String(logging.FieldErrorHint, "the output template may not match the file yt-dlp wrote"),
			logging.String(logging.FieldImpact, "video left in place"),
		)
		return nil
	}
	target := filepath.Join(e.MediaDir, filepath.Base(filename))
	if err := fileutil.MoveFile(source, target); err != nil {
		return fmt.Errorf("move %s: %w", filename, err)
	}
	e.printf("Video moved to: %s\n", target)
	logger.Info("video moved", logging.String("target", target))
	return nil
}
