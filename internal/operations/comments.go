package operations

import (
	"context"
	"fmt"
	"os"

	"mediagrab/internal/logging"
	"mediagrab/internal/services/ytdlp"
	"mediagrab/internal/textutil"
)

// comments fetches the comment sidecar, flattens it to text with jq and
// removes the sidecar. A missing sidecar is reported but is not an error.
func (e *env) comments(ctx context.Context, link string) error {
	logger := logging.WithContext(ctx, e.logger)

	title, err := e.Downloader.Metadata(ctx, link, ytdlp.FieldTitle)
	if err != nil {
		return step("get title", err)
	}
	name := textutil.SanitizeDefault(title)
	if err := e.Downloader.WriteComments(ctx, link, name); err != nil {
		return step("write comments", err)
	}

	jsonName := name + ".info.json"
	jsonPath := e.path(jsonName)
	if _, err := os.Stat(jsonPath); err != nil {
		e.printf("Comment JSON not found!\n")
		logging.WarnWithContext(logger, "comment sidecar missing", "comments_missing",
			logging.String("file", jsonPath),
			logging.String(logging.FieldErrorHint, "the site may not expose comments"),
			logging.String(logging.FieldImpact, "no comments file written"),
		)
		return nil
	}
	if e.Comments == nil {
		return fmt.Errorf("extract comments from %s: jq is not installed", jsonName)
	}

	textName := sidecarName(title, "comments")
	textPath := e.path(textName)
	out, err := os.Create(textPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", textName, err)
	}
	extractErr := e.Comments.ExtractComments(ctx, jsonPath, out)
	closeErr := out.Close()
	if extractErr == nil && closeErr != nil {
		extractErr = closeErr
	}
	if extractErr != nil {
		_ = os.Remove(textPath)
		return step("extract comments", extractErr)
	}
	e.printf("Comments saved as: %s\n", textName)

	if err := os.Remove(jsonPath); err != nil {
		return fmt.Errorf("remove %s: %w", jsonName, err)
	}
	e.printf("Removed JSON file: %s\n", jsonName)
	logger.Info("comments saved", logging.String("file", textName))
	return nil
}
