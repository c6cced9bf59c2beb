package operations

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"mediagrab/internal/logging"
	"mediagrab/internal/services/ytdlp"
	"mediagrab/internal/textutil"
)

var titleCaser = cases.Title(language.English)

func (e *env) audioWithDescription(ctx context.Context, link string) error {
	if err := e.Downloader.ExtractAudio(ctx, link, e.AudioFormat); err != nil {
		return step("extract audio", err)
	}
	return e.saveMetadata(ctx, link, ytdlp.FieldDescription)
}

// saveMetadata writes a single field to "<name>_<field>.txt", where name is
// derived from the field's own text.
func (e *env) saveMetadata(ctx context.Context, link string, field ytdlp.Field) error {
	value, err := e.Downloader.Metadata(ctx, link, field)
	if err != nil {
		return step("get "+string(field), err)
	}
	name := sidecarName(value, string(field))
	if err := os.WriteFile(e.path(name), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	e.printf("%s saved as: %s\n", titleCaser.String(string(field)), name)
	logging.WithContext(ctx, e.logger).Info("metadata saved",
		logging.String("field", string(field)),
		logging.String("file", name),
	)
	return nil
}

func sidecarName(text, suffix string) string {
	return textutil.SanitizeDefault(text) + "_" + suffix + ".txt"
}
