package config

import (
	"fmt"
	"strings"
)

// audioFormats lists the codecs yt-dlp accepts for --audio-format.
var audioFormats = map[string]struct{}{
	"best": {}, "aac": {}, "alac": {}, "flac": {}, "m4a": {},
	"mp3": {}, "opus": {}, "vorbis": {}, "wav": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateDownload(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateDownload() error {
	if _, ok := audioFormats[c.Download.AudioFormat]; !ok {
		return fmt.Errorf("download.audio_format: unsupported codec %q", c.Download.AudioFormat)
	}
	if strings.ContainsAny(c.Download.OutputTemplate, "\n\r") {
		return fmt.Errorf("download.output_template must be a single line")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
