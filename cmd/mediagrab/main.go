package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"mediagrab/internal/preflight"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
		case errors.Is(err, preflight.ErrTranscoderMissing):
			fmt.Fprintln(os.Stderr, "ffmpeg is not installed. Please install ffmpeg manually.")
		default:
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
