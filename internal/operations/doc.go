// Package operations implements the fixed catalog of single-link procedures
// offered by the menu.
//
// Every operation prints a banner, drives yt-dlp (and jq for comments) inside
// the configured working directory, and writes its artifacts there. A
// non-zero exit from an external tool is reported and absorbed at the
// operation boundary so the surrounding batch keeps going; any other error,
// including prompt.ErrInterrupted, is returned to the caller.
package operations
