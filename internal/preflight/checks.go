package preflight

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"mediagrab/internal/config"
	"mediagrab/internal/deps"
)

// Result reports the outcome of a single directory check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// checkMediaDirectory accepts a media directory that does not exist yet; it
// is created on the first move.
func checkMediaDirectory(path string) Result {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Result{Name: "Media directory", Passed: true, Detail: fmt.Sprintf("%s (created on first move)", path)}
	}
	return CheckDirectoryAccess("Media directory", path)
}

func ytdlpRequirement(binary string) deps.Requirement {
	return deps.Requirement{
		Name:        "yt-dlp",
		Command:     binary,
		Description: "Downloads media and metadata",
		VersionArgs: []string{"--version"},
	}
}

func requirements(cfg *config.Config) (ffmpeg, jq deps.Requirement) {
	ffmpeg = deps.Requirement{
		Name:        "ffmpeg",
		Command:     cfg.Tools.FFmpegBinary,
		Description: "Merges formats and converts audio",
		VersionArgs: []string{"-version"},
	}
	jq = deps.Requirement{
		Name:        "jq",
		Command:     cfg.Tools.JQBinary,
		Description: "Extracts comment text",
		Optional:    true,
		VersionArgs: []string{"--version"},
	}
	return ffmpeg, jq
}
