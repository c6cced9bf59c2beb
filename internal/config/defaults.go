package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const (
	defaultWorkDir        = "."
	defaultLogDir         = "~/.local/share/mediagrab/logs"
	defaultYtDLPBinary    = "yt-dlp"
	defaultFFmpegBinary   = "ffmpeg"
	defaultJQBinary       = "jq"
	defaultAutoInstall    = true
	defaultOutputTemplate = "%(title).80s.%(ext)s"
	defaultAudioFormat    = "mp3"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	androidMediaDir       = "/sdcard/Movies"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir:  defaultWorkDir,
			MediaDir: defaultMediaDir(runtime.GOOS),
			LogDir:   defaultLogDir,
		},
		Tools: Tools{
			YtDLPBinary:  defaultYtDLPBinary,
			FFmpegBinary: defaultFFmpegBinary,
			JQBinary:     defaultJQBinary,
			AutoInstall:  defaultAutoInstall,
		},
		Download: Download{
			OutputTemplate: defaultOutputTemplate,
			AudioFormat:    defaultAudioFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// defaultMediaDir picks the folder a downloaded video is moved into when the
// user asks for it. Android keeps shared videos on the emulated SD card.
func defaultMediaDir(goos string) string {
	switch goos {
	case "android":
		return androidMediaDir
	case "darwin":
		return "~/Movies"
	case "windows":
		return "~/Videos"
	default:
		if dir, ok := os.LookupEnv("XDG_VIDEOS_DIR"); ok && strings.TrimSpace(dir) != "" {
			return strings.TrimSpace(dir)
		}
		return filepath.Join("~", "Videos")
	}
}
