// Package config loads, normalizes, and validates mediagrab configuration data.
//
// It supplies repository defaults (including a platform-specific media
// directory), expands user paths with tilde shortcuts, reads TOML files, and
// honours the YTDLP_PATH environment fallback. Sessions only ever read the
// file; CreateSample is the single writer and runs on explicit request.
package config
