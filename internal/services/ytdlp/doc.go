// Package ytdlp wraps the yt-dlp command-line tool.
//
// The client only ever builds argument vectors; it never parses the tool's
// human-readable output beyond trimming single-value responses such as titles
// and resolved filenames. Tests inject a services.Executor via WithExecutor.
package ytdlp
