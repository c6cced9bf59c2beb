// Command mediagrab is an interactive front end for yt-dlp.
//
// Running it without a subcommand opens the numbered menu. The run, check
// and config subcommands cover scripted downloads, dependency diagnostics
// and configuration management.
package main
