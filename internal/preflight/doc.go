// Package preflight verifies the external tools and directories a session
// needs before the menu is shown.
//
// Run is used in two modes:
//   - Session startup installs a missing yt-dlp when auto_install allows it
//     and fails with ErrTranscoderMissing when ffmpeg is absent.
//   - "mediagrab check" sets CheckOnly and only reports.
package preflight
