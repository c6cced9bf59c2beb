// Package services defines shared utilities consumed by the external tool
// clients and the operations built on them.
//
// Key responsibilities:
//   - Context helpers that stamp the current link, operation, and session
//     identifier for logging.
//   - Structured error markers plus the Wrap helper that let operations tell a
//     failed tool run (recoverable, reported per link) apart from everything
//     else (escalated to the batch runner).
//   - The Executor abstraction that runs external binaries from argument
//     vectors and keeps the clients testable.
package services
