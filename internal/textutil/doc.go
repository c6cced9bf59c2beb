// Package textutil derives filesystem-safe names from untrusted metadata text.
//
// Titles and descriptions returned by the extraction tool end up as filename
// components, so they are truncated to a fixed number of characters and
// stripped of the characters Windows and POSIX filesystems reject
// (\ / * ? : " < > |). Truncation counts runes, not bytes, so multi-byte
// titles never split a character.
package textutil
