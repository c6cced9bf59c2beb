package textutil

import "strings"

// DefaultMaxLength bounds names derived from metadata such as titles and descriptions.
const DefaultMaxLength = 50

// fileNameReplacer maps characters that are illegal in Windows and POSIX path
// components to underscores.
var fileNameReplacer = strings.NewReplacer(
	"\\", "_",
	"/", "_",
	"*", "_",
	"?", "_",
	":", "_",
	"\"", "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// Sanitize truncates text to its first maxLength characters and replaces every
// filesystem-unsafe character with an underscore. Whitespace is preserved so
// the result stays recognisable next to the metadata it came from.
func Sanitize(text string, maxLength int) string {
	return fileNameReplacer.Replace(Truncate(text, maxLength))
}

// SanitizeDefault is Sanitize with DefaultMaxLength.
func SanitizeDefault(text string) string {
	return Sanitize(text, DefaultMaxLength)
}

// Truncate returns the first maxLength runes of text.
func Truncate(text string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}
	count := 0
	for i := range text {
		if count == maxLength {
			return text[:i]
		}
		count++
	}
	return text
}
