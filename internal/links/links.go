// Package links turns free-form user input into the list of URLs a batch runs against.
package links

import (
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^https?://`)

// Parse splits raw on commas, trims each candidate, and keeps the ones that
// start with http:// or https://. Order and duplicates are preserved. An empty
// result means the caller should ask again.
func Parse(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		candidate := strings.TrimSpace(piece)
		if candidate == "" {
			continue
		}
		if schemePattern.MatchString(candidate) {
			out = append(out, candidate)
		}
	}
	return out
}

// Valid reports whether a single value would survive Parse.
func Valid(link string) bool {
	return schemePattern.MatchString(strings.TrimSpace(link))
}
