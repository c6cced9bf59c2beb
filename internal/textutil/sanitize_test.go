package textutil

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "empty", input: "", max: DefaultMaxLength, want: ""},
		{name: "clean", input: "My Video", max: DefaultMaxLength, want: "My Video"},
		{name: "unsafe characters", input: `a\b/c*d?e:f"g<h>i|j`, max: DefaultMaxLength, want: "a_b_c_d_e_f_g_h_i_j"},
		{name: "description scenario", input: "Hi/there?", max: DefaultMaxLength, want: "Hi_there_"},
		{name: "truncates before replacing", input: "abc/def", max: 4, want: "abc_"},
		{name: "multibyte", input: "日本語のタイトル", max: 3, want: "日本語"},
		{name: "zero length", input: "anything", max: 0, want: ""},
		{name: "keeps whitespace", input: "  spaced  ", max: DefaultMaxLength, want: "  spaced  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input, tt.max); got != tt.want {
				t.Fatalf("Sanitize(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestSanitizeBoundsAndCharset(t *testing.T) {
	inputs := []string{
		strings.Repeat("x", 200),
		strings.Repeat(`<>:"/\|?*`, 20),
		strings.Repeat("é/", 60),
		"short",
		"",
	}
	for _, input := range inputs {
		for _, max := range []int{1, 10, DefaultMaxLength, 120} {
			got := Sanitize(input, max)
			if n := utf8.RuneCountInString(got); n > max {
				t.Fatalf("Sanitize(%q, %d) length %d exceeds max", input, max, n)
			}
			if strings.ContainsAny(got, `\/*?:"<>|`) {
				t.Fatalf("Sanitize(%q, %d) = %q contains unsafe characters", input, max, got)
			}
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	for _, input := range []string{"clean name", "a/b?c", strings.Repeat("z", 80)} {
		once := SanitizeDefault(input)
		if twice := SanitizeDefault(once); twice != once {
			t.Fatalf("Sanitize not idempotent for %q: %q then %q", input, once, twice)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Fatalf("expected untouched value, got %q", got)
	}
	if got := Truncate("hello", 2); got != "he" {
		t.Fatalf("expected he, got %q", got)
	}
}
