package notebook

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name:     "empty",
			source:   "",
			expected: []string{},
		},
		{
			name:     "single line",
			source:   "x = 1",
			expected: []string{"x = 1"},
		},
		{
			name:     "single line trailing newline",
			source:   "x = 1\n",
			expected: []string{"x = 1\n"},
		},
		{
			name:     "multi line",
			source:   "x = 1\ny = 2",
			expected: []string{"x = 1\n", "y = 2"},
		},
		{
			name:     "multi line trailing newline",
			source:   "x = 1\ny = 2\n",
			expected: []string{"x = 1\n", "y = 2\n"},
		},
		{
			name:     "three lines",
			source:   "a\nb\nc",
			expected: []string{"a\n", "b\n", "c"},
		},
		{
			name:     "three lines trailing",
			source:   "a\nb\nc\n",
			expected: []string{"a\n", "b\n", "c\n"},
		},
		{
			name:     "blank line in the middle",
			source:   "a\n\nb",
			expected: []string{"a\n", "\n", "b"},
		},
		{
			name:     "only newline",
			source:   "\n",
			expected: []string{"\n"},
		},
		{
			name:     "multiple newlines",
			source:   "\n\n",
			expected: []string{"\n", "\n"},
		},
		{
			name:     "unicode emoji",
			source:   "🎉 = \"party\"",
			expected: []string{"🎉 = \"party\""},
		},
		{
			name:     "unicode japanese",
			source:   "x = \"日本語\"",
			expected: []string{"x = \"日本語\""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.source)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestSplitLines_Terminators(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected []string
	}{
		{
			name:     "carriage return",
			source:   "a\rb",
			expected: []string{"a\r", "b"},
		},
		{
			name:     "crlf is one terminator",
			source:   "a\r\nb",
			expected: []string{"a\r\n", "b"},
		},
		{
			name:     "lf then cr are two terminators",
			source:   "a\n\rb",
			expected: []string{"a\n", "\r", "b"},
		},
		{
			name:     "vertical tab",
			source:   "a\vb",
			expected: []string{"a\v", "b"},
		},
		{
			name:     "form feed",
			source:   "a\fb",
			expected: []string{"a\f", "b"},
		},
		{
			name:     "next line",
			source:   "ab",
			expected: []string{"a", "b"},
		},
		{
			name:     "line separator",
			source:   "a b",
			expected: []string{"a ", "b"},
		},
		{
			name:     "paragraph separator",
			source:   "a b",
			expected: []string{"a ", "b"},
		},
		{
			name:     "trailing cr at end of input",
			source:   "a\r",
			expected: []string{"a\r"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.source)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestSplitLines_RoundTrip(t *testing.T) {
	// Concatenating the fragments must always reconstruct the input
	sources := []string{
		"",
		"x = 1",
		"x = 1\n",
		"a\nb\nc\n",
		"a\r\nb\rc\n",
		"\n\n\n",
		"🎉\n日本語\r\n done",
	}

	for _, source := range sources {
		if got := strings.Join(SplitLines(source), ""); got != source {
			t.Errorf("round trip broken for %q: got %q", source, got)
		}
	}
}
