package fixture

import "nbfix/internal/domain"

// Builtin returns the fixed fixture case table, in the order the
// reference generator defines it. Sources cover the interesting splitting
// shapes: empty input, missing and present trailing terminators, blank
// lines, and multi-byte characters.
func Builtin() []domain.Case {
	return []domain.Case{
		{Name: "empty", Source: ""},
		{Name: "single_line", Source: "x = 1"},
		{Name: "single_line_trailing_newline", Source: "x = 1\n"},
		{Name: "multi_line", Source: "x = 1\ny = 2"},
		{Name: "multi_line_trailing_newline", Source: "x = 1\ny = 2\n"},
		{Name: "three_lines", Source: "a\nb\nc"},
		{Name: "three_lines_trailing", Source: "a\nb\nc\n"},
		{Name: "blank_line_middle", Source: "a\n\nb"},
		{Name: "only_newline", Source: "\n"},
		{Name: "multiple_newlines", Source: "\n\n"},
		{Name: "unicode_emoji", Source: "🎉 = \"party\""},
		{Name: "unicode_japanese", Source: "x = \"日本語\""},
	}
}
