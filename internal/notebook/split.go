package notebook

import "unicode/utf8"

// SplitLines splits source into line fragments the way the reference
// notebook serializer does when persisting cell source: every fragment
// keeps its terminator, "\r\n" counts as a single terminator, and a final
// unterminated chunk becomes its own fragment. The empty string splits
// into no fragments.
//
// The boundary set matches Python's str.splitlines, which the reference
// serializer uses: LF, CR, CRLF, VT, FF, FS, GS, RS, NEL, LS and PS.
func SplitLines(source string) []string {
	lines := []string{}
	start := 0
	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		end := i + size
		if r == '\r' && end < len(source) && source[end] == '\n' {
			end++
		}
		lines = append(lines, source[start:end])
		start = end
		i = end
	}
	if start < len(source) {
		lines = append(lines, source[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '', ' ', ' ':
		return true
	}
	return false
}
