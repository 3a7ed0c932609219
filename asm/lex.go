package asm

import "strings"

// splitLines splits source text into physical lines, where a line is
// terminated by LF, CR, or a CRLF pair (counted once). Unlike a naive
// strings.Split on "\n", this never collapses adjacent separators, so a
// blank line between two statements still consumes a line number -- the
// property asm's 1-based diagnostics depend on.
func splitLines(source string) []string {
	var lines []string
	var current strings.Builder

	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == '\n' || c == '\r' {
			lines = append(lines, current.String())
			current.Reset()
			if c == '\r' && i+1 < len(source) && source[i+1] == '\n' {
				i++
			}
			continue
		}
		current.WriteByte(c)
	}
	lines = append(lines, current.String())
	return lines
}

// stripComment removes a '#' and everything after it on a single line. The
// '#' is recognised positionally, even mid-token, so "z #q0" is stripped
// down to "z" rather than "z" plus an operand.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// isTokenSep reports whether r is one of the token-separating whitespace
// characters: space, horizontal tab, or vertical tab.
func isTokenSep(r rune) bool {
	return r == ' ' || r == '\t' || r == '\v'
}

// tokenize splits a line into whitespace-separated tokens, trimming leading
// and trailing separators and collapsing runs of them.
func tokenize(line string) []string {
	return strings.FieldsFunc(line, isTokenSep)
}
