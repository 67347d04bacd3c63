// Package stringtest provides small string helpers for building expected
// multi-line test output, most often generated source code.
package stringtest

import "strings"

// Input dedents a multi-line string literal for use as test input or
// expected output. It strips exactly one leading and one trailing newline
// (so Go raw string literals can start and end on their own lines) and
// removes the minimum common leading whitespace from every non-blank line.
// Whitespace-only lines are reduced to empty lines.
//
// Example:
//
//	stringtest.Input(`
//	    line1
//	    line2`) // -> "line1\nline2"
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")

	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")

	indent := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lineIndent := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || lineIndent < indent {
			indent = lineIndent
		}
	}

	for i, line := range lines {
		switch {
		case strings.TrimSpace(line) == "":
			lines[i] = ""
		case indent > 0 && len(line) >= indent:
			lines[i] = line[indent:]
		case indent > 0:
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct expected test output with explicit line endings on
// Windows.
//
// Example:
//
//	want := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\r\nline2\r\nline3"
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
