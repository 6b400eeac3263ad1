// Package pager splits display values into fixed-width, NUL-terminated
// pages the way the device menu loop consumes them.
package pager

import (
	"bytes"
	"unicode/utf8"
)

// Page writes page number page of in into out and returns how many pages
// in spans. A page holds at most len(out)-1 bytes followed by a NUL; out is
// always cleared first, so a page outside [0, count) leaves it empty.
//
// An empty value is one empty page. A zero-width buffer holds no pages.
func Page(out []byte, in string, page int) int {
	clear(out)
	width := len(out) - 1
	if width <= 0 {
		return 0
	}
	if in == "" {
		return 1
	}
	count := 0
	for start := 0; start < len(in); count++ {
		end := boundary(in, start, width)
		if count == page {
			copy(out, in[start:end])
		}
		start = end
	}
	return count
}

// Why(中文): 分页边界只能落在 UTF-8 字符起始字节上，多字节字符永远整体出现在同一页。
// Why(English): A page boundary may only land on a rune start, so a multi-byte rune always stays on one page.
func boundary(s string, start, width int) int {
	end := start + width
	if end >= len(s) {
		return len(s)
	}
	cut := end
	for cut > start && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == start {
		// rune wider than the page itself
		return end
	}
	return cut
}

// Format copies s into out like snprintf: truncated to len(out)-1 bytes on a
// rune boundary and NUL-terminated. It returns the number of bytes written.
func Format(out []byte, s string) int {
	clear(out)
	if len(out) == 0 {
		return 0
	}
	n := len(s)
	if n > len(out)-1 {
		n = len(out) - 1
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
	}
	return copy(out, s[:n])
}

// Text returns the NUL-terminated string held in buf.
func Text(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}
