// Package strings provides small string helpers used across layers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content, otherwise panics
// naming the missing value
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a mount path like /api/v1 to a single leading slash
// and no trailing slash. Panics on the root path
func MustPrefix(s string) string {
	s = std.TrimSpace(s)
	s = "/" + std.Trim(s, " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// LastSegment returns the part of a slash separated path after the final
// slash. A path without slashes is returned whole
func LastSegment(path string) string {
	path = std.TrimRight(path, "/")
	if i := std.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// JoinURL joins base and segments with exactly one slash between parts
func JoinURL(base string, segs ...string) string {
	var b std.Builder
	b.WriteString(std.TrimRight(base, "/"))
	for _, s := range segs {
		b.WriteByte('/')
		b.WriteString(std.Trim(s, "/"))
	}
	return b.String()
}

// Truncate shortens s to at most n runes, adding an ellipsis when cut
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
