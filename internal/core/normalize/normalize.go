// Package normalize cleans free text from the document source into a single
// display line. Pipeline order
// 1 control characters become spaces, invalid UTF-8 is dropped
// 2 Unicode NFC composition
// 3 invisible format runes (zero width space, BOM, bidi overrides) removed
// 4 whitespace runs collapse to one space, edges trimmed
package normalize

import (
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.Predicate(invisible)),
		)
	},
}

// invisible reports format runes that render as nothing but can reorder or
// hide neighbouring text. ZWJ and ZWNJ stay: emoji and some scripts need them
func invisible(r rune) bool {
	switch {
	case r == '\u200b', r == '\u2060', r == '\ufeff':
		return true
	case r >= '\u202a' && r <= '\u202e':
		return true
	case r >= '\u2066' && r <= '\u2069':
		return true
	}
	return false
}

// Name returns the display form of s following the pipeline above
func Name(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}
