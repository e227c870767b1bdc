// Package normalize cleans speech transcripts before pattern matching.
// Pipeline order
// 1 drop invalid UTF-8
// 2 NFKC
// 3 strip format characters (ZWJ, ZWNJ, BOM)
// 4 fold fullwidth forms to ASCII
// 5 map typographic quotes to ASCII
// 6 collapse whitespace and trim
// Case is preserved; callers lowercase when they need to.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

var quoteReplacer = strings.NewReplacer(
	"\u2018", "'",
	"\u2019", "'",
	"\u201b", "'",
	"\u201c", `"`,
	"\u201d", `"`,
)

// Transcript returns the normalized form of s.
func Transcript(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		ns = s
	}

	ns = quoteReplacer.Replace(ns)
	return CollapseSpaces(ns)
}

// CollapseSpaces turns every whitespace run into one ASCII space and trims the ends.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
