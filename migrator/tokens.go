package migrator

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

// tag is a start, end or self-closing tag located by byte offsets in the source.
type tag struct {
	kind  xhtml.TokenType
	name  string
	start int
	end   int
	attrs map[string]string
}

func (t tag) opens(name string) bool {
	return t.name == name && (t.kind == xhtml.StartTagToken || t.kind == xhtml.SelfClosingTagToken)
}

func (t tag) closes(name string) bool {
	return t.name == name && t.kind == xhtml.EndTagToken
}

// trackedTags lists the only elements the migrator needs to see.
var trackedTags = map[string]bool{
	"figure": true,
	"img":    true,
	"iframe": true,
	"div":    true,
}

// scanTags tokenizes src once and returns the tracked tags in document order.
// Offsets are accumulated from the raw token lengths, so they always index
// into the original string.
func scanTags(src string) []tag {
	z := xhtml.NewTokenizer(strings.NewReader(src))

	var tags []tag
	offset := 0
	for {
		tt := z.Next()
		start := offset
		offset += len(z.Raw())

		switch tt {
		case xhtml.ErrorToken:
			return tags
		case xhtml.StartTagToken, xhtml.EndTagToken, xhtml.SelfClosingTagToken:
			rawName, hasAttr := z.TagName()
			name := string(rawName)
			if !trackedTags[name] {
				continue
			}
			t := tag{kind: tt, name: name, start: start, end: offset}
			if hasAttr && tt != xhtml.EndTagToken {
				t.attrs = readAttrs(z)
			}
			tags = append(tags, t)
		}
	}
}

// readAttrs keeps the first occurrence of each attribute, like browsers do.
func readAttrs(z *xhtml.Tokenizer) map[string]string {
	attrs := make(map[string]string)
	for {
		key, val, more := z.TagAttr()
		k := string(key)
		if _, seen := attrs[k]; !seen {
			attrs[k] = string(val)
		}
		if !more {
			return attrs
		}
	}
}

// findTag returns the index of the first tag in tags[from:] matching fn, or -1.
func findTag(tags []tag, from int, fn func(tag) bool) int {
	for i := from; i < len(tags); i++ {
		if fn(tags[i]) {
			return i
		}
	}
	return -1
}

// findMatchingClose returns the index of the end tag balancing the start tag at tags[open].
func findMatchingClose(tags []tag, open int) int {
	name := tags[open].name
	depth := 0
	for i := open; i < len(tags); i++ {
		switch {
		case tags[i].name == name && tags[i].kind == xhtml.StartTagToken:
			depth++
		case tags[i].closes(name):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
