package migrator

import (
	"fmt"
	stdhtml "html"
	"strings"

	xhtml "golang.org/x/net/html"
)

const previewURLAttr = "data-oembed-url"

// secureURL prefixes protocol-relative URLs with https:. It does not validate the URL.
func secureURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

func embedReference(url string) string {
	return `<oembed url="` + stdhtml.EscapeString(url) + `"></oembed>`
}

func previewOpenTag(url string) string {
	return `<div ` + previewURLAttr + `="` + stdhtml.EscapeString(url) + `">`
}

// previewWrapper returns the index of the preview div enclosing inner[idx]
// and the index of its end tag (-1 when unclosed). A preview div that closes
// before the iframe does not enclose it.
func previewWrapper(inner []tag, idx int) (int, int) {
	for i := idx - 1; i >= 0; i-- {
		if inner[i].kind != xhtml.StartTagToken || inner[i].name != "div" {
			continue
		}
		if _, ok := inner[i].attrs[previewURLAttr]; !ok {
			continue
		}
		closeIdx := findMatchingClose(inner, i)
		if closeIdx < 0 || closeIdx > idx {
			return i, closeIdx
		}
	}
	return -1, -1
}

// rewriteEmbeds rewrites every iframe in inner[from:].
func (s *state) rewriteEmbeds(inner []tag, from int) []edit {
	var edits []edit
	for i := from; i < len(inner); {
		if !inner[i].opens("iframe") {
			i++
			continue
		}
		e, next := s.rewriteEmbed(inner, i)
		edits = append(edits, e...)
		i = next
	}
	return edits
}

// rewriteEmbed produces the edits that turn the iframe at inner[idx] into the
// target embed syntax, and the index of the first tag after what it consumed.
func (s *state) rewriteEmbed(inner []tag, idx int) ([]edit, int) {
	iframe := inner[idx]

	wrapper, wrapperClose := previewWrapper(inner, idx)
	if wrapper >= 0 && s.config.MediaPreview {
		return nil, idx + 1
	}

	src := strings.TrimSpace(iframe.attrs["src"])
	if src == "" {
		s.addWarning(WarningMissingSource, iframe.start, "iframe embed has no src; left unchanged")
		return nil, idx + 1
	}
	url := secureURL(src)

	if wrapper >= 0 {
		if wrapperClose < 0 {
			s.addWarning(WarningUnclosedEmbed, inner[wrapper].start, "embed preview wrapper has no closing tag; left unchanged")
			return nil, idx + 1
		}
		s.result.Embeds++
		return []edit{{
			start: inner[wrapper].start,
			end:   inner[wrapperClose].end,
			text:  embedReference(url),
		}}, wrapperClose + 1
	}

	end, next := iframe.end, idx+1
	if iframe.kind == xhtml.StartTagToken {
		closeIdx := findTag(inner, idx+1, func(t tag) bool { return t.closes("iframe") })
		if closeIdx < 0 {
			s.addWarning(WarningUnclosedEmbed, iframe.start, fmt.Sprintf("iframe for %q has no closing tag; left unchanged", src))
			return nil, idx + 1
		}
		end, next = inner[closeIdx].end, closeIdx+1
	}

	s.result.Embeds++
	if s.config.MediaPreview {
		return []edit{
			{start: iframe.start, end: iframe.start, text: previewOpenTag(url)},
			{start: end, end: end, text: "</div>"},
		}, next
	}
	return []edit{{start: iframe.start, end: end, text: embedReference(url)}}, next
}
