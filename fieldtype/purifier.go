package fieldtype

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var (
	embedURLPattern = regexp.MustCompile(`^https?://`)
	dimension       = regexp.MustCompile(`^[0-9]+%?$`)
)

// newPolicy builds the sanitization policy for preset. PurifierNone yields nil.
func newPolicy(preset PurifierPreset) *bluemonday.Policy {
	switch preset {
	case PurifierNone:
		return nil
	case PurifierBasic:
		return basicPolicy()
	default:
		return defaultPolicy()
	}
}

func defaultPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("figure", "figcaption", "div")
	p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("figure", "code", "span")
	p.AllowAttrs("url").Matching(embedURLPattern).OnElements("oembed")
	p.AllowAttrs("data-oembed-url").Matching(embedURLPattern).OnElements("div")
	p.AllowAttrs("src").OnElements("iframe")
	p.AllowAttrs("width", "height").Matching(dimension).OnElements("iframe")
	p.AllowAttrs("frameborder", "allow", "allowfullscreen", "title").OnElements("iframe")
	return p
}

func basicPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements("p", "br", "b", "strong", "i", "em", "u", "s", "strike", "del", "sub", "sup")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "code", "hr")
	p.AllowLists()
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}
