package fieldtype

import (
	"encoding/json"
	"strings"

	xhtml "golang.org/x/net/html"
)

// Value is a rich text field value.
type Value struct {
	html string
}

// NewValue wraps html without migrating it.
func NewValue(html string) Value {
	return Value{html: html}
}

func (v Value) HTML() string { return v.html }

func (v Value) String() string { return v.html }

// Text returns the value's visible text with tags removed and whitespace collapsed.
func (v Value) Text() string {
	text, _ := extractText(v.html)
	return strings.Join(strings.Fields(text), " ")
}

// WordCount counts whitespace-separated words in the visible text.
func (v Value) WordCount() int {
	text, _ := extractText(v.html)
	return len(strings.Fields(text))
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.html)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.html)
}

var mediaElements = map[string]bool{
	"img":    true,
	"iframe": true,
	"oembed": true,
	"video":  true,
	"audio":  true,
	"embed":  true,
	"object": true,
}

var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"code":   true,
	"del":    true,
	"em":     true,
	"i":      true,
	"ins":    true,
	"mark":   true,
	"s":      true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"u":      true,
}

var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"template": true,
}

// extractText returns the decoded text of src and whether it embeds media.
// Non-inline tags act as word separators. Decoded non-breaking spaces count
// as whitespace for strings.Fields.
func extractText(src string) (string, bool) {
	z := xhtml.NewTokenizer(strings.NewReader(src))

	var sb strings.Builder
	hasMedia := false
	hidden := 0
	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			return sb.String(), hasMedia
		case xhtml.TextToken:
			if hidden > 0 {
				continue
			}
			sb.Write(z.Text())
		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			tok := z.Token()
			switch {
			case mediaElements[tok.Data]:
				hasMedia = true
			case hiddenElements[tok.Data] && tok.Type == xhtml.StartTagToken:
				hidden++
			}
			if !inlineElements[tok.Data] {
				sb.WriteByte(' ')
			}
		case xhtml.EndTagToken:
			name, _ := z.TagName()
			n := string(name)
			if hiddenElements[n] && hidden > 0 {
				hidden--
			}
			if !inlineElements[n] {
				sb.WriteByte(' ')
			}
		}
	}
}
