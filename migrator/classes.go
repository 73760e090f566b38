package migrator

import "strings"

// hasClassToken reports whether the class attribute value contains token as a
// whole whitespace-separated word.
func hasClassToken(value, token string) bool {
	for _, field := range strings.Fields(value) {
		if field == token {
			return true
		}
	}
	return false
}

// attrSpan locates an attribute inside a raw start tag. valueStart and
// valueEnd exclude quotes; quote is 0 for unquoted values.
type attrSpan struct {
	nameEnd    int
	valueStart int
	valueEnd   int
	quote      byte
	hasValue   bool
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// findAttr walks the attributes of a raw start tag and returns the first one
// named name (case-insensitive).
func findAttr(raw, name string) (attrSpan, bool) {
	i := 1
	for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++
	}

	for i < len(raw) {
		for i < len(raw) && (isTagSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			return attrSpan{}, false
		}

		nameStart := i
		for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '=' && raw[i] != '>' && raw[i] != '/' {
			i++
		}
		if i == nameStart {
			i++
			continue
		}
		attrName := raw[nameStart:i]
		span := attrSpan{nameEnd: i}

		j := i
		for j < len(raw) && isTagSpace(raw[j]) {
			j++
		}
		if j < len(raw) && raw[j] == '=' {
			j++
			for j < len(raw) && isTagSpace(raw[j]) {
				j++
			}
			span.hasValue = true
			if j < len(raw) && (raw[j] == '"' || raw[j] == '\'') {
				end := strings.IndexByte(raw[j+1:], raw[j])
				if end < 0 {
					return attrSpan{}, false
				}
				span.quote = raw[j]
				span.valueStart = j + 1
				span.valueEnd = j + 1 + end
				i = span.valueEnd + 1
			} else {
				k := j
				for k < len(raw) && !isTagSpace(raw[k]) && raw[k] != '>' {
					k++
				}
				span.valueStart = j
				span.valueEnd = k
				i = k
			}
		}

		if strings.EqualFold(attrName, name) {
			return span, true
		}
	}

	return attrSpan{}, false
}

// prefixClass rewrites the class attribute of a raw start tag so that marker
// becomes its first token. Existing tokens keep their order and the original
// quoting style is kept; unquoted values become double-quoted with embedded
// quotes escaped.
func prefixClass(raw, marker string) (string, bool) {
	span, ok := findAttr(raw, "class")
	if !ok {
		return "", false
	}

	if !span.hasValue {
		return raw[:span.nameEnd] + `="` + marker + `"` + raw[span.nameEnd:], true
	}

	value := raw[span.valueStart:span.valueEnd]
	updated := marker
	if strings.TrimSpace(value) != "" {
		updated = marker + " " + value
	}

	if span.quote == 0 {
		updated = strings.ReplaceAll(updated, `"`, "&quot;")
		return raw[:span.valueStart] + `"` + updated + `"` + raw[span.valueEnd:], true
	}
	return raw[:span.valueStart] + updated + raw[span.valueEnd:], true
}

// addClass inserts a class attribute directly after the tag name.
func addClass(raw, marker string) string {
	i := 1
	for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '>' && raw[i] != '/' {
		i++
	}
	return raw[:i] + ` class="` + marker + `"` + raw[i:]
}
