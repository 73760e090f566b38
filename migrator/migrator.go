// Package migrator rewrites legacy rich-text figure markup into the dialect
// expected by the current editor: figures are tagged with an `image` or
// `media` class and iframe embeds become oembed references or preview
// wrappers.
package migrator

import (
	"strings"

	xhtml "golang.org/x/net/html"
)

const (
	markerImage = "image"
	markerMedia = "media"
)

// Migrator rewrites legacy figure markup. It is immutable and safe for concurrent use.
type Migrator struct {
	config Config
}

type state struct {
	config Config
	result Result
}

// edit replaces src[start:end] with text. Insertions have start == end.
type edit struct {
	start int
	end   int
	text  string
}

// New creates a new Migrator with the given config.
func New(config Config) (*Migrator, error) {
	cfg := config.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Migrator{config: cfg}, nil
}

// Migrate rewrites html with default settings and the given media preview mode.
func Migrate(html string, mediaPreview bool) string {
	m := &Migrator{config: Config{MediaPreview: mediaPreview}.applyDefaults()}
	return m.Migrate(html).HTML
}

// Migrate rewrites every closed figure block in html. Malformed input is never
// an error: an unclosed figure stops the scan and the remainder is returned
// unchanged.
func (m *Migrator) Migrate(html string) Result {
	s := &state{config: m.config}

	tags := scanTags(html)
	var edits []edit
	for i := 0; i < len(tags); i++ {
		if tags[i].kind != xhtml.StartTagToken || tags[i].name != "figure" {
			continue
		}

		closeIdx := findTag(tags, i+1, func(t tag) bool { return t.closes("figure") })
		if closeIdx < 0 {
			s.addWarning(WarningUnclosedFigure, tags[i].start, "figure has no closing tag; remainder left unchanged")
			break
		}

		edits = append(edits, s.migrateFigure(html, tags[i], tags[i+1:closeIdx])...)
		i = closeIdx
	}

	s.result.HTML = applyEdits(html, edits)
	return s.result
}

func (s *state) migrateFigure(src string, open tag, inner []tag) []edit {
	embedIdx := findTag(inner, 0, func(t tag) bool { return t.opens("img") || t.opens("iframe") })
	if embedIdx < 0 {
		return nil
	}
	s.result.Figures++

	marker := markerImage
	if inner[embedIdx].name == "iframe" {
		marker = markerMedia
	}

	var edits []edit
	if e, ok := s.markFigure(src, open, marker); ok {
		edits = append(edits, e)
	}
	if marker == markerMedia {
		edits = append(edits, s.rewriteEmbeds(inner, embedIdx)...)
	}
	return edits
}

func (s *state) markFigure(src string, open tag, marker string) (edit, bool) {
	raw := src[open.start:open.end]

	value, hasClass := open.attrs["class"]
	if hasClass && hasClassToken(value, marker) {
		return edit{}, false
	}

	var rewritten string
	if !hasClass {
		if s.config.ClasslessFigures == ClasslessLeave {
			s.addWarning(WarningClasslessFigure, open.start, "figure has no class attribute; left unmarked")
			return edit{}, false
		}
		rewritten = addClass(raw, marker)
	} else {
		var ok bool
		rewritten, ok = prefixClass(raw, marker)
		if !ok {
			return edit{}, false
		}
	}

	s.result.Marked++
	return edit{start: open.start, end: open.end, text: rewritten}, true
}

func (s *state) addWarning(warnType WarningType, offset int, message string) {
	s.result.Warnings = append(s.result.Warnings, Warning{
		Type:    warnType,
		Offset:  offset,
		Message: message,
	})
}

// applyEdits splices non-overlapping edits, ordered by start, into src.
func applyEdits(src string, edits []edit) string {
	if len(edits) == 0 {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src) + 48*len(edits))
	cursor := 0
	for _, e := range edits {
		sb.WriteString(src[cursor:e.start])
		sb.WriteString(e.text)
		cursor = e.end
	}
	sb.WriteString(src[cursor:])
	return sb.String()
}
