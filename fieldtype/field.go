// Package fieldtype adapts the markup migrator to a rich text field: it
// normalizes stored values for display, sanitizes them for persistence,
// imports legacy Markdown and assembles the editor configuration from the
// CMS capabilities it is given.
package fieldtype

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/rgonek/richtext-field/logging"
	"github.com/rgonek/richtext-field/migrator"
)

// Options carries the collaborators a Field depends on. Nil members fall back
// to permissive or empty implementations.
type Options struct {
	Permissions PermissionChecker
	Catalog     Catalog
	Logger      logging.Logger
}

// Field is a configured rich text field. It is immutable and safe for concurrent use.
type Field struct {
	settings    Settings
	migrator    *migrator.Migrator
	policy      *bluemonday.Policy
	markdown    goldmark.Markdown
	permissions PermissionChecker
	catalog     Catalog
	logger      logging.Logger
}

// New validates settings and builds a Field.
func New(settings Settings, opts Options) (*Field, error) {
	cfg := settings.clone().applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := migrator.New(migrator.Config{MediaPreview: cfg.MediaPreview})
	if err != nil {
		return nil, wrapSettingsError(err)
	}

	f := &Field{
		settings:    cfg,
		migrator:    m,
		policy:      newPolicy(cfg.Purifier),
		markdown:    newMarkdown(),
		permissions: opts.Permissions,
		catalog:     opts.Catalog,
		logger:      opts.Logger,
	}
	if f.permissions == nil {
		f.permissions = allowAll{}
	}
	if f.catalog == nil {
		f.catalog = StaticCatalog{}
	}
	if f.logger == nil {
		f.logger = logging.NoOp()
	}
	f.logger = logging.WithFields(f.logger, map[string]any{
		"media_preview": cfg.MediaPreview,
		"purifier":      string(cfg.Purifier),
	})
	return f, nil
}

// Settings returns a copy of the effective settings.
func (f *Field) Settings() Settings {
	return f.settings.clone()
}

// NormalizeValue prepares a stored value for display.
func (f *Field) NormalizeValue(ctx context.Context, raw string) Value {
	return Value{html: f.migrate(ctx, raw)}
}

// SerializeValue prepares a value for persistence: it is migrated, sanitized
// with the configured preset and trimmed. Empty values serialize to "".
func (f *Field) SerializeValue(ctx context.Context, value Value) string {
	html := f.migrate(ctx, value.HTML())
	if f.policy != nil {
		html = f.policy.Sanitize(html)
	}
	html = strings.TrimSpace(html)
	if IsEmpty(Value{html: html}) {
		return ""
	}
	return html
}

// ValidateValue enforces the word limit.
func (f *Field) ValidateValue(value Value) error {
	if f.settings.WordLimit <= 0 {
		return nil
	}
	count := value.WordCount()
	err := validation.Validate(count, validation.Max(f.settings.WordLimit).
		Error(fmt.Sprintf("must not exceed %d words", f.settings.WordLimit)))
	return wrapValueError(err)
}

// IsEmpty reports whether value has neither text nor embedded media.
func IsEmpty(value Value) bool {
	text, hasMedia := extractText(value.HTML())
	return !hasMedia && len(strings.Fields(text)) == 0
}

// SearchKeywords returns the text indexed for search.
func SearchKeywords(value Value) string {
	return value.Text()
}

func (f *Field) migrate(ctx context.Context, html string) string {
	res := f.migrator.Migrate(html)
	if len(res.Warnings) == 0 && !res.Changed() {
		return res.HTML
	}

	logger := f.logger.WithContext(ctx)
	for _, w := range res.Warnings {
		logger.Debug("richtext.migrate.warning", "type", string(w.Type), "offset", w.Offset, "message", w.Message)
	}
	if res.Changed() {
		logger.Debug("richtext.migrate.changed", "figures", res.Figures, "marked", res.Marked, "embeds", res.Embeds)
	}
	return res.HTML
}
