package migrator

// Result holds the output of a migration.
type Result struct {
	HTML     string    `json:"html"`
	Figures  int       `json:"figures"`
	Marked   int       `json:"marked"`
	Embeds   int       `json:"embeds"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// Changed reports whether the migration rewrote anything.
func (r Result) Changed() bool {
	return r.Marked > 0 || r.Embeds > 0
}

// WarningType categorizes migration warnings.
type WarningType string

const (
	WarningUnclosedFigure  WarningType = "unclosed_figure"
	WarningClasslessFigure WarningType = "classless_figure"
	WarningMissingSource   WarningType = "missing_source"
	WarningUnclosedEmbed   WarningType = "unclosed_embed"
)

// Warning represents markup the migrator passed through without rewriting.
type Warning struct {
	Type    WarningType `json:"type"`
	Offset  int         `json:"offset"`
	Message string      `json:"message"`
}
