package fieldtype

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// PurifierPreset selects the sanitization applied when a value is persisted.
type PurifierPreset string

const (
	PurifierNone    PurifierPreset = "none"
	PurifierDefault PurifierPreset = "default"
	PurifierBasic   PurifierPreset = "basic"
)

// Wildcard matches every volume, transform or user group.
const Wildcard = "*"

// Settings configures a rich text field.
type Settings struct {
	MediaPreview           bool           `json:"mediaPreview" mapstructure:"mediaPreview" yaml:"mediaPreview"`
	Purifier               PurifierPreset `json:"purifier" mapstructure:"purifier" yaml:"purifier"`
	AvailableVolumes       []string       `json:"availableVolumes" mapstructure:"availableVolumes" yaml:"availableVolumes"`
	AvailableTransforms    []string       `json:"availableTransforms" mapstructure:"availableTransforms" yaml:"availableTransforms"`
	DefaultTransform       string         `json:"defaultTransform,omitempty" mapstructure:"defaultTransform" yaml:"defaultTransform,omitempty"`
	ShowUnpermittedVolumes bool           `json:"showUnpermittedVolumes" mapstructure:"showUnpermittedVolumes" yaml:"showUnpermittedVolumes"`
	ShowUnpermittedFiles   bool           `json:"showUnpermittedFiles" mapstructure:"showUnpermittedFiles" yaml:"showUnpermittedFiles"`
	ShowWordCount          bool           `json:"showWordCount" mapstructure:"showWordCount" yaml:"showWordCount"`
	WordLimit              int            `json:"wordLimit" mapstructure:"wordLimit" yaml:"wordLimit"`
	SourceEditingGroups    []string       `json:"sourceEditingGroups,omitempty" mapstructure:"sourceEditingGroups" yaml:"sourceEditingGroups,omitempty"`
}

// applyDefaults fills unset fields. A nil volume or transform list means all of
// them; an empty, non-nil list means none.
func (s Settings) applyDefaults() Settings {
	if s.Purifier == "" {
		s.Purifier = PurifierDefault
	}
	if s.AvailableVolumes == nil {
		s.AvailableVolumes = []string{Wildcard}
	}
	if s.AvailableTransforms == nil {
		s.AvailableTransforms = []string{Wildcard}
	}
	return s
}

func (s Settings) clone() Settings {
	s.AvailableVolumes = slices.Clone(s.AvailableVolumes)
	s.AvailableTransforms = slices.Clone(s.AvailableTransforms)
	s.SourceEditingGroups = slices.Clone(s.SourceEditingGroups)
	return s
}

// Validate checks settings values.
func (s Settings) Validate() error {
	err := validation.ValidateStruct(&s,
		validation.Field(&s.Purifier, validation.In(PurifierNone, PurifierDefault, PurifierBasic)),
		validation.Field(&s.AvailableVolumes, validation.Each(validation.Required, validation.By(validateVolumeRef))),
		validation.Field(&s.AvailableTransforms, validation.Each(validation.Required)),
		validation.Field(&s.SourceEditingGroups, validation.Each(validation.Required)),
		validation.Field(&s.WordLimit, validation.Min(0)),
	)
	return wrapSettingsError(err)
}

func validateVolumeRef(value any) error {
	ref, _ := value.(string)
	if ref == Wildcard {
		return nil
	}
	if _, err := uuid.Parse(ref); err != nil {
		return validation.NewError("richtext.settings.volume_uid", "must be a volume UID or *")
	}
	return nil
}

func allows(list []string, value string) bool {
	return slices.Contains(list, Wildcard) || slices.Contains(list, value)
}
