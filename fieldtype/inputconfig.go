package fieldtype

import (
	"context"
	"slices"
)

const assetElementType = "asset"

// TransformOption is a transform offered by the image picker.
type TransformOption struct {
	Handle string `json:"handle" yaml:"handle"`
	Name   string `json:"name" yaml:"name"`
}

// LinkOption is a link picker entry.
type LinkOption struct {
	ElementType string   `json:"elementType" yaml:"elementType"`
	Label       string   `json:"label" yaml:"label"`
	Sources     []string `json:"sources" yaml:"sources"`
}

// InputConfig is the client-side editor configuration for one user.
type InputConfig struct {
	MediaPreview         bool              `json:"mediaPreview" yaml:"mediaPreview"`
	Volumes              []string          `json:"volumes" yaml:"volumes"`
	Transforms           []TransformOption `json:"transforms" yaml:"transforms"`
	DefaultTransform     string            `json:"defaultTransform,omitempty" yaml:"defaultTransform,omitempty"`
	LinkOptions          []LinkOption      `json:"linkOptions" yaml:"linkOptions"`
	SourceEditing        bool              `json:"sourceEditing" yaml:"sourceEditing"`
	ShowUnpermittedFiles bool              `json:"showUnpermittedFiles" yaml:"showUnpermittedFiles"`
	ShowWordCount        bool              `json:"showWordCount" yaml:"showWordCount"`
	WordLimit            int               `json:"wordLimit" yaml:"wordLimit"`
}

// InputConfig assembles the editor configuration for user.
func (f *Field) InputConfig(ctx context.Context, user User) (InputConfig, error) {
	cfg := InputConfig{
		MediaPreview:         f.settings.MediaPreview,
		Volumes:              []string{},
		Transforms:           []TransformOption{},
		LinkOptions:          []LinkOption{},
		ShowUnpermittedFiles: f.settings.ShowUnpermittedFiles,
		ShowWordCount:        f.settings.ShowWordCount,
		WordLimit:            f.settings.WordLimit,
		SourceEditing:        f.canEditSource(user),
	}

	volumes, err := f.catalog.Volumes(ctx)
	if err != nil {
		return InputConfig{}, wrapCapabilityError(err, "list volumes")
	}

	var permitted []string
	for _, v := range volumes {
		if !allows(f.settings.AvailableVolumes, v.UID.String()) {
			continue
		}
		ok, err := f.canView(ctx, user, v)
		if err != nil {
			return InputConfig{}, wrapCapabilityError(err, "check volume permission")
		}
		source := "volume:" + v.UID.String()
		if ok {
			permitted = append(permitted, source)
		}
		if ok || f.settings.ShowUnpermittedVolumes {
			cfg.Volumes = append(cfg.Volumes, source)
		}
	}

	transforms, err := f.catalog.Transforms(ctx)
	if err != nil {
		return InputConfig{}, wrapCapabilityError(err, "list transforms")
	}
	for _, t := range transforms {
		if allows(f.settings.AvailableTransforms, t.Handle) {
			cfg.Transforms = append(cfg.Transforms, TransformOption{Handle: t.Handle, Name: t.Name})
		}
	}

	if handle := f.settings.DefaultTransform; handle != "" {
		if slices.ContainsFunc(cfg.Transforms, func(t TransformOption) bool { return t.Handle == handle }) {
			cfg.DefaultTransform = handle
		} else {
			f.logger.WithContext(ctx).Warn("richtext.input_config.default_transform_unavailable", "transform", handle)
		}
	}

	sources, err := f.catalog.LinkSources(ctx)
	if err != nil {
		return InputConfig{}, wrapCapabilityError(err, "list link sources")
	}
	for _, s := range sources {
		if len(s.Sources) == 0 {
			continue
		}
		cfg.LinkOptions = append(cfg.LinkOptions, LinkOption{
			ElementType: s.ElementType,
			Label:       s.Label,
			Sources:     slices.Clone(s.Sources),
		})
	}
	if len(permitted) > 0 {
		cfg.LinkOptions = append(cfg.LinkOptions, LinkOption{
			ElementType: assetElementType,
			Label:       "Link to an asset",
			Sources:     permitted,
		})
	}

	return cfg, nil
}

func (f *Field) canView(ctx context.Context, user User, v Volume) (bool, error) {
	if user.Admin {
		return true, nil
	}
	return f.permissions.Can(ctx, user, ViewAssetsPermission(v.UID))
}

func (f *Field) canEditSource(user User) bool {
	if user.Admin {
		return true
	}
	if slices.Contains(f.settings.SourceEditingGroups, Wildcard) {
		return true
	}
	for _, g := range user.Groups {
		if slices.Contains(f.settings.SourceEditingGroups, g) {
			return true
		}
	}
	return false
}
