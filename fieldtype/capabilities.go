package fieldtype

import (
	"context"
	"slices"

	"github.com/google/uuid"
)

// User is the account the editor configuration is assembled for.
type User struct {
	ID     string   `json:"id" mapstructure:"id" yaml:"id"`
	Admin  bool     `json:"admin" mapstructure:"admin" yaml:"admin"`
	Groups []string `json:"groups,omitempty" mapstructure:"groups" yaml:"groups,omitempty"`
}

// PermissionChecker answers whether a user holds a named permission.
type PermissionChecker interface {
	Can(ctx context.Context, user User, permission string) (bool, error)
}

// Volume is an asset storage location files can be picked from.
type Volume struct {
	UID    uuid.UUID `json:"uid" mapstructure:"uid" yaml:"uid"`
	Handle string    `json:"handle" mapstructure:"handle" yaml:"handle"`
	Name   string    `json:"name" mapstructure:"name" yaml:"name"`
}

// Transform is a named image transform.
type Transform struct {
	Handle string `json:"handle" mapstructure:"handle" yaml:"handle"`
	Name   string `json:"name" mapstructure:"name" yaml:"name"`
}

// LinkSource describes an element type the link picker can reference.
type LinkSource struct {
	ElementType string   `json:"elementType" mapstructure:"elementType" yaml:"elementType"`
	Label       string   `json:"label" mapstructure:"label" yaml:"label"`
	Sources     []string `json:"sources" mapstructure:"sources" yaml:"sources"`
}

// Catalog exposes the CMS lookups the field needs to build its editor configuration.
type Catalog interface {
	Volumes(ctx context.Context) ([]Volume, error)
	Transforms(ctx context.Context) ([]Transform, error)
	LinkSources(ctx context.Context) ([]LinkSource, error)
}

// StaticCatalog serves fixed lists. It is used by the CLI and in tests.
type StaticCatalog struct {
	VolumeList     []Volume     `mapstructure:"volumes"`
	TransformList  []Transform  `mapstructure:"transforms"`
	LinkSourceList []LinkSource `mapstructure:"linkSources"`
}

var _ Catalog = StaticCatalog{}

func (c StaticCatalog) Volumes(context.Context) ([]Volume, error) {
	return slices.Clone(c.VolumeList), nil
}

func (c StaticCatalog) Transforms(context.Context) ([]Transform, error) {
	return slices.Clone(c.TransformList), nil
}

func (c StaticCatalog) LinkSources(context.Context) ([]LinkSource, error) {
	return slices.Clone(c.LinkSourceList), nil
}

// StaticPermissions grants permissions per user ID.
type StaticPermissions struct {
	Granted map[string][]string `mapstructure:"granted"`
}

var _ PermissionChecker = StaticPermissions{}

func (p StaticPermissions) Can(_ context.Context, user User, permission string) (bool, error) {
	return slices.Contains(p.Granted[user.ID], permission), nil
}

type allowAll struct{}

func (allowAll) Can(context.Context, User, string) (bool, error) { return true, nil }

// ViewAssetsPermission names the permission required to browse a volume.
func ViewAssetsPermission(volume uuid.UUID) string {
	return "viewAssets:" + volume.String()
}
