package migrator

import "fmt"

// ClasslessPolicy controls how figure blocks without a class attribute are handled.
type ClasslessPolicy string

const (
	// ClasslessAdd adds a class attribute carrying the content marker.
	ClasslessAdd ClasslessPolicy = "add"
	// ClasslessLeave leaves class-less figures unmarked, matching the legacy field behavior.
	ClasslessLeave ClasslessPolicy = "leave"
)

// Config holds migrator configuration.
type Config struct {
	MediaPreview     bool            `json:"mediaPreview,omitempty"`
	ClasslessFigures ClasslessPolicy `json:"classlessFigures,omitempty"`
}

func (c Config) applyDefaults() Config {
	if c.ClasslessFigures == "" {
		c.ClasslessFigures = ClasslessAdd
	}
	return c
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.ClasslessFigures != ClasslessAdd && c.ClasslessFigures != ClasslessLeave {
		return fmt.Errorf("invalid classlessFigures %q", c.ClasslessFigures)
	}
	return nil
}
