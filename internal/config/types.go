package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Gallery is the root of a gallery configuration file: a named list of
// carousel demos the TUI cycles through.
type Gallery struct {
	Version string `yaml:"version" validate:"required"`
	Demos   []Demo `yaml:"demos" validate:"required,min=1,dive"`
}

// Demo describes one carousel in the gallery.
type Demo struct {
	Name     string   `yaml:"name" validate:"required,demo_name"`
	Variant  string   `yaml:"variant" validate:"required,carousel_variant"`
	Items    []Item   `yaml:"items" validate:"required,min=1,dive"`
	Extent   float64  `yaml:"extent,omitempty" validate:"omitempty,gt=0"`
	Loop     bool     `yaml:"loop,omitempty"`
	Interval Duration `yaml:"interval,omitempty"`
}

// Item is one carousel page.
type Item struct {
	Title string `yaml:"title" validate:"required"`
	Body  string `yaml:"body,omitempty"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "2s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("duration must be a string like \"2s\": %w", err)
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if parsed < 0 {
		return fmt.Errorf("duration must not be negative, got %q", raw)
	}

	*d = Duration(parsed)
	return nil
}

// Std converts to the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
