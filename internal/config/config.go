// Package config loads datavis settings from defaults, a YAML file,
// DATAVIS_ environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/ukaji3/datavis-go/pkg/datavis"
)

// Rendering defaults follow datavis.DefaultOptions.
var (
	DefaultWidth  = datavis.DefaultOptions().Width
	DefaultHeight = datavis.DefaultOptions().Height
	DefaultBins   = datavis.DefaultOptions().Bins
)

// Default values applied before any other source.
const (
	DefaultPreviewRows = 20
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DATAVIS_"

// Config holds all CLI configuration options.
type Config struct {
	// Width is the exported image width in pixels.
	Width int `koanf:"width"`
	// Height is the exported image height in pixels.
	Height int `koanf:"height"`
	// Bins is the histogram bucket count.
	Bins int `koanf:"bins"`
	// PreviewRows caps the rows printed by the preview command (0 prints all).
	PreviewRows int `koanf:"preview_rows"`
	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is the log format: text or json.
	LogFormat string `koanf:"log_format"`
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Bins <= 0 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must not be negative, got %d", c.PreviewRows)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (must be text or json)", c.LogFormat)
	}
	return nil
}
