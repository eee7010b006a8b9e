package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/YT-Jin/diskspd/internal/profile"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// Formats lists every supported format, default first.
var Formats = []OutputFormat{FormatText, FormatJSON, FormatYAML}

// ParseFormat maps a format name to its OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	for _, f := range Formats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q, must be one of text, json, yaml", s)
}

// FormatProvider is an interface for different output formatters
type FormatProvider interface {
	FormatProfile(p *profile.Profile) (string, error)
}

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	Pretty bool
}

// FormatProfile formats a profile as JSON
func (f *JSONFormatter) FormatProfile(p *profile.Profile) (string, error) {
	var output []byte
	var err error
	if f.Pretty {
		output, err = json.MarshalIndent(p, "", "  ")
	} else {
		output, err = json.Marshal(p)
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal profile")
	}
	return string(output) + "\n", nil
}

// YAMLFormatter formats output as YAML
type YAMLFormatter struct{}

// FormatProfile formats a profile as a YAML document
func (f *YAMLFormatter) FormatProfile(p *profile.Profile) (string, error) {
	output, err := yaml.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal profile")
	}
	return "---\n" + string(output), nil
}

// GetFormatter returns the appropriate formatter for the given format
func GetFormatter(format OutputFormat, noColor bool) FormatProvider {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatYAML:
		return &YAMLFormatter{}
	default:
		return NewFormatter(noColor)
	}
}
