package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for pattern files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported pattern format")

// Format names a pattern file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath infers the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// ParseFormat maps a user-supplied format name onto a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
	}
}

// LoadPatterns reads an ordered list of patterns from a JSON or YAML file.
func LoadPatterns(path string) ([]Pattern, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read patterns: %w", err)
	}
	return DecodePatterns(data, format)
}

// DecodePatterns decodes an ordered pattern list.
func DecodePatterns(data []byte, format Format) ([]Pattern, error) {
	var patterns []Pattern
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &patterns); err != nil {
			return nil, fmt.Errorf("unmarshal patterns: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &patterns); err != nil {
			return nil, fmt.Errorf("unmarshal patterns: %w", err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	return patterns, nil
}

// LoadTable reads a pattern file and builds a validated table from it.
func LoadTable(path string) (*PatternTable, error) {
	patterns, err := LoadPatterns(path)
	if err != nil {
		return nil, err
	}
	table, err := NewPatternTable(patterns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// WritePatterns encodes patterns in the requested format.
func WritePatterns(w io.Writer, format Format, patterns []Pattern) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(patterns)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(patterns); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}
