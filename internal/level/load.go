package level

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"platformer/internal/actor"
)

// Format is a level file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the decoder from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("level %s: unsupported extension %q (want .yaml, .yml or .toml)", path, filepath.Ext(path))
}

// Parse decodes and validates a level. Unknown keys are rejected so typos do not silently
// drop geometry. kill_y and corpse_time default to the enemy patrol defaults.
func Parse(data []byte, format Format) (*Level, error) {
	l := &Level{KillY: actor.DefaultKillY, CorpseTime: actor.DefaultCorpseTime}
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(l); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(l)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("unknown level format %q", format)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Load reads the level at path. The name defaults to the file's base name.
func Load(path string) (*Level, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	l, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, nil
}

// Save writes l to path in the format implied by its extension.
func Save(path string, l *Level) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(l); err != nil {
			return fmt.Errorf("level %s: encode yaml: %w", path, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("level %s: encode yaml: %w", path, err)
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(l); err != nil {
			return fmt.Errorf("level %s: encode toml: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
